package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type CommandRequest struct {
	SessionID string `json:"sessionId"`
	Command   string `json:"command"`
}

type CommandResponse struct {
	Output     string   `json:"output"`
	Transcript []string `json:"transcript"`
	CWD        string   `json:"cwd"`
}

func (s *Server) handleInitSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.SessionManager.CreateSession("")
	s.Log.Info("session created", zap.String("session", sess.ID))
	writeJSON(w, map[string]string{"sessionId": sess.ID})
}

func (s *Server) handleExecCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := s.session(req.SessionID)
	s.Log.Debug("command", zap.String("session", sess.ID), zap.String("cmd", req.Command))

	output := sess.Run(r.Context(), req.Command)
	s.refreshPreview(sess)

	sess.RLock()
	resp := CommandResponse{Output: output, Transcript: sess.Transcript, CWD: sess.CWD}
	sess.RUnlock()
	writeJSON(w, resp)
}

type CompleteRequest struct {
	SessionID string `json:"sessionId"`
	Line      string `json:"line"`
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := s.session(req.SessionID)
	sess.Lock()
	result := sess.Complete(req.Line)
	sess.Unlock()
	writeJSON(w, result)
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := s.session(r.URL.Query().Get("sessionId"))
	sess.RLock()
	defer sess.RUnlock()
	writeJSON(w, map[string]any{
		"projectName": sess.ProjectName,
		"cwd":         sess.CWD,
		"files":       sess.FS.Paths(),
		"vcs":         sess.Repo.State(sess.FS),
	})
}
