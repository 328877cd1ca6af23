package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"studio/internal/project"
	"studio/internal/vfs"
)

// handleLoadProject resets a session to an externally-sourced file set.
// A malformed payload leaves the session exactly as it was; nothing is
// partially populated.
func (s *Server) handleLoadProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := r.URL.Query().Get("sessionId")
	name, files, err := project.Parse(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := s.session(sessionID)
	sess.Lock()
	project.Load(sess, name, files)
	tree := sess.FS.Tree()
	sess.Unlock()

	s.refreshPreview(sess)
	s.Log.Info("project loaded",
		zap.String("session", sess.ID),
		zap.String("project", name),
		zap.Int("files", len(files)))
	writeJSON(w, map[string]any{"projectName": name, "tree": tree})
}

type GenerateRequest struct {
	SessionID string `json:"sessionId"`
	Prompt    string `json:"prompt"`
}

// handleGenerateProject asks the external generative service for a
// project and loads it. A service failure is reported once and leaves
// the session untouched.
func (s *Server) handleGenerateProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.Generator == nil {
		http.Error(w, "no generator configured", http.StatusServiceUnavailable)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name, files, err := s.Generator.GenerateProject(r.Context(), req.Prompt)
	if err != nil {
		s.Log.Warn("generate failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	sess := s.session(req.SessionID)
	sess.Lock()
	project.Load(sess, name, files)
	tree := sess.FS.Tree()
	sess.Unlock()

	s.refreshPreview(sess)
	writeJSON(w, map[string]any{"projectName": name, "tree": tree})
}

type FixRequest struct {
	SessionID string         `json:"sessionId"`
	Problem   string         `json:"problem"`
	Files     []project.File `json:"files"`
}

// handleFixProject applies a fixed file set to the working tree as one
// atomic upsert, never interleaving with a running command. When the
// request carries no files, the external service is asked to produce
// them from the session's current file set.
func (s *Server) handleFixProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req FixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := s.session(req.SessionID)
	fixed := req.Files
	if len(fixed) == 0 {
		if s.Generator == nil {
			http.Error(w, "no generator configured", http.StatusServiceUnavailable)
			return
		}
		sess.RLock()
		current := project.Export(sess)
		sess.RUnlock()

		var err error
		fixed, err = s.Generator.FixProject(r.Context(), current, req.Problem)
		if err != nil {
			s.Log.Warn("fix failed", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
	}

	sess.Lock()
	project.ApplyFix(sess, fixed)
	tree := sess.FS.Tree()
	sess.Unlock()

	s.refreshPreview(sess)
	writeJSON(w, map[string]any{"applied": len(fixed), "tree": tree})
}

func (s *Server) handleGetTree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(r.URL.Query().Get("sessionId"))
	sess.RLock()
	defer sess.RUnlock()
	writeJSON(w, map[string]any{"tree": sess.FS.Tree(), "cwd": sess.CWD})
}

type SaveFileRequest struct {
	SessionID string `json:"sessionId"`
	Path      string `json:"path"`
	Language  string `json:"language"`
	Content   string `json:"content"`
}

// handleSaveFile is the editor's write path into the working tree.
func (s *Server) handleSaveFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SaveFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Path == "" {
		http.Error(w, "path is required", http.StatusBadRequest)
		return
	}
	lang := req.Language
	if lang == "" {
		lang = vfs.DetectLanguage(req.Path)
	}

	sess := s.session(req.SessionID)
	sess.Lock()
	sess.FS.Write(req.Path, req.Content, lang)
	sess.Unlock()

	s.refreshPreview(sess)
	writeJSON(w, map[string]string{"status": "saved"})
}

func (s *Server) handleGetPreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	p := s.previewFor(r.URL.Query().Get("sessionId"))
	p.mu.Lock()
	doc := p.doc
	p.mu.Unlock()
	writeJSON(w, map[string]string{"document": doc})
}
