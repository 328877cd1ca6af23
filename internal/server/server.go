// Package server exposes the simulated environment to the editor
// frontend over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"studio/internal/config"
	"studio/internal/logging"
	"studio/internal/preview"
	"studio/internal/project"
	"studio/internal/shell"
	"studio/internal/vfs"
)

type Server struct {
	SessionManager *shell.SessionManager
	Generator      project.Generator
	Log            *logging.Logger
	Mux            *http.ServeMux

	mu       sync.Mutex
	previews map[string]*sessionPreview
}

// sessionPreview holds the debounced preview pipeline for one session.
type sessionPreview struct {
	debouncer *preview.Debouncer

	mu  sync.Mutex
	doc string
}

func NewServer(sm *shell.SessionManager, gen project.Generator, log *logging.Logger) *Server {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Server{
		SessionManager: sm,
		Generator:      gen,
		Log:            log,
		Mux:            http.NewServeMux(),
		previews:       make(map[string]*sessionPreview),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Mux.HandleFunc("/ping", s.handlePing)
	s.Mux.HandleFunc("/api/session/init", s.handleInitSession)
	s.Mux.HandleFunc("/api/command", s.handleExecCommand)
	s.Mux.HandleFunc("/api/complete", s.handleComplete)
	s.Mux.HandleFunc("/api/state", s.handleGetState)
	s.Mux.HandleFunc("/api/tree", s.handleGetTree)
	s.Mux.HandleFunc("/api/file/save", s.handleSaveFile)
	s.Mux.HandleFunc("/api/project/load", s.handleLoadProject)
	s.Mux.HandleFunc("/api/project/generate", s.handleGenerateProject)
	s.Mux.HandleFunc("/api/project/fix", s.handleFixProject)
	s.Mux.HandleFunc("/api/preview", s.handleGetPreview)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.Mux.ServeHTTP(w, r)
	s.Log.Debug("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Duration("elapsed", time.Since(start)))
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "pong", "system": "Studio Backend"})
}

// session returns the session for a request, creating it when the id is
// unknown (the frontend may outlive a backend restart).
func (s *Server) session(id string) *shell.Session {
	if sess, ok := s.SessionManager.GetSession(id); ok {
		return sess
	}
	return s.SessionManager.CreateSession(id)
}

// previewFor lazily builds the per-session preview pipeline.
func (s *Server) previewFor(id string) *sessionPreview {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.previews[id]; ok {
		return p
	}
	p := &sessionPreview{}
	p.debouncer = preview.NewDebouncer(config.Global.PreviewDelay, preview.DefaultBuilder, func(doc string) {
		p.mu.Lock()
		p.doc = doc
		p.mu.Unlock()
	})
	s.previews[id] = p
	return p
}

// refreshPreview schedules a debounced preview rebuild from the current
// working tree. Latest snapshot wins.
func (s *Server) refreshPreview(sess *shell.Session) {
	var snap map[string]vfs.Entry
	sess.RLock()
	snap = sess.FS.Snapshot()
	sess.RUnlock()
	s.previewFor(sess.ID).debouncer.Trigger(snap)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
