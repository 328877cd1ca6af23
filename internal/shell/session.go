// Package shell holds the per-session state of the simulated terminal
// (filesystem, cwd, repository, transcript, history) and the command
// registry that operates on it.
package shell

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"studio/internal/complete"
	"studio/internal/vcs"
	"studio/internal/vfs"
)

// Session is one user's simulated environment. All command execution
// runs synchronously under the session lock; there is no parallelism
// inside a session.
type Session struct {
	ID          string
	ProjectName string
	FS          *vfs.FS
	Repo        *vcs.Repository
	CWD         string
	Transcript  []string
	History     []string // most recent first
	histCursor  int
	Completer   *complete.Engine
	CreatedAt   time.Time
	Manager     *SessionManager
	mu          sync.RWMutex
}

// SessionManager hands out sessions keyed by id.
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// CreateSession initializes a new session, or returns the existing one
// for the id. An empty id gets a generated one.
func (sm *SessionManager) CreateSession(id string) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	if s, ok := sm.sessions[id]; ok {
		return s
	}
	s := &Session{
		ID:         id,
		FS:         vfs.New(),
		Repo:       vcs.NewRepository(),
		CWD:        "/",
		Completer:  complete.NewEngine(),
		CreatedAt:  time.Now(),
		Manager:    sm,
		histCursor: -1,
	}
	sm.sessions[id] = s
	return s
}

// GetSession retrieves a session by id.
func (sm *SessionManager) GetSession(id string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	s, ok := sm.sessions[id]
	return s, ok
}

func (s *Session) Lock()    { s.mu.Lock() }
func (s *Session) Unlock()  { s.mu.Unlock() }
func (s *Session) RLock()   { s.mu.RLock() }
func (s *Session) RUnlock() { s.mu.RUnlock() }

// Reset replaces the session's filesystem with the given one and drops
// all VCS, transcript and shell state. Used when a project is loaded.
func (s *Session) Reset(name string, fsys *vfs.FS) {
	s.ProjectName = name
	s.FS = fsys
	s.Repo = vcs.NewRepository()
	s.CWD = "/"
	s.Transcript = nil
	s.History = nil
	s.histCursor = -1
	s.Completer.Reset()
}

// Complete handles one completion key press against the session state.
// Callers hold the session lock.
func (s *Session) Complete(line string) complete.Result {
	return s.Completer.Complete(complete.Context{
		Line:           line,
		CWD:            s.CWD,
		FS:             s.FS,
		Commands:       Commands(),
		GitSubcommands: vcs.Subcommands,
	})
}
