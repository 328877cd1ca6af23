// Package vcs models the simulated version control layered on a session
// filesystem: a parent-linked commit graph of full snapshots, a branch
// table, a staging set and a stash stack. It is a behavioral subset of
// git, not a git implementation; every operation is a transition method
// on one cohesive Repository value so state before/after a command can
// be asserted directly.
package vcs

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"studio/internal/vfs"
)

// DefaultBranch is the branch created by Init.
const DefaultBranch = "main"

// Author recorded on every simulated commit.
const Author = "studio <studio@local>"

// Subcommands is the fixed set offered by completion and help.
var Subcommands = []string{
	"add", "branch", "checkout", "commit", "init",
	"log", "rebase", "stash", "status",
}

// Commit is an immutable snapshot of the filesystem. Rebase never edits
// a commit in place; it creates replacements with fresh ids.
type Commit struct {
	ID        string               `json:"id"`
	Message   string               `json:"message"`
	Author    string               `json:"author"`
	Timestamp string               `json:"timestamp"`
	Files     map[string]vfs.Entry `json:"-"`
	ParentID  string               `json:"parentId"`
}

// Repository holds the whole VCS state for one session.
type Repository struct {
	Initialized bool
	Commits     map[string]*Commit
	Branches    map[string]string // branch name -> head commit id, "" = no commits
	BranchOrder []string          // creation order, for listing
	Current     string
	Staging     map[string]bool
	Stashes     []*Stash // index 0 = most recent
}

// NewRepository returns an uninitialized repository; every command but
// init must fail on it.
func NewRepository() *Repository {
	return &Repository{}
}

// Init (re)initializes the repository. Re-init is idempotent and resets
// all VCS state.
func (r *Repository) Init() string {
	r.Initialized = true
	r.Commits = make(map[string]*Commit)
	r.Branches = map[string]string{DefaultBranch: ""}
	r.BranchOrder = []string{DefaultBranch}
	r.Current = DefaultBranch
	r.Staging = make(map[string]bool)
	r.Stashes = nil
	return "Initialized empty Git repository in /.git/"
}

// Head returns the current branch's head commit, nil when there is none.
func (r *Repository) Head() *Commit {
	if !r.Initialized {
		return nil
	}
	id := r.Branches[r.Current]
	if id == "" {
		return nil
	}
	return r.Commits[id]
}

// headSnapshot returns the head commit's file snapshot, empty when there
// are no commits yet.
func (r *Repository) headSnapshot() map[string]vfs.Entry {
	if head := r.Head(); head != nil {
		return head.Files
	}
	return map[string]vfs.Entry{}
}

// newID mints an opaque commit/stash id. Uniqueness is good enough for
// the simulated scope, not cryptographically guaranteed.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}

func timestamp() string {
	return time.Now().Format("Mon Jan 2 15:04:05 2006 -0700")
}

func copySnapshot(snap map[string]vfs.Entry) map[string]vfs.Entry {
	out := make(map[string]vfs.Entry, len(snap))
	for p, e := range snap {
		out[p] = e
	}
	return out
}
