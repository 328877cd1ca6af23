package vcs

import (
	"fmt"
	"strings"

	"studio/internal/vfs"
)

// ListBranches prints every branch in creation order with the current
// one marked.
func (r *Repository) ListBranches() string {
	var sb strings.Builder
	for _, name := range r.BranchOrder {
		if name == r.Current {
			sb.WriteString("* " + name + "\n")
		} else {
			sb.WriteString("  " + name + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// CreateBranch points a new branch at the current head.
func (r *Repository) CreateBranch(name string) error {
	if _, ok := r.Branches[name]; ok {
		return fmt.Errorf("fatal: a branch named '%s' already exists", name)
	}
	r.Branches[name] = r.Branches[r.Current]
	r.BranchOrder = append(r.BranchOrder, name)
	return nil
}

// Checkout switches branches and replaces the working tree wholesale
// with the target head's snapshot (empty when the head is unset).
// Uncommitted changes are dropped; that is the documented behavior of
// this simplified model, not an accident.
func (r *Repository) Checkout(fsys *vfs.FS, name string) (string, error) {
	if _, ok := r.Branches[name]; !ok {
		return "", fmt.Errorf("error: pathspec '%s' did not match any file(s) known to git", name)
	}
	r.Current = name
	fsys.Restore(r.headSnapshot())
	r.Staging = make(map[string]bool)
	return fmt.Sprintf("Switched to branch '%s'", name), nil
}

// ancestors collects the ids reachable from a head, the head included.
func (r *Repository) ancestors(headID string) map[string]bool {
	set := make(map[string]bool)
	for id := headID; id != ""; {
		c, ok := r.Commits[id]
		if !ok {
			break
		}
		set[id] = true
		id = c.ParentID
	}
	return set
}

// Rebase replays the current branch's commits that are not ancestors of
// the target onto the target's head. Each replayed commit is a new
// commit with a fresh id and timestamp carrying the original message;
// its snapshot is the changes it made relative to its original parent,
// applied on top of the new parent's snapshot. When both sides touched
// a path, the replayed version silently wins. The working tree is
// replaced with the final replayed snapshot.
func (r *Repository) Rebase(fsys *vfs.FS, target string) (string, error) {
	if _, ok := r.Branches[target]; !ok {
		return "", fmt.Errorf("fatal: invalid upstream '%s'", target)
	}
	if target == r.Current {
		return fmt.Sprintf("Current branch %s is up to date.", r.Current), nil
	}

	base := r.ancestors(r.Branches[target])

	var replay []*Commit // collected newest first
	for id := r.Branches[r.Current]; id != "" && !base[id]; {
		c, ok := r.Commits[id]
		if !ok {
			break
		}
		replay = append(replay, c)
		id = c.ParentID
	}
	if len(replay) == 0 {
		return fmt.Sprintf("Current branch %s is up to date.", r.Current), nil
	}

	// Oldest first.
	for i, j := 0, len(replay)-1; i < j; i, j = i+1, j-1 {
		replay[i], replay[j] = replay[j], replay[i]
	}

	parent := r.Branches[target]
	parentFiles := map[string]vfs.Entry{}
	if c, ok := r.Commits[parent]; ok {
		parentFiles = c.Files
	}
	for _, old := range replay {
		oldBase := map[string]vfs.Entry{}
		if p, ok := r.Commits[old.ParentID]; ok {
			oldBase = p.Files
		}
		files := copySnapshot(parentFiles)
		for p, e := range old.Files {
			if b, ok := oldBase[p]; !ok || b.Content != e.Content {
				files[p] = e
			}
		}
		for p := range oldBase {
			if _, ok := old.Files[p]; !ok {
				delete(files, p)
			}
		}
		c := &Commit{
			ID:        newID(),
			Message:   old.Message,
			Author:    old.Author,
			Timestamp: timestamp(),
			Files:     files,
			ParentID:  parent,
		}
		r.Commits[c.ID] = c
		parent = c.ID
		parentFiles = files
	}
	r.Branches[r.Current] = parent
	fsys.Restore(r.headSnapshot())
	return fmt.Sprintf("Successfully rebased and updated refs/heads/%s.", r.Current), nil
}
