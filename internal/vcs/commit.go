package vcs

import (
	"fmt"
	"sort"
	"strings"

	"studio/internal/vfs"
)

// Add stages paths for the next commit. "." stages every path in the
// working tree plus every head-snapshot path missing from it, which is
// how deletions get staged. A specific path must exist in the working
// tree or the head snapshot.
func (r *Repository) Add(fsys *vfs.FS, pathspec string) error {
	if pathspec == "." {
		head := r.headSnapshot()
		for _, p := range fsys.Paths() {
			r.Staging[p] = true
		}
		for p := range head {
			if _, ok := fsys.Read(p); !ok {
				r.Staging[p] = true
			}
		}
		return nil
	}

	k := strings.Trim(pathspec, "/")
	_, inTree := fsys.Read(k)
	_, inHead := r.headSnapshot()[k]
	if !inTree && !inHead {
		return fmt.Errorf("fatal: pathspec '%s' did not match any files", pathspec)
	}
	r.Staging[k] = true
	return nil
}

// Commit records the staged paths as a new commit on the current branch.
// The snapshot starts from the parent's files; each staged path is
// copied from the working tree, or dropped when absent (a staged
// deletion). Staging is cleared on success.
func (r *Repository) Commit(fsys *vfs.FS, message string) (string, error) {
	if len(r.Staging) == 0 {
		return "", fmt.Errorf("nothing to commit, working tree clean")
	}

	files := copySnapshot(r.headSnapshot())
	for p := range r.Staging {
		if e, ok := fsys.Read(p); ok {
			files[p] = e
		} else {
			delete(files, p)
		}
	}

	parent := r.Branches[r.Current]
	c := &Commit{
		ID:        newID(),
		Message:   message,
		Author:    Author,
		Timestamp: timestamp(),
		Files:     files,
		ParentID:  parent,
	}
	r.Commits[c.ID] = c
	r.Branches[r.Current] = c.ID
	r.Staging = make(map[string]bool)

	label := c.ID
	if parent == "" {
		label = "(root-commit) " + c.ID
	}
	return fmt.Sprintf("[%s %s] %s", r.Current, label, message), nil
}

// Log walks the current branch's history newest first.
func (r *Repository) Log() string {
	head := r.Head()
	if head == nil {
		return "No commits yet"
	}
	var sb strings.Builder
	for c := head; c != nil; c = r.Commits[c.ParentID] {
		fmt.Fprintf(&sb, "commit %s\nAuthor: %s\nDate:   %s\n\n    %s\n\n",
			c.ID, c.Author, c.Timestamp, c.Message)
		if c.ParentID == "" {
			break
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// History returns the current branch's commits newest first, for the
// serialized frontend state.
func (r *Repository) History() []*Commit {
	var out []*Commit
	for c := r.Head(); c != nil; c = r.Commits[c.ParentID] {
		out = append(out, c)
		if c.ParentID == "" {
			break
		}
	}
	return out
}

// StagedPaths returns the staging set, sorted.
func (r *Repository) StagedPaths() []string {
	out := make([]string, 0, len(r.Staging))
	for p := range r.Staging {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
