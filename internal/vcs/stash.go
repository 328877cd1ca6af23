package vcs

import (
	"fmt"
	"sort"
	"strings"

	"studio/internal/vfs"
)

// StashChanges is the three-way diff between the working tree and the
// head snapshot at stash time, plus the staging set it carried.
type StashChanges struct {
	Modified map[string]vfs.Entry `json:"modified"`
	Added    map[string]vfs.Entry `json:"added"`
	Deleted  []string             `json:"deleted"`
	Staged   []string             `json:"staged"`
}

// Stash is one saved working-tree diff, restorable later.
type Stash struct {
	ID      string       `json:"id"`
	Message string       `json:"message"`
	Branch  string       `json:"branch"`
	HeadID  string       `json:"headCommitId"`
	Changes StashChanges `json:"changes"`
}

// StashPush diffs the working tree against the head snapshot, saves the
// diff on top of the stash stack and resets the tree to the head state.
func (r *Repository) StashPush(fsys *vfs.FS) (string, error) {
	head := r.Head()
	if head == nil {
		return "", fmt.Errorf("error: you do not have the initial commit yet")
	}

	changes := StashChanges{
		Modified: make(map[string]vfs.Entry),
		Added:    make(map[string]vfs.Entry),
	}
	for _, p := range fsys.Paths() {
		e, _ := fsys.Read(p)
		if base, ok := head.Files[p]; !ok {
			changes.Added[p] = e
		} else if base.Content != e.Content {
			changes.Modified[p] = e
		}
	}
	for p := range head.Files {
		if _, ok := fsys.Read(p); !ok {
			changes.Deleted = append(changes.Deleted, p)
		}
	}
	sort.Strings(changes.Deleted)

	if len(changes.Added) == 0 && len(changes.Modified) == 0 && len(changes.Deleted) == 0 {
		return "No local changes to save", nil
	}

	changes.Staged = r.StagedPaths()
	st := &Stash{
		ID:      newID(),
		Message: fmt.Sprintf("WIP on %s: %s %s", r.Current, head.ID, firstLine(head.Message)),
		Branch:  r.Current,
		HeadID:  head.ID,
		Changes: changes,
	}
	r.Stashes = append([]*Stash{st}, r.Stashes...)

	fsys.Restore(head.Files)
	r.Staging = make(map[string]bool)
	return "Saved working directory and index state " + st.Message, nil
}

// StashList prints the stack, most recent first.
func (r *Repository) StashList() string {
	var sb strings.Builder
	for i, st := range r.Stashes {
		fmt.Fprintf(&sb, "stash@{%d}: %s\n", i, st.Message)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// StashApply replays the most recent stash onto the working tree and
// restores its staging set, leaving the stash in place. Only index 0 is
// ever targeted; stash@{n} arguments are not honored in this model.
func (r *Repository) StashApply(fsys *vfs.FS) (string, error) {
	if len(r.Stashes) == 0 {
		return "", fmt.Errorf("No stash found.")
	}
	st := r.Stashes[0]
	for p, e := range st.Changes.Added {
		fsys.Write(p, e.Content, e.Language)
	}
	for p, e := range st.Changes.Modified {
		fsys.Write(p, e.Content, e.Language)
	}
	for _, p := range st.Changes.Deleted {
		fsys.Delete(p)
	}
	r.Staging = make(map[string]bool)
	for _, p := range st.Changes.Staged {
		r.Staging[p] = true
	}
	return fmt.Sprintf("Applied stash@{0} (%s)", st.ID), nil
}

// StashPop applies the most recent stash, then drops it.
func (r *Repository) StashPop(fsys *vfs.FS) (string, error) {
	if _, err := r.StashApply(fsys); err != nil {
		return "", err
	}
	st := r.Stashes[0]
	r.Stashes = r.Stashes[1:]
	return fmt.Sprintf("Dropped stash@{0} (%s)", st.ID), nil
}

func firstLine(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		return s[:i]
	}
	return s
}
