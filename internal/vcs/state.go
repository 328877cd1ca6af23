package vcs

import "studio/internal/vfs"

// GraphState is the serialized VCS view handed to the frontend.
type GraphState struct {
	Initialized  bool              `json:"initialized"`
	Commits      []*Commit         `json:"commits"`
	Branches     map[string]string `json:"branches"`
	Current      string            `json:"currentBranch"`
	Staging      []string          `json:"staging"`
	Stashes      []*Stash          `json:"stashes"`
	FileStatuses map[string]string `json:"fileStatuses"`
}

// State snapshots the repository for serialization. The commit list is
// the current branch's history, newest first.
func (r *Repository) State(fsys *vfs.FS) GraphState {
	if !r.Initialized {
		return GraphState{}
	}
	return GraphState{
		Initialized:  true,
		Commits:      r.History(),
		Branches:     r.Branches,
		Current:      r.Current,
		Staging:      r.StagedPaths(),
		Stashes:      r.Stashes,
		FileStatuses: r.Classify(fsys),
	}
}
