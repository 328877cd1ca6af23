package vcs

import (
	"fmt"
	"sort"
	"strings"

	"studio/internal/vfs"
)

// File classification against the head snapshot and staging set.
const (
	StatusStagedNew        = "staged-new"
	StatusStagedModified   = "staged-modified"
	StatusStagedDeleted    = "staged-deleted"
	StatusUnstagedModified = "unstaged-modified"
	StatusUnstagedDeleted  = "unstaged-deleted"
	StatusUntracked        = "untracked"
)

// Classify maps every interesting path (directory placeholders excluded)
// to its status. Paths equal to their head version and not staged are
// clean and omitted.
func (r *Repository) Classify(fsys *vfs.FS) map[string]string {
	head := r.headSnapshot()
	out := make(map[string]string)

	for _, p := range fsys.Paths() {
		if placeholder(p) {
			continue
		}
		e, _ := fsys.Read(p)
		base, tracked := head[p]
		staged := r.Staging[p]
		switch {
		case staged && !tracked:
			out[p] = StatusStagedNew
		case staged && tracked && base.Content != e.Content:
			out[p] = StatusStagedModified
		case !staged && tracked && base.Content != e.Content:
			out[p] = StatusUnstagedModified
		case !staged && !tracked:
			out[p] = StatusUntracked
		}
	}
	for p := range head {
		if placeholder(p) {
			continue
		}
		if _, ok := fsys.Read(p); ok {
			continue
		}
		if r.Staging[p] {
			out[p] = StatusStagedDeleted
		} else {
			out[p] = StatusUnstagedDeleted
		}
	}
	return out
}

// Status renders the grouped working-tree report.
func (r *Repository) Status(fsys *vfs.FS) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "On branch %s\n", r.Current)
	if r.Head() == nil {
		sb.WriteString("\nNo commits yet\n")
	}

	classes := r.Classify(fsys)
	var staged, unstaged, untracked []string
	for _, p := range sortedKeys(classes) {
		switch classes[p] {
		case StatusStagedNew:
			staged = append(staged, "new file:   "+p)
		case StatusStagedModified:
			staged = append(staged, "modified:   "+p)
		case StatusStagedDeleted:
			staged = append(staged, "deleted:    "+p)
		case StatusUnstagedModified:
			unstaged = append(unstaged, "modified:   "+p)
		case StatusUnstagedDeleted:
			unstaged = append(unstaged, "deleted:    "+p)
		case StatusUntracked:
			untracked = append(untracked, p)
		}
	}

	if len(staged) > 0 {
		sb.WriteString("\nChanges to be committed:\n")
		for _, line := range staged {
			sb.WriteString("\t" + line + "\n")
		}
	}
	if len(unstaged) > 0 {
		sb.WriteString("\nChanges not staged for commit:\n  (use \"git add <file>...\" to update what will be committed)\n")
		for _, line := range unstaged {
			sb.WriteString("\t" + line + "\n")
		}
	}
	if len(untracked) > 0 {
		sb.WriteString("\nUntracked files:\n  (use \"git add <file>...\" to include in what will be committed)\n")
		for _, line := range untracked {
			sb.WriteString("\t" + line + "\n")
		}
	}
	if len(staged) == 0 && len(unstaged) == 0 && len(untracked) == 0 {
		sb.WriteString("\nnothing to commit, working tree clean\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// placeholder reports whether a path is a directory placeholder entry.
func placeholder(p string) bool {
	return p == vfs.Keep || strings.HasSuffix(p, "/"+vfs.Keep)
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
