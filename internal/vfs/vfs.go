// Package vfs implements the simulated in-memory filesystem backing a
// Studio session. Files are kept in a flat map keyed by slash-delimited
// paths; directories are never stored, they are inferred from key
// prefixes. An otherwise-empty directory is represented by a zero-byte
// placeholder entry at <dir>/.gitkeep.
package vfs

import (
	"errors"
	"sort"
	"strings"
)

// Keep is the placeholder file name that marks an empty directory.
const Keep = ".gitkeep"

// ErrExist is returned by Mkdir when the target already exists.
var ErrExist = errors.New("File exists")

// Entry is the content and metadata stored for a single file.
type Entry struct {
	Content  string `json:"content"`
	Language string `json:"language"`
}

// FS is the flat path -> entry mapping. Keys are normalized paths with no
// leading slash. FS is not safe for concurrent use; the owning session
// serializes access.
type FS struct {
	files map[string]Entry
}

// New returns an empty filesystem.
func New() *FS {
	return &FS{files: make(map[string]Entry)}
}

// key normalizes an absolute or already-normalized path into map-key form.
func key(path string) string {
	return strings.Trim(path, "/")
}

// Len returns the number of stored entries, placeholders included.
func (f *FS) Len() int { return len(f.files) }

// Paths returns every stored key, lexically sorted.
func (f *FS) Paths() []string {
	out := make([]string, 0, len(f.files))
	for p := range f.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Read returns the entry stored at exactly path.
func (f *FS) Read(path string) (Entry, bool) {
	e, ok := f.files[key(path)]
	return e, ok
}

// Write upserts the entry at path.
func (f *FS) Write(path, content, language string) {
	f.files[key(path)] = Entry{Content: content, Language: language}
}

// Exists reports whether path is a stored file or an inferred directory.
func (f *FS) Exists(path string) bool {
	if _, ok := f.files[key(path)]; ok {
		return true
	}
	return f.IsDir(path)
}

// IsDir reports whether path is the root or a prefix of some stored key.
func (f *FS) IsDir(path string) bool {
	k := key(path)
	if k == "" {
		return true
	}
	prefix := k + "/"
	for p := range f.files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// List returns the immediate children of a directory, deduplicated and
// lexically sorted. Child directories carry a trailing slash. Placeholder
// files are hidden. ok is false when path is not a directory.
func (f *FS) List(path string) (entries []string, ok bool) {
	if !f.IsDir(path) {
		return nil, false
	}
	prefix := key(path)
	if prefix != "" {
		prefix += "/"
	}
	seen := make(map[string]bool)
	for p := range f.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := p[len(prefix):]
		if i := strings.Index(rest, "/"); i >= 0 {
			seen[rest[:i]+"/"] = true
		} else if rest != Keep {
			seen[rest] = true
		}
	}
	for name := range seen {
		entries = append(entries, name)
	}
	sort.Strings(entries)
	return entries, true
}

// Delete removes path. A file removes exactly that key; a directory
// removes every key at or under it, its placeholder included. Returns
// false when path matched nothing.
func (f *FS) Delete(path string) bool {
	k := key(path)
	if _, ok := f.files[k]; ok {
		delete(f.files, k)
		return true
	}
	prefix := k + "/"
	found := false
	for p := range f.files {
		if strings.HasPrefix(p, prefix) {
			delete(f.files, p)
			found = true
		}
	}
	return found
}

// Mkdir creates an empty directory by inserting its placeholder entry.
// Fails with ErrExist when the path is already a directory or a file.
func (f *FS) Mkdir(path string) error {
	k := key(path)
	if k == "" {
		return ErrExist
	}
	if _, ok := f.files[k]; ok {
		return ErrExist
	}
	if f.IsDir(k) {
		return ErrExist
	}
	f.files[k+"/"+Keep] = Entry{}
	return nil
}

// Snapshot returns a copy of the full mapping, suitable for embedding in
// a commit.
func (f *FS) Snapshot() map[string]Entry {
	snap := make(map[string]Entry, len(f.files))
	for p, e := range f.files {
		snap[p] = e
	}
	return snap
}

// Restore replaces the working tree wholesale with the given snapshot.
func (f *FS) Restore(snap map[string]Entry) {
	f.files = make(map[string]Entry, len(snap))
	for p, e := range snap {
		f.files[p] = e
	}
}
