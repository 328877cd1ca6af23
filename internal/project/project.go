// Package project moves file sets in and out of a session: loading a
// generated project, applying an externally-produced fix, and exporting
// the tree view the editor renders.
package project

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"

	"studio/internal/shell"
	"studio/internal/vfs"
)

// File is one file of an externally-sourced project or fix set.
type File struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Content  string `json:"content"`
}

// Parse decodes a JSON file set. On error nothing has been touched, so
// the caller can surface the parse failure and leave the session
// uninitialized.
func Parse(r io.Reader) (string, []File, error) {
	var payload struct {
		ProjectName string `json:"projectName"`
		Files       []File `json:"files"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return "", nil, fmt.Errorf("parsing project file set: %w", err)
	}
	if len(payload.Files) == 0 {
		return "", nil, fmt.Errorf("parsing project file set: no files")
	}
	return payload.ProjectName, payload.Files, nil
}

// Load resets the session to exactly these files: fresh filesystem,
// uninitialized VCS, cwd back at root.
func Load(s *shell.Session, name string, files []File) {
	fsys := vfs.New()
	for _, f := range files {
		writeFile(fsys, f)
	}
	s.Reset(name, fsys)
}

// Import resets the session from an existing standard filesystem, for
// projects that arrive as a billy tree rather than a JSON file set.
// Empty directories survive as placeholders.
func Import(s *shell.Session, name string, bfs billy.Filesystem) error {
	fsys, err := vfs.FromBilly(bfs)
	if err != nil {
		return fmt.Errorf("importing project filesystem: %w", err)
	}
	s.Reset(name, fsys)
	return nil
}

// ApplyFix upserts the fixed files into the working tree in one step.
// The caller holds the session lock, so the update never interleaves
// with a running command.
func ApplyFix(s *shell.Session, files []File) {
	for _, f := range files {
		writeFile(s.FS, f)
	}
}

func writeFile(fsys *vfs.FS, f File) {
	lang := f.Language
	if lang == "" {
		lang = vfs.DetectLanguage(f.Path)
	}
	fsys.Write(f.Path, f.Content, lang)
}

// Export returns the session's files in file-set form, the shape the
// fix service consumes.
func Export(s *shell.Session) []File {
	var out []File
	for _, p := range s.FS.Paths() {
		e, _ := s.FS.Read(p)
		out = append(out, File{Path: p, Language: e.Language, Content: e.Content})
	}
	return out
}
