package vfs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// FromBilly ingests an existing billy filesystem into a flat FS. Empty
// directories become placeholder entries so they survive the round trip.
func FromBilly(bfs billy.Filesystem) (*FS, error) {
	f := New()
	err := util.Walk(bfs, "/", func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		k := key(path)
		if k == "" {
			return nil
		}
		if fi.IsDir() {
			entries, err := bfs.ReadDir(path)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				f.files[k+"/"+Keep] = Entry{}
			}
			return nil
		}
		file, err := bfs.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			return err
		}
		f.files[k] = Entry{Content: string(content), Language: DetectLanguage(k)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ToBilly exports a snapshot to a fresh in-memory billy filesystem, the
// standard view consumers like the preview composer expect.
func ToBilly(snap map[string]Entry) (billy.Filesystem, error) {
	bfs := memfs.New()
	for p, e := range snap {
		if strings.HasSuffix(p, "/"+Keep) || p == Keep {
			if err := bfs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
				return nil, err
			}
			continue
		}
		if err := util.WriteFile(bfs, p, []byte(e.Content), 0o644); err != nil {
			return nil, err
		}
	}
	return bfs, nil
}

// DetectLanguage guesses an editor language id from a file extension.
func DetectLanguage(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return "html"
	case ".css":
		return "css"
	case ".js", ".mjs":
		return "javascript"
	case ".ts":
		return "typescript"
	case ".json":
		return "json"
	case ".md":
		return "markdown"
	case ".go":
		return "go"
	case ".py":
		return "python"
	default:
		return "plaintext"
	}
}
