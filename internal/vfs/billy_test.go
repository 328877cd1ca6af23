package vfs

import (
	"io"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBilly(t *testing.T) {
	bfs := memfs.New()
	require.NoError(t, util.WriteFile(bfs, "index.html", []byte("<html></html>"), 0o644))
	require.NoError(t, util.WriteFile(bfs, "src/app.js", []byte("let x = 1"), 0o644))
	require.NoError(t, bfs.MkdirAll("empty", 0o755))

	fs, err := FromBilly(bfs)
	require.NoError(t, err)

	e, ok := fs.Read("index.html")
	require.True(t, ok)
	assert.Equal(t, "<html></html>", e.Content)
	assert.Equal(t, "html", e.Language)

	e, ok = fs.Read("src/app.js")
	require.True(t, ok)
	assert.Equal(t, "javascript", e.Language)

	// The empty directory survived as a placeholder.
	assert.True(t, fs.IsDir("empty"))
}

func TestToBilly(t *testing.T) {
	fs := New()
	fs.Write("src/app.js", "let x = 1", "javascript")
	require.NoError(t, fs.Mkdir("assets"))

	bfs, err := ToBilly(fs.Snapshot())
	require.NoError(t, err)

	f, err := bfs.Open("src/app.js")
	require.NoError(t, err)
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	f.Close()
	assert.Equal(t, "let x = 1", string(content))

	fi, err := bfs.Stat("assets")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "html", DetectLanguage("index.html"))
	assert.Equal(t, "markdown", DetectLanguage("docs/README.md"))
	assert.Equal(t, "plaintext", DetectLanguage("LICENSE"))
}
