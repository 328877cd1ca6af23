package project

import (
	"context"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio/internal/shell"
	_ "studio/internal/shell/commands" // register commands
)

func sampleFiles() []File {
	return []File{
		{Path: "index.html", Language: "html", Content: "<html></html>"},
		{Path: "src/app.js", Language: "javascript", Content: "let x = 1"},
	}
}

func TestLoadResetsSession(t *testing.T) {
	s := shell.NewSessionManager().CreateSession("t")

	// Dirty the session first.
	s.Run(context.Background(), "git init")
	s.Run(context.Background(), "echo junk > junk.txt")
	s.Run(context.Background(), "cd src")

	Load(s, "my-app", sampleFiles())

	assert.Equal(t, "my-app", s.ProjectName)
	assert.Equal(t, "/", s.CWD)
	assert.False(t, s.Repo.Initialized, "VCS back to uninitialized")
	assert.Empty(t, s.Transcript)
	assert.ElementsMatch(t, []string{"index.html", "src/app.js"}, s.FS.Paths())
}

func TestImportFromBillyTree(t *testing.T) {
	s := shell.NewSessionManager().CreateSession("t")
	s.Run(context.Background(), "git init")

	bfs := memfs.New()
	require.NoError(t, util.WriteFile(bfs, "index.html", []byte("<html></html>"), 0o644))
	require.NoError(t, util.WriteFile(bfs, "src/app.js", []byte("let x = 1"), 0o644))

	require.NoError(t, Import(s, "from-tree", bfs))

	assert.Equal(t, "from-tree", s.ProjectName)
	assert.False(t, s.Repo.Initialized, "VCS back to uninitialized")
	assert.ElementsMatch(t, []string{"index.html", "src/app.js"}, s.FS.Paths())

	e, ok := s.FS.Read("src/app.js")
	require.True(t, ok)
	assert.Equal(t, "javascript", e.Language, "language inferred from the extension")
}

func TestApplyFixUpserts(t *testing.T) {
	s := shell.NewSessionManager().CreateSession("t")
	Load(s, "app", sampleFiles())
	s.Run(context.Background(), "git init")

	ApplyFix(s, []File{
		{Path: "src/app.js", Language: "javascript", Content: "let x = 2"},
		{Path: "src/new.js", Content: "fresh"},
	})

	e, _ := s.FS.Read("src/app.js")
	assert.Equal(t, "let x = 2", e.Content)
	e, ok := s.FS.Read("src/new.js")
	require.True(t, ok)
	assert.Equal(t, "javascript", e.Language, "language inferred when omitted")

	// A fix only upserts; VCS state and untouched files survive.
	assert.True(t, s.Repo.Initialized)
	_, ok = s.FS.Read("index.html")
	assert.True(t, ok)
}

func TestParse(t *testing.T) {
	name, files, err := Parse(strings.NewReader(`{
		"projectName": "demo",
		"files": [{"path": "a.txt", "language": "plaintext", "content": "hi"}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "demo", name)
	require.Len(t, files, 1)
	assert.Equal(t, "a.txt", files[0].Path)

	t.Run("Malformed", func(t *testing.T) {
		_, _, err := Parse(strings.NewReader(`{not json`))
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, _, err := Parse(strings.NewReader(`{"projectName": "x", "files": []}`))
		assert.Error(t, err)
	})
}

func TestExport(t *testing.T) {
	s := shell.NewSessionManager().CreateSession("t")
	Load(s, "app", sampleFiles())

	out := Export(s)
	require.Len(t, out, 2)
	assert.Equal(t, "index.html", out[0].Path)
	assert.Equal(t, "<html></html>", out[0].Content)
}
