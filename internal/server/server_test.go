package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio/internal/shell"
	_ "studio/internal/shell/commands" // register commands
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(shell.NewSessionManager(), nil, nil)
}

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func TestInitSession(t *testing.T) {
	srv := newTestServer(t)
	w := postJSON(t, srv, "/api/session/init", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[map[string]string](t, w)
	assert.NotEmpty(t, resp["sessionId"])
}

func TestExecCommand(t *testing.T) {
	srv := newTestServer(t)

	w := postJSON(t, srv, "/api/command", CommandRequest{SessionID: "s1", Command: "git init"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[CommandResponse](t, w)
	assert.Contains(t, resp.Output, "Initialized empty Git repository")
	assert.Equal(t, "/", resp.CWD)
	assert.Equal(t, []string{"$ git init", resp.Output}, resp.Transcript)

	// Session state persists across requests.
	w = postJSON(t, srv, "/api/command", CommandRequest{SessionID: "s1", Command: "git status"})
	resp = decode[CommandResponse](t, w)
	assert.Contains(t, resp.Output, "On branch main")

	t.Run("BadPayload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader("{nope"))
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/command", nil)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestLoadProjectAndTree(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"projectName": "demo",
		"files": [
			{"path": "index.html", "language": "html", "content": "<html></html>"},
			{"path": "src/app.js", "language": "javascript", "content": "1"}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/project/load?sessionId=s1", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	treeReq := httptest.NewRequest(http.MethodGet, "/api/tree?sessionId=s1", nil)
	tw := httptest.NewRecorder()
	srv.ServeHTTP(tw, treeReq)
	require.Equal(t, http.StatusOK, tw.Code)

	var resp struct {
		Tree []struct {
			Name  string `json:"name"`
			IsDir bool   `json:"isDir"`
		} `json:"tree"`
		CWD string `json:"cwd"`
	}
	require.NoError(t, json.NewDecoder(tw.Body).Decode(&resp))
	require.Len(t, resp.Tree, 2)
	assert.Equal(t, "src", resp.Tree[0].Name, "directories sort before files")
	assert.True(t, resp.Tree[0].IsDir)
	assert.Equal(t, "index.html", resp.Tree[1].Name)
}

func TestLoadProjectMalformedLeavesSessionAlone(t *testing.T) {
	srv := newTestServer(t)

	// Establish some state first.
	postJSON(t, srv, "/api/command", CommandRequest{SessionID: "s1", Command: "echo hi > a.txt"})

	req := httptest.NewRequest(http.MethodPost, "/api/project/load?sessionId=s1", strings.NewReader("{broken"))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	sess, ok := srv.SessionManager.GetSession("s1")
	require.True(t, ok)
	_, found := sess.FS.Read("a.txt")
	assert.True(t, found, "failed load must not touch the session")
}

func TestApplyFixEndpoint(t *testing.T) {
	srv := newTestServer(t)
	postJSON(t, srv, "/api/command", CommandRequest{SessionID: "s1", Command: "echo old > app.js"})

	w := postJSON(t, srv, "/api/project/fix", map[string]any{
		"sessionId": "s1",
		"files": []map[string]string{
			{"path": "app.js", "language": "javascript", "content": "new"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	sess, _ := srv.SessionManager.GetSession("s1")
	e, _ := sess.FS.Read("app.js")
	assert.Equal(t, "new", e.Content)
}

func TestCompleteEndpoint(t *testing.T) {
	srv := newTestServer(t)
	postJSON(t, srv, "/api/command", CommandRequest{SessionID: "s1", Command: "mkdir src"})
	postJSON(t, srv, "/api/command", CommandRequest{SessionID: "s1", Command: "touch src/index.js"})

	w := postJSON(t, srv, "/api/complete", CompleteRequest{SessionID: "s1", Line: "cat src/i"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "cat src/index.js ", resp["line"])
}

func TestSaveFile(t *testing.T) {
	srv := newTestServer(t)
	w := postJSON(t, srv, "/api/file/save", SaveFileRequest{
		SessionID: "s1", Path: "src/app.js", Content: "edited",
	})
	require.Equal(t, http.StatusOK, w.Code)

	sess, _ := srv.SessionManager.GetSession("s1")
	e, ok := sess.FS.Read("src/app.js")
	require.True(t, ok)
	assert.Equal(t, "edited", e.Content)
	assert.Equal(t, "javascript", e.Language)
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	resp := decode[map[string]string](t, w)
	assert.Equal(t, "pong", resp["message"])
}
