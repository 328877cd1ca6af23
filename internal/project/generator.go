package project

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Generator is the external generative service boundary: a prompt
// becomes a project file set, a broken file set becomes a fixed one.
// Both calls are opaque; a failure leaves session state untouched and
// is surfaced once to the user.
type Generator interface {
	GenerateProject(ctx context.Context, prompt string) (string, []File, error)
	FixProject(ctx context.Context, files []File, problem string) ([]File, error)
}

// HTTPGenerator talks JSON to a generation endpoint.
type HTTPGenerator struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPGenerator(endpoint string) *HTTPGenerator {
	return &HTTPGenerator{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 120 * time.Second},
	}
}

var _ Generator = (*HTTPGenerator)(nil)

func (g *HTTPGenerator) GenerateProject(ctx context.Context, prompt string) (string, []File, error) {
	var resp struct {
		ProjectName string `json:"projectName"`
		Files       []File `json:"files"`
	}
	err := g.post(ctx, "/generate", map[string]any{"prompt": prompt}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.ProjectName, resp.Files, nil
}

func (g *HTTPGenerator) FixProject(ctx context.Context, files []File, problem string) ([]File, error) {
	var resp struct {
		Files []File `json:"files"`
	}
	err := g.post(ctx, "/fix", map[string]any{"files": files, "problem": problem}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Files, nil
}

func (g *HTTPGenerator) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.Client.Do(req)
	if err != nil {
		return fmt.Errorf("calling generator: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("generator returned %s", res.Status)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
