// Package video talks to the render service that turns a generated script
// into a narrated mp4. Rendering has no progress channel; callers get the
// finished payload or a classified failure.
package video

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Config holds render service settings.
type Config struct {
	// BaseURL is the root of the render API, e.g. "http://localhost:8001/api".
	BaseURL string

	// Timeout is the bounded wait for one render call. The service-side job
	// is not cancelled when this elapses; the client just gives up.
	Timeout time.Duration

	// OutputDir is where finished assets are written. Defaults to the OS
	// temp directory.
	OutputDir string
}

// DefaultConfig returns production defaults. The 180s timeout matches the
// longest render the service is expected to finish.
func DefaultConfig() Config {
	return Config{
		Timeout: 180 * time.Second,
	}
}

// Client fetches rendered videos over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a render client. The underlying http.Client carries no
// timeout of its own; the per-call context deadline is the only bound.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("video: BaseURL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
	}, nil
}

type renderRequest struct {
	ContentID string `json:"content_id"`
}

// Generate renders the video for a content id and stores the payload locally.
// Failures are classified: ErrNotFound for an unknown id, ErrTimeout when the
// bounded wait elapses, *RenderError otherwise.
func (c *Client) Generate(ctx context.Context, contentID string) (*Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(renderRequest{ContentID: contentID})
	if err != nil {
		return nil, fmt.Errorf("video: encode request: %w", err)
	}

	url := c.cfg.BaseURL + "/generate_video"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("video: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, &RenderError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, &RenderError{Status: resp.StatusCode}
	}

	return c.store(contentID, resp.Body)
}

// store writes the payload to the output directory and finalizes the asset.
func (c *Client) store(contentID string, r io.Reader) (*Asset, error) {
	dir := c.cfg.OutputDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("video: create output dir: %w", err)
	}

	f, err := os.CreateTemp(dir, "eduforge_"+contentID+"_*.mp4")
	if err != nil {
		return nil, fmt.Errorf("video: create file: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return nil, &RenderError{Err: fmt.Errorf("write payload: %w", err)}
	}
	if n == 0 {
		os.Remove(f.Name())
		return nil, &RenderError{Err: errors.New("empty payload")}
	}

	return &Asset{path: filepath.Clean(f.Name()), size: n}, nil
}
