package video

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Config{
		BaseURL:   server.URL,
		Timeout:   timeout,
		OutputDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestGenerateSuccess(t *testing.T) {
	payload := []byte("fake mp4 bytes")
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate_video" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		_, _ = w.Write(payload)
	}, time.Minute)

	asset, err := c.Generate(context.Background(), "c123")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if asset.Size() != int64(len(payload)) {
		t.Errorf("size = %d, want %d", asset.Size(), len(payload))
	}

	data, err := os.ReadFile(asset.Path())
	if err != nil {
		t.Fatalf("read asset: %v", err)
	}
	if string(data) != string(payload) {
		t.Error("stored payload differs")
	}

	path := asset.Path()
	if err := asset.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("backing file should be removed on release")
	}
	if !asset.Released() {
		t.Error("asset should report released")
	}
}

func TestGenerateNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, time.Minute)

	_, err := c.Generate(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if Classify(err) != FailureNotFound {
		t.Errorf("Classify = %v, want FailureNotFound", Classify(err))
	}
}

func TestGenerateTimeout(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}, 50*time.Millisecond)

	_, err := c.Generate(context.Background(), "slow")
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
	if Classify(err) != FailureTimeout {
		t.Errorf("Classify = %v, want FailureTimeout", Classify(err))
	}
}

func TestGenerateServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, time.Minute)

	_, err := c.Generate(context.Background(), "c1")
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *RenderError, got %v", err)
	}
	if rerr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d", rerr.Status)
	}
	if Classify(err) != FailureGeneric {
		t.Errorf("Classify = %v, want FailureGeneric", Classify(err))
	}
}

func TestGenerateEmptyPayloadRejected(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, time.Minute)

	_, err := c.Generate(context.Background(), "c1")
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Errorf("expected *RenderError for empty payload, got %v", err)
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Error("missing BaseURL must be rejected")
	}
}

func TestReleaseIdempotent(t *testing.T) {
	dir := t.TempDir()
	f, err := os.CreateTemp(dir, "asset-*.mp4")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = f.WriteString("x")
	_ = f.Close()

	a := NewAssetForTest(f.Name(), 1)
	if err := a.Release(); err != nil {
		t.Fatalf("first Release: %v", err)
	}
	if err := a.Release(); err != nil {
		t.Fatalf("second Release must be a no-op: %v", err)
	}
	if _, err := os.Stat(f.Name()); !os.IsNotExist(err) {
		t.Error("backing file should be removed")
	}
	if a.Path() != "" {
		t.Error("Path after release must be empty")
	}
}

func TestFailureMessageNeverBlamesContent(t *testing.T) {
	for _, err := range []error{ErrNotFound, ErrTimeout, &RenderError{Status: 500}} {
		msg := FailureMessage(err)
		if msg == "" {
			t.Errorf("no message for %v", err)
		}
	}
}
