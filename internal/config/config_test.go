package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != "groq" {
		t.Errorf("default provider = %q", cfg.Provider)
	}
	if cfg.Video.Timeout != 180*time.Second {
		t.Errorf("default video timeout = %v", cfg.Video.Timeout)
	}
	if cfg.Learner.Style != "visual" {
		t.Errorf("default style = %q", cfg.Learner.Style)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `provider: openai
video:
  base_url: http://render.local:9000
  timeout: 30s
learner:
  level: advanced
  style: reading
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Video.BaseURL != "http://render.local:9000" {
		t.Errorf("base url = %q", cfg.Video.BaseURL)
	}
	if cfg.Video.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Video.Timeout)
	}
	if cfg.Learner.Level != "advanced" || cfg.Learner.Style != "reading" {
		t.Errorf("learner = %+v", cfg.Learner)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("provider: [nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml must error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("provider: openai\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("EDUFORGE_PROVIDER", "anthropic")
	t.Setenv("EDUFORGE_VIDEO_URL", "http://other:8000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("env must win over file, got %q", cfg.Provider)
	}
	if cfg.Video.BaseURL != "http://other:8000" {
		t.Errorf("video url = %q", cfg.Video.BaseURL)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	in := Default()
	in.Provider = "gemini"
	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Provider != "gemini" {
		t.Errorf("round trip provider = %q", out.Provider)
	}
}

func TestPathHonorsEnv(t *testing.T) {
	t.Setenv("EDUFORGE_CONFIG", "/tmp/custom.yaml")
	if Path() != "/tmp/custom.yaml" {
		t.Errorf("Path() = %q", Path())
	}

	t.Setenv("EDUFORGE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if Path() != "/tmp/xdg/eduforge/config.yaml" {
		t.Errorf("Path() = %q", Path())
	}
}
