package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
)

// Config is the application configuration loaded from the user's config file.
// Environment variables override file values.
type Config struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	Video    VideoConfig   `yaml:"video"`
	Learner  LearnerConfig `yaml:"learner"`
	DataDir  string        `yaml:"data_dir"`
}

// VideoConfig configures the video rendering backend.
type VideoConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// LearnerConfig holds defaults pre-filled into the request form.
type LearnerConfig struct {
	Level string `yaml:"level"`
	Style string `yaml:"style"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Provider: "groq",
		Video: VideoConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 180 * time.Second,
		},
		Learner: LearnerConfig{
			Level: "beginner",
			Style: "visual",
		},
	}
}

// Path returns the config file location, honoring EDUFORGE_CONFIG and
// XDG_CONFIG_HOME.
func Path() string {
	if p := os.Getenv("EDUFORGE_CONFIG"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "eduforge", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "eduforge", "config.yaml")
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Environment overrides are applied afterwards.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("EDUFORGE_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("EDUFORGE_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("EDUFORGE_VIDEO_URL"); v != "" {
		c.Video.BaseURL = v
	}
	if v := os.Getenv("EDUFORGE_DATA"); v != "" {
		c.DataDir = v
	}
}
