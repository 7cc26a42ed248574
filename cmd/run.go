package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduforge/eduforge/internal/app"
	"github.com/eduforge/eduforge/internal/chat"
	"github.com/eduforge/eduforge/internal/config"
	"github.com/eduforge/eduforge/internal/content"
	"github.com/eduforge/eduforge/internal/llm"
	"github.com/eduforge/eduforge/internal/screens/experience"
	"github.com/eduforge/eduforge/internal/store"
	"github.com/eduforge/eduforge/internal/video"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(cmd, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps, err := buildDeps(cmd, cfg, st)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Deps:     deps,
		History:  st,
		Defaults: cfg.Learner,
	})
}

// buildDeps wires the generation services from config and environment.
func buildDeps(cmd *cobra.Command, cfg config.Config, rec store.Recorder) (experience.Deps, error) {
	llmCfg := llm.ConfigFromEnv()
	if cfg.Provider != "" {
		llmCfg.Provider = cfg.Provider
	}
	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return experience.Deps{}, fmt.Errorf("no model provider configured: %w\n\nSet GROQ_API_KEY (or another provider key) and try again", err)
		}
		llmCfg = discovered
	}
	llmCfg.SetModel(cfg.Model)

	provider, err := llm.NewProvider(cmd.Context(), llmCfg, rec)
	if err != nil {
		return experience.Deps{}, err
	}

	videoClient, err := video.NewClient(video.Config{
		BaseURL: cfg.Video.BaseURL,
		Timeout: cfg.Video.Timeout,
	})
	if err != nil {
		return experience.Deps{}, err
	}

	return experience.Deps{
		Generator: content.NewGenerator(provider, content.DefaultConfig()),
		Video:     videoClient,
		Tutor:     chat.NewTutor(provider, chat.DefaultConfig()),
		Recorder:  rec,
	}, nil
}
