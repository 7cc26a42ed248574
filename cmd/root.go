package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eduforge/eduforge/internal/config"
	"github.com/eduforge/eduforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "eduforge",
	Short: "Personalized AI learning experiences in your terminal",
	Long:  "EduForge — generate a complete learning experience (objectives, quiz, flashcards, explainer video, tutor chat) for any topic.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A local .env is optional; missing is the normal case.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the data directory (overrides EDUFORGE_DATA)")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (overrides EDUFORGE_CONFIG)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig reads the config file honoring the --config flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := config.Path()
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		path = p
	}
	return config.Load(path)
}

// openStore opens the event store using --data, then config, then the default
// XDG path.
func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return store.Open(p)
	}
	if cfg.DataDir != "" {
		return store.Open(cfg.DataDir)
	}
	dir, err := store.DefaultDir()
	if err != nil {
		return nil, err
	}
	return store.Open(dir)
}
