package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduforge/eduforge/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		showLLM, _ := cmd.Flags().GetBool("llm")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd, cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if showLLM {
			return printLLMHistory(st, limit)
		}
		return printGenerationHistory(st, limit)
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of entries")
	historyCmd.Flags().Bool("llm", false, "Show model calls instead of generation runs")
}

func printGenerationHistory(st *store.Store, limit int) error {
	events, err := st.ListGenerations(limit)
	if err != nil {
		return fmt.Errorf("list generations: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No generation runs recorded yet.")
		return nil
	}

	fmt.Printf("%-19s  %-30s  %-12s  %-11s  %-4s  %-5s  %-9s  %s\n",
		"Timestamp", "Topic", "Level", "Style", "Quiz", "Cards", "Video", "OK")
	fmt.Println(strings.Repeat("─", 110))

	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗"
		}
		topic := e.Topic
		if len(topic) > 30 {
			topic = topic[:30]
		}
		videoOutcome := e.VideoOutcome
		if videoOutcome == "" {
			videoOutcome = "-"
		}
		fmt.Printf("%-19s  %-30s  %-12s  %-11s  %-4d  %-5d  %-9s  %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			topic,
			e.LearnerLevel,
			e.Style,
			e.Questions,
			e.Flashcards,
			videoOutcome,
			ok,
		)
	}
	return nil
}

func printLLMHistory(st *store.Store, limit int) error {
	events, err := st.ListLLM(limit)
	if err != nil {
		return fmt.Errorf("list model calls: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No model calls recorded yet.")
		return nil
	}

	fmt.Printf("%-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
		"Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
	fmt.Println(strings.Repeat("─", 95))

	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗"
		}
		model := e.Model
		if len(model) > 28 {
			model = model[:28]
		}
		fmt.Printf("%-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Purpose,
			model,
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			ok,
		)
	}
	return nil
}
