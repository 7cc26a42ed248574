package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduforge/eduforge/internal/content"
	"github.com/eduforge/eduforge/internal/video"
)

var learnCmd = &cobra.Command{
	Use:   "learn <topic>",
	Short: "Generate a learning package without the TUI",
	Long:  "Generate objectives, quiz, and flashcards for a topic and print them. Useful for scripting and piping.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		style, _ := cmd.Flags().GetString("style")
		withVideo, _ := cmd.Flags().GetBool("video")

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

		req := content.Request{
			Topic:        strings.Join(args, " "),
			LearnerLevel: level,
			Style:        style,
		}.Normalize()
		if err := req.Validate(); err != nil {
			return err
		}

		fmt.Printf("Generating content for %q (%s, %s)...\n\n", req.Topic, req.LearnerLevel, req.Style)
		ct, err := deps.Generator.Generate(cmd.Context(), req)
		if err != nil {
			return err
		}

		printContent(ct)

		if withVideo {
			fmt.Println("\nRendering video (this can take a few minutes)...")
			asset, err := deps.Video.Generate(cmd.Context(), ct.ID)
			if err != nil {
				fmt.Println(video.FailureMessage(err))
			} else {
				fmt.Printf("Video saved to %s (%.1f MB)\n", asset.Path(), float64(asset.Size())/(1024*1024))
			}
		}

		return nil
	},
}

func init() {
	learnCmd.Flags().String("level", content.LevelBeginner, "Learner level: beginner, intermediate, advanced")
	learnCmd.Flags().String("style", content.DefaultStyle, "Learning style: visual, auditory, reading, kinesthetic")
	learnCmd.Flags().Bool("video", false, "Also render the explainer video")
}

func printContent(ct *content.Content) {
	sep := strings.Repeat("─", 60)

	fmt.Println("LEARNING OBJECTIVES")
	fmt.Println(sep)
	for i, obj := range ct.LearningObjectives {
		fmt.Printf("%d. %s\n", i+1, obj)
	}

	fmt.Println()
	fmt.Println("QUIZ")
	fmt.Println(sep)
	labels := "ABCDEF"
	for i, q := range ct.Quiz {
		fmt.Printf("%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			marker := " "
			if j == q.CorrectAnswer {
				marker = "*"
			}
			fmt.Printf("   %s %c) %s\n", marker, labels[j%len(labels)], opt)
		}
		fmt.Println()
	}

	fmt.Println("FLASHCARDS")
	fmt.Println(sep)
	for _, f := range ct.Flashcards {
		fmt.Printf("Q: %s\nA: %s\n\n", f.Front, f.Back)
	}

	if ct.VideoScript != "" {
		fmt.Println("VIDEO SCRIPT")
		fmt.Println(sep)
		fmt.Println(ct.VideoScript)
	}
}
