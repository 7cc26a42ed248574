package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eduforge/eduforge/internal/llm"
)

// Config holds generation limits for the content generator.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default generation limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Generator produces learning content from an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// contentOutput is the raw LLM response before validation.
type contentOutput struct {
	LearningObjectives []string `json:"learning_objectives"`
	VideoScript        string   `json:"video_script"`
	Quiz               []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correct_answer"`
		Hint          string   `json:"hint"`
		Explanation   string   `json:"explanation"`
	} `json:"quiz"`
	Flashcards []struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	} `json:"flashcards"`
}

// Generate produces a complete learning package for the request.
// The request must already be normalized and validated.
func (g *Generator) Generate(ctx context.Context, req Request) (*Content, error) {
	ctx = llm.WithPurpose(ctx, "content")

	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      ContentSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("content generation failed: %w", err)
	}

	var raw contentOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse content response: %w", err)
	}

	ct := &Content{
		ID:                 uuid.NewString(),
		Topic:              req.Topic,
		LearnerLevel:       req.LearnerLevel,
		Style:              req.Style,
		LearningObjectives: raw.LearningObjectives,
		VideoScript:        raw.VideoScript,
		CreatedAt:          time.Now(),
	}

	for i, q := range raw.Quiz {
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("quiz question %d has no options", i)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("quiz question %d: correct answer index %d out of range", i, q.CorrectAnswer)
		}
		ct.Quiz = append(ct.Quiz, QuizQuestion{
			ID:            uuid.NewString(),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Hint:          q.Hint,
			Explanation:   q.Explanation,
		})
	}

	for _, f := range raw.Flashcards {
		ct.Flashcards = append(ct.Flashcards, Flashcard{
			ID:    uuid.NewString(),
			Front: f.Front,
			Back:  f.Back,
		})
	}

	if len(ct.LearningObjectives) == 0 {
		return nil, fmt.Errorf("content has no learning objectives")
	}

	return ct, nil
}
