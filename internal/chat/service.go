package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/eduforge/eduforge/internal/llm"
)

// maxHistory is the number of recent turns sent as model context.
const maxHistory = 10

const tutorPrompt = `You are a friendly, patient AI tutor helping a learner study a specific topic.

Rules:
- Answer questions about the current topic clearly and concisely.
- Match explanations to the learner's level.
- If asked something unrelated to the topic, gently steer back.
- Use plain text. No markdown headings or code fences unless the topic calls for code.
- Keep replies short enough to read in a terminal, roughly 2-5 sentences unless a worked example needs more.`

// Topic describes what the session is about, injected into the system prompt.
type Topic struct {
	CurrentTopic string
	LearnerLevel string
}

// Config holds generation limits for the tutor.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default tutor limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Tutor answers learner questions using the LLM provider.
type Tutor struct {
	provider llm.Provider
	config   Config
}

// NewTutor creates a Tutor with the given provider and config.
func NewTutor(provider llm.Provider, cfg Config) *Tutor {
	return &Tutor{provider: provider, config: cfg}
}

// Reply produces the assistant's next turn for the session. Only the most
// recent turns are sent as context.
func (t *Tutor) Reply(ctx context.Context, topic Topic, history []Message) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	req := llm.Request{
		System:      buildTutorSystem(topic),
		Messages:    buildHistory(history),
		MaxTokens:   t.config.MaxTokens,
		Temperature: t.config.Temperature,
	}

	resp, err := t.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("tutor reply failed: %w", err)
	}

	reply := strings.TrimSpace(string(resp.Content))
	reply = strings.Trim(reply, `"`)
	if reply == "" {
		return "", fmt.Errorf("tutor returned an empty reply")
	}
	return reply, nil
}

func buildTutorSystem(topic Topic) string {
	var b strings.Builder
	b.WriteString(tutorPrompt)
	b.WriteString("\n\nContext:\n")
	fmt.Fprintf(&b, "Current topic: %s\n", topic.CurrentTopic)
	fmt.Fprintf(&b, "Learner level: %s\n", topic.LearnerLevel)
	return b.String()
}

// buildHistory converts session messages to model messages, keeping only the
// last maxHistory turns and dropping error placeholders.
func buildHistory(history []Message) []llm.Message {
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}

	msgs := make([]llm.Message, 0, len(history))
	for _, m := range history {
		if m.IsError {
			continue
		}
		role := llm.RoleUser
		if m.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}
	return msgs
}
