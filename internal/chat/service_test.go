package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/eduforge/eduforge/internal/llm"
)

func TestReplyUsesTopicContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`Gravity pulls masses together.`)})
	tutor := NewTutor(mock, DefaultConfig())

	topic := Topic{CurrentTopic: "gravity", LearnerLevel: "beginner"}
	reply, err := tutor.Reply(context.Background(), topic, []Message{
		{Role: RoleUser, Content: "what is gravity?"},
	})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply != "Gravity pulls masses together." {
		t.Errorf("unexpected reply %q", reply)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	sys := mock.Calls[0].System
	if !strings.Contains(sys, "Current topic: gravity") {
		t.Errorf("system prompt missing topic context:\n%s", sys)
	}
	if !strings.Contains(sys, "Learner level: beginner") {
		t.Errorf("system prompt missing learner level:\n%s", sys)
	}
}

func TestReplyErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: fmt.Errorf("boom")})
	tutor := NewTutor(mock, DefaultConfig())

	_, err := tutor.Reply(context.Background(), Topic{CurrentTopic: "x"}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildHistoryTruncatesAndDropsErrors(t *testing.T) {
	var history []Message
	for i := 0; i < 15; i++ {
		history = append(history, Message{Role: RoleUser, Content: fmt.Sprintf("m%d", i)})
	}
	history = append(history, Message{Role: RoleAssistant, Content: "oops", IsError: true})

	msgs := buildHistory(history)

	// The window covers the last 10 turns; the error placeholder is dropped
	// from within it.
	if len(msgs) != 9 {
		t.Fatalf("expected 9 messages, got %d", len(msgs))
	}
	if msgs[0].Content != "m7" {
		t.Errorf("expected window to start at m7, got %q", msgs[0].Content)
	}
	for _, m := range msgs {
		if m.Content == "oops" {
			t.Error("error turns must not reach the model")
		}
	}
}

func TestBuildHistoryMapsRoles(t *testing.T) {
	msgs := buildHistory([]Message{
		{Role: RoleUser, Content: "q"},
		{Role: RoleAssistant, Content: "a"},
	})
	if msgs[0].Role != llm.RoleUser || msgs[1].Role != llm.RoleAssistant {
		t.Errorf("role mapping wrong: %+v", msgs)
	}
}
