package store

import (
	"context"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndListLLM(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	for i := 0; i < 3; i++ {
		ev := LLMEvent{
			Timestamp:    base.Add(time.Duration(i) * time.Second),
			Provider:     "groq",
			Model:        "llama-3.1-8b-instant",
			Purpose:      "content",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    800,
			Success:      true,
		}
		if err := s.RecordLLM(ctx, ev); err != nil {
			t.Fatalf("RecordLLM: %v", err)
		}
	}

	events, err := s.ListLLM(10)
	if err != nil {
		t.Fatalf("ListLLM: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// Newest first.
	if events[0].InputTokens != 102 {
		t.Errorf("expected newest first, got input tokens %d", events[0].InputTokens)
	}
}

func TestListLLMHonorsLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	for i := 0; i < 5; i++ {
		_ = s.RecordLLM(ctx, LLMEvent{Timestamp: base.Add(time.Duration(i) * time.Second), Purpose: "chat"})
	}

	events, err := s.ListLLM(2)
	if err != nil {
		t.Fatalf("ListLLM: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 events, got %d", len(events))
	}
}

func TestRecordAndListGenerations(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	ev := GenerationEvent{
		ContentID:    "c1",
		Topic:        "photosynthesis",
		LearnerLevel: "beginner",
		Style:        "visual",
		Objectives:   4,
		Questions:    5,
		Flashcards:   6,
		VideoOutcome: "timeout",
		Success:      true,
	}
	if err := s.RecordGeneration(ctx, ev); err != nil {
		t.Fatalf("RecordGeneration: %v", err)
	}

	events, err := s.ListGenerations(10)
	if err != nil {
		t.Fatalf("ListGenerations: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	got := events[0]
	if got.Topic != "photosynthesis" || got.VideoOutcome != "timeout" || got.Questions != 5 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Error("zero timestamp must be filled on record")
	}
}

func TestPrefixesAreSeparate(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_ = s.RecordLLM(ctx, LLMEvent{Purpose: "content"})
	_ = s.RecordGeneration(ctx, GenerationEvent{Topic: "x"})

	llmEvents, _ := s.ListLLM(10)
	genEvents, _ := s.ListGenerations(10)
	if len(llmEvents) != 1 || len(genEvents) != 1 {
		t.Errorf("expected 1 event per prefix, got llm=%d gen=%d", len(llmEvents), len(genEvents))
	}
}

func TestDropAll(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_ = s.RecordLLM(ctx, LLMEvent{Purpose: "content"})
	_ = s.RecordGeneration(ctx, GenerationEvent{Topic: "x"})

	if err := s.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}

	llmEvents, _ := s.ListLLM(10)
	genEvents, _ := s.ListGenerations(10)
	if len(llmEvents) != 0 || len(genEvents) != 0 {
		t.Error("DropAll must clear every prefix")
	}
}
