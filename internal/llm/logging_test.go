package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/eduforge/eduforge/internal/store"
)

type captureRecorder struct {
	llm []store.LLMEvent
	gen []store.GenerationEvent
}

func (c *captureRecorder) RecordLLM(_ context.Context, ev store.LLMEvent) error {
	c.llm = append(c.llm, ev)
	return nil
}

func (c *captureRecorder) RecordGeneration(_ context.Context, ev store.GenerationEvent) error {
	c.gen = append(c.gen, ev)
	return nil
}

func TestLoggingRecordsSuccess(t *testing.T) {
	rec := &captureRecorder{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	p := WithLogging(mock, rec)

	ctx := WithPurpose(context.Background(), "content")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(rec.llm) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.llm))
	}
	ev := rec.llm[0]
	if !ev.Success || ev.Purpose != "content" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Errorf("usage not recorded: %+v", ev)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	rec := &captureRecorder{}
	p := WithLogging(NewMockProvider(), rec) // empty queue fails

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(rec.llm) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.llm))
	}
	ev := rec.llm[0]
	if ev.Success {
		t.Error("failure must be recorded as such")
	}
	if ev.ErrorMessage == "" {
		t.Error("error message missing")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose without context should be unknown, got %q", ev.Purpose)
	}
}
