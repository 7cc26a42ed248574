package llm

import (
	"context"
	"time"

	"github.com/eduforge/eduforge/internal/store"
)

// LoggingProvider is a decorator that records every model call as an event.
type LoggingProvider struct {
	inner    Provider
	recorder store.Recorder
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, rec store.Recorder) Provider {
	return &LoggingProvider{inner: p, recorder: rec}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMEvent{
		Timestamp: start,
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
	}

	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// Never fail the call because logging failed.
	_ = l.recorder.RecordLLM(ctx, ev)

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
