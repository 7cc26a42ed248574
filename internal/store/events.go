package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

const (
	prefixLLM        = "llm/"
	prefixGeneration = "gen/"
)

// LLMEvent records one provider call.
type LLMEvent struct {
	Timestamp    time.Time `json:"timestamp"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Purpose      string    `json:"purpose"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	LatencyMs    int64     `json:"latency_ms"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// GenerationEvent records one completed (or failed) pipeline run.
type GenerationEvent struct {
	Timestamp    time.Time `json:"timestamp"`
	ContentID    string    `json:"content_id,omitempty"`
	Topic        string    `json:"topic"`
	LearnerLevel string    `json:"learner_level"`
	Style        string    `json:"style"`
	Objectives   int       `json:"objectives"`
	Questions    int       `json:"questions"`
	Flashcards   int       `json:"flashcards"`
	// VideoOutcome is "ok", "not-found", "timeout", "failed", or "" while
	// the run ended before the video stage.
	VideoOutcome string `json:"video_outcome,omitempty"`
	Success      bool   `json:"success"`
}

// Recorder is the append-side interface consumed by the llm logging
// decorator and the experience screen.
type Recorder interface {
	RecordLLM(ctx context.Context, ev LLMEvent) error
	RecordGeneration(ctx context.Context, ev GenerationEvent) error
}

var _ Recorder = (*Store)(nil)

// RecordLLM appends an LLM call event.
func (s *Store) RecordLLM(_ context.Context, ev LLMEvent) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	return s.append(prefixLLM, ev.Timestamp, ev)
}

// RecordGeneration appends a pipeline run event.
func (s *Store) RecordGeneration(_ context.Context, ev GenerationEvent) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	return s.append(prefixGeneration, ev.Timestamp, ev)
}

// ListLLM returns the most recent LLM events, newest first.
func (s *Store) ListLLM(limit int) ([]LLMEvent, error) {
	var out []LLMEvent
	err := s.scan(prefixLLM, limit, func(val []byte) error {
		var ev LLMEvent
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		out = append(out, ev)
		return nil
	})
	return out, err
}

// ListGenerations returns the most recent generation events, newest first.
func (s *Store) ListGenerations(limit int) ([]GenerationEvent, error) {
	var out []GenerationEvent
	err := s.scan(prefixGeneration, limit, func(val []byte) error {
		var ev GenerationEvent
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		out = append(out, ev)
		return nil
	})
	return out, err
}

// append stores the event under a time-ordered key. Nanosecond keys keep
// ordering without a separate sequence.
func (s *Store) append(prefix string, ts time.Time, ev any) error {
	val, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	key := fmt.Sprintf("%s%020d", prefix, ts.UnixNano())
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
}

// scan iterates a prefix in reverse key order (newest first).
func (s *Store) scan(prefix string, limit int, fn func(val []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration needs a seek key past the end of the prefix.
		seek := append([]byte(prefix), 0xff)
		count := 0
		for it.Seek(seek); it.Valid(); it.Next() {
			if limit > 0 && count >= limit {
				break
			}
			err := it.Item().Value(func(val []byte) error {
				return fn(val)
			})
			if err != nil {
				return err
			}
			count++
		}
		return nil
	})
}
