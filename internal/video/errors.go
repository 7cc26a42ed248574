package video

import (
	"context"
	"errors"
	"fmt"
)

// FailureClass buckets render failures for user messaging. Every class
// resolves the pipeline to Ready without a video — none of them block access
// to the generated content.
type FailureClass int

const (
	// FailureGeneric covers network errors and unexpected statuses.
	FailureGeneric FailureClass = iota
	// FailureNotFound means the content id is unknown or expired; the
	// content must be regenerated before another render attempt.
	FailureNotFound
	// FailureTimeout means the bounded wait elapsed before the service
	// responded. The server-side job may still be running.
	FailureTimeout
)

// ErrNotFound is returned when the service reports HTTP 404 for a content id.
var ErrNotFound = errors.New("video: content not found")

// ErrTimeout is returned when the client-side deadline elapses.
var ErrTimeout = errors.New("video: generation timed out")

// RenderError wraps an unexpected service response.
type RenderError struct {
	Status int
	Err    error
}

func (e *RenderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("video: render failed with status %d", e.Status)
	}
	return fmt.Sprintf("video: render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Classify maps a render error to its failure class.
func Classify(err error) FailureClass {
	switch {
	case errors.Is(err, ErrNotFound):
		return FailureNotFound
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return FailureTimeout
	default:
		return FailureGeneric
	}
}

// FailureMessage returns the user-facing notice for a render failure.
func FailureMessage(err error) string {
	switch Classify(err) {
	case FailureNotFound:
		return "Video service no longer has this content — generate the topic again to retry the video."
	case FailureTimeout:
		return "Video is taking longer than expected. Your content is ready to use without it."
	default:
		return "Video generation failed. Your content is ready to use without it."
	}
}
