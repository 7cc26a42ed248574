package content

import (
	"fmt"
	"strings"
)

// Request describes what to generate. Immutable once handed to the pipeline.
type Request struct {
	Topic        string
	LearnerLevel string
	Style        string
}

// ValidationError reports a request that must not reach the service.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var validLevels = map[string]bool{
	LevelBeginner:     true,
	LevelIntermediate: true,
	LevelAdvanced:     true,
}

var validStyles = map[string]bool{
	StyleVisual:      true,
	StyleAuditory:    true,
	StyleReading:     true,
	StyleKinesthetic: true,
}

// Normalize trims the topic, lowercases the enums, and fills in the default
// style. Returns the cleaned copy.
func (r Request) Normalize() Request {
	r.Topic = strings.TrimSpace(r.Topic)
	r.LearnerLevel = strings.ToLower(strings.TrimSpace(r.LearnerLevel))
	r.Style = strings.ToLower(strings.TrimSpace(r.Style))
	if r.Style == "" {
		r.Style = DefaultStyle
	}
	return r
}

// Validate checks the request against the service contract. Callers should
// Normalize first.
func (r Request) Validate() error {
	if r.Topic == "" {
		return &ValidationError{Field: "topic", Reason: "must not be empty"}
	}
	if r.LearnerLevel == "" {
		return &ValidationError{Field: "learner level", Reason: "must not be empty"}
	}
	if !validLevels[r.LearnerLevel] {
		return &ValidationError{Field: "learner level", Reason: "must be beginner, intermediate, or advanced"}
	}
	if !validStyles[r.Style] {
		return &ValidationError{Field: "style", Reason: "unknown learning style"}
	}
	return nil
}
