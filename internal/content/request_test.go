package content

import (
	"errors"
	"testing"
)

func TestNormalizeDefaultsAndTrims(t *testing.T) {
	r := Request{
		Topic:        "  The Water Cycle  ",
		LearnerLevel: " Beginner ",
		Style:        "",
	}.Normalize()

	if r.Topic != "The Water Cycle" {
		t.Errorf("topic not trimmed: %q", r.Topic)
	}
	if r.LearnerLevel != LevelBeginner {
		t.Errorf("level not lowercased: %q", r.LearnerLevel)
	}
	if r.Style != DefaultStyle {
		t.Errorf("empty style must default to %q, got %q", DefaultStyle, r.Style)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"valid", Request{Topic: "algebra", LearnerLevel: LevelBeginner, Style: StyleVisual}, false},
		{"blank topic", Request{Topic: "", LearnerLevel: LevelBeginner, Style: StyleVisual}, true},
		{"blank level", Request{Topic: "algebra", LearnerLevel: "", Style: StyleVisual}, true},
		{"unknown level", Request{Topic: "algebra", LearnerLevel: "expert", Style: StyleVisual}, true},
		{"unknown style", Request{Topic: "algebra", LearnerLevel: LevelAdvanced, Style: "osmosis"}, true},
		{"all styles", Request{Topic: "algebra", LearnerLevel: LevelIntermediate, Style: StyleKinesthetic}, false},
	}

	for _, tc := range tests {
		err := tc.req.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if err != nil {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("%s: expected *ValidationError, got %T", tc.name, err)
			}
		}
	}
}

func TestWhitespaceTopicRejectedAfterNormalize(t *testing.T) {
	r := Request{Topic: "   \t ", LearnerLevel: LevelBeginner}.Normalize()
	if err := r.Validate(); err == nil {
		t.Error("whitespace-only topic must fail validation")
	}
}
