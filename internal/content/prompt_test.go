package content

import (
	"strings"
	"testing"
)

func TestBuildUserMessageCarriesStyleGuidance(t *testing.T) {
	styles := []string{StyleVisual, StyleAuditory, StyleReading, StyleKinesthetic}
	for _, style := range styles {
		msg := buildUserMessage(Request{
			Topic:        "binary search",
			LearnerLevel: LevelBeginner,
			Style:        style,
		})
		if !strings.Contains(msg, "Learning style: "+style) {
			t.Errorf("style %q missing from message", style)
		}
		if !strings.Contains(msg, "Style guidance:") {
			t.Errorf("no guidance emitted for style %q", style)
		}
	}
}

func TestBuildUserMessageUnknownStyleHasNoGuidance(t *testing.T) {
	msg := buildUserMessage(Request{Topic: "t", LearnerLevel: LevelBeginner, Style: "osmosis"})
	if strings.Contains(msg, "Style guidance:") {
		t.Error("unknown style must not emit guidance")
	}
}
