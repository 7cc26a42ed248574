package content

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert instructional designer creating personalized learning material.

Rules:
- Produce a complete learning package for the given topic, tailored to the learner's level and preferred learning style.
- Learning objectives must be concrete and verifiable, starting with an action verb.
- The video script is spoken narration only. No stage directions, no markdown, no headings.
- Quiz questions must each have exactly 4 options with exactly one correct answer. Distractors should reflect plausible misconceptions, not random values.
- Hints must nudge the learner toward the answer without revealing it.
- Flashcards cover the key terms and facts a learner needs to retain.
- Match vocabulary and depth to the learner's level: beginner avoids jargon, advanced assumes prior exposure.`

var styleGuidance = map[string]string{
	StyleVisual:      "Favor descriptions of diagrams, spatial relationships, and visual comparisons. The video script should paint pictures with words.",
	StyleAuditory:    "Favor rhythm, repetition, and mnemonic phrasing. The video script should read naturally aloud with verbal signposts.",
	StyleReading:     "Favor precise definitions, lists, and written structure. Flashcards carry more of the load.",
	StyleKinesthetic: "Favor hands-on examples, real-world scenarios, and try-it-yourself framing.",
}

// buildUserMessage constructs the generation request message for a normalized request.
func buildUserMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Learner level: %s\n", req.LearnerLevel)
	fmt.Fprintf(&b, "Learning style: %s\n", req.Style)

	if g, ok := styleGuidance[req.Style]; ok {
		b.WriteString("\nStyle guidance:\n")
		b.WriteString(g)
	}

	return b.String()
}
