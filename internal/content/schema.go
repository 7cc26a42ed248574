package content

import "github.com/eduforge/eduforge/internal/llm"

// ContentSchema defines the JSON schema for generated learning content.
var ContentSchema = &llm.Schema{
	Name:        "learning-content",
	Description: "A complete personalized learning package for a single topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"learning_objectives": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    3,
				"maxItems":    5,
				"description": "3-5 concrete objectives the learner should achieve",
			},
			"video_script": map[string]any{
				"type":        "string",
				"description": "A narration script for a short explainer video on the topic, roughly 60-90 seconds when read aloud",
			},
			"quiz": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options where exactly one is correct",
						},
						"correct_answer": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct option",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A short scaffolding hint that does not give the answer away",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is right, in 1-2 sentences",
						},
					},
					"required":             []any{"question", "options", "correct_answer", "hint", "explanation"},
					"additionalProperties": false,
				},
				"minItems":    3,
				"maxItems":    8,
				"description": "Multiple choice questions testing the objectives",
			},
			"flashcards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{
							"type":        "string",
							"description": "The term or question on the front of the card",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "The definition or answer on the back of the card",
						},
					},
					"required":             []any{"front", "back"},
					"additionalProperties": false,
				},
				"minItems":    4,
				"maxItems":    10,
				"description": "Key terms and concepts as flashcards",
			},
		},
		"required":             []any{"learning_objectives", "video_script", "quiz", "flashcards"},
		"additionalProperties": false,
	},
}
