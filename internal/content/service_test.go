package content

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/eduforge/eduforge/internal/llm"
)

func validOutput() json.RawMessage {
	return json.RawMessage(`{
		"learning_objectives": ["Explain photosynthesis", "Name the inputs", "Describe the outputs"],
		"video_script": "Plants turn sunlight into food.",
		"quiz": [
			{"question": "Where does it happen?", "options": ["Roots", "Chloroplasts", "Stem", "Flowers"], "correct_answer": 1, "hint": "Think green.", "explanation": "Chloroplasts hold chlorophyll."}
		],
		"flashcards": [
			{"front": "Chlorophyll", "back": "The green pigment that absorbs light."}
		]
	}`)
}

func validReq() Request {
	return Request{Topic: "photosynthesis", LearnerLevel: LevelBeginner, Style: StyleVisual}
}

func TestGenerateBuildsContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	g := NewGenerator(mock, DefaultConfig())

	ct, err := g.Generate(context.Background(), validReq())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if ct.ID == "" {
		t.Error("content must get an id")
	}
	if ct.Topic != "photosynthesis" || ct.LearnerLevel != LevelBeginner {
		t.Errorf("request fields not carried: %+v", ct)
	}
	if len(ct.LearningObjectives) != 3 {
		t.Errorf("expected 3 objectives, got %d", len(ct.LearningObjectives))
	}
	if len(ct.Quiz) != 1 || ct.Quiz[0].CorrectAnswer != 1 {
		t.Errorf("quiz not parsed: %+v", ct.Quiz)
	}
	if ct.Quiz[0].ID == "" || ct.Flashcards[0].ID == "" {
		t.Error("questions and cards must get ids")
	}
	if ct.VideoScript == "" {
		t.Error("script missing")
	}
	if ct.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}
}

func TestGeneratePromptCarriesStyle(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	g := NewGenerator(mock, DefaultConfig())

	req := validReq()
	req.Style = StyleKinesthetic
	if _, err := g.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "kinesthetic") {
		t.Errorf("style missing from prompt:\n%s", userMsg)
	}
	if !strings.Contains(userMsg, "photosynthesis") {
		t.Errorf("topic missing from prompt:\n%s", userMsg)
	}
	if mock.Calls[0].Schema == nil {
		t.Error("generation must request structured output")
	}
}

func TestGenerateRejectsOutOfRangeAnswer(t *testing.T) {
	bad := json.RawMessage(`{
		"learning_objectives": ["a", "b", "c"],
		"video_script": "s",
		"quiz": [{"question": "q", "options": ["x", "y"], "correct_answer": 5, "hint": "", "explanation": ""}],
		"flashcards": []
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), validReq()); err == nil {
		t.Error("out-of-range correct_answer must be rejected")
	}
}

func TestGenerateRejectsEmptyObjectives(t *testing.T) {
	bad := json.RawMessage(`{
		"learning_objectives": [],
		"video_script": "s",
		"quiz": [],
		"flashcards": []
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), validReq()); err == nil {
		t.Error("content without objectives must be rejected")
	}
}

func TestGenerateProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue returns provider unavailable
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), validReq()); err == nil {
		t.Error("provider error must propagate")
	}
}

func TestGenerateMalformedJSONRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), validReq()); err == nil {
		t.Error("malformed response must be rejected")
	}
}
