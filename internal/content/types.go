package content

import "time"

// Learner levels accepted by the content service.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Learning styles shape the generated material. DefaultStyle is used when the
// request leaves the style empty.
const (
	StyleVisual      = "visual"
	StyleAuditory    = "auditory"
	StyleReading     = "reading"
	StyleKinesthetic = "kinesthetic"

	DefaultStyle = StyleVisual
)

// Content is one generated learning experience. It is created whole by a
// single service call and replaced wholesale on reset — never patched.
type Content struct {
	ID           string
	Topic        string
	LearnerLevel string
	Style        string

	LearningObjectives []string
	Quiz               []QuizQuestion
	Flashcards         []Flashcard
	VideoScript        string

	CreatedAt time.Time
}

// QuizQuestion is a single multiple-choice question.
// CorrectAnswer is always a valid index into Options.
type QuizQuestion struct {
	ID            string
	Question      string
	Options       []string
	CorrectAnswer int
	Hint          string
	Explanation   string
}

// Flashcard is a front/back study card.
type Flashcard struct {
	ID    string
	Front string
	Back  string
}
