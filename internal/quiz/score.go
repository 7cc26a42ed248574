package quiz

import (
	"math"

	"github.com/eduforge/eduforge/internal/content"
)

// PassThreshold is the minimum percentage counted as a pass. The source
// material disagreed with itself here; 70 is the documented choice.
const PassThreshold = 70

// Score is the derived result of grading one attempt. It is recomputed on
// every submit, never stored and mutated.
type Score struct {
	Correct    int
	Total      int
	Percentage int
}

// Passed reports whether the attempt clears the threshold. An empty quiz
// passes vacuously.
func (s Score) Passed() bool {
	if s.Total == 0 {
		return true
	}
	return s.Percentage >= PassThreshold
}

// RetakeOffered reports whether the learner may retry the same question set.
func (s Score) RetakeOffered() bool {
	return !s.Passed()
}

// Grade scores the given answers against the question set. Unanswered
// questions count as wrong; the all-answered precondition is the caller's to
// enforce at the input boundary, not here.
func Grade(questions []content.QuizQuestion, answers *Answers) Score {
	total := len(questions)
	if total == 0 {
		return Score{}
	}

	correct := 0
	for _, q := range questions {
		if sel, ok := answers.Selected(q.ID); ok && sel == q.CorrectAnswer {
			correct++
		}
	}

	return Score{
		Correct:    correct,
		Total:      total,
		Percentage: int(math.Round(100 * float64(correct) / float64(total))),
	}
}
