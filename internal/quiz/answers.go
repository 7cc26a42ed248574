package quiz

// Answers maps question ids to selected option indexes for the current
// attempt. Once Lock is called (results are showing) selections are rejected
// until Reset, which starts a fresh attempt.
type Answers struct {
	selected map[string]int
	locked   bool
}

// NewAnswers creates an empty answer map.
func NewAnswers() *Answers {
	return &Answers{selected: make(map[string]int)}
}

// Select records a choice for a question. Returns false if the attempt is
// locked or the option index is negative.
func (a *Answers) Select(questionID string, option int) bool {
	if a.locked || option < 0 {
		return false
	}
	a.selected[questionID] = option
	return true
}

// Selected returns the recorded choice for a question.
func (a *Answers) Selected(questionID string) (int, bool) {
	v, ok := a.selected[questionID]
	return v, ok
}

// Count returns how many questions have been answered.
func (a *Answers) Count() int {
	return len(a.selected)
}

// Complete reports whether every question in the set has an answer.
func (a *Answers) Complete(questionIDs []string) bool {
	for _, id := range questionIDs {
		if _, ok := a.selected[id]; !ok {
			return false
		}
	}
	return true
}

// Lock freezes the attempt. Called when results are shown.
func (a *Answers) Lock() { a.locked = true }

// Locked reports whether the attempt is frozen.
func (a *Answers) Locked() bool { return a.locked }

// Reset clears all answers and unlocks for a retake.
func (a *Answers) Reset() {
	a.selected = make(map[string]int)
	a.locked = false
}
