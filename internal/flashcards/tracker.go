// Package flashcards tracks which study cards are showing their back side.
package flashcards

// Tracker holds the set of revealed card ids. Purely presentational state:
// toggling an id that belongs to a previous content set is tolerated.
type Tracker struct {
	revealed map[string]bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{revealed: make(map[string]bool)}
}

// Toggle flips the revealed state of a card and returns the new state.
func (t *Tracker) Toggle(cardID string) bool {
	if t.revealed[cardID] {
		delete(t.revealed, cardID)
		return false
	}
	t.revealed[cardID] = true
	return true
}

// Revealed reports whether a card is showing its back.
func (t *Tracker) Revealed(cardID string) bool {
	return t.revealed[cardID]
}

// Count returns the number of revealed cards.
func (t *Tracker) Count() int {
	return len(t.revealed)
}

// Reset hides every card. Called when content is replaced.
func (t *Tracker) Reset() {
	t.revealed = make(map[string]bool)
}
