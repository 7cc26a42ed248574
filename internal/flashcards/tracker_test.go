package flashcards

import "testing"

func TestToggleIsSelfInverse(t *testing.T) {
	tr := NewTracker()

	if got := tr.Toggle("card1"); !got {
		t.Error("first toggle must reveal")
	}
	if !tr.Revealed("card1") {
		t.Error("card1 should be revealed")
	}

	if got := tr.Toggle("card1"); got {
		t.Error("second toggle must hide")
	}
	if tr.Revealed("card1") {
		t.Error("card1 should be hidden again")
	}
	if tr.Count() != 0 {
		t.Errorf("expected empty tracker, got %d", tr.Count())
	}
}

func TestToggleIndependentCards(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("a")
	tr.Toggle("b")
	tr.Toggle("a")

	if tr.Revealed("a") {
		t.Error("a should be hidden")
	}
	if !tr.Revealed("b") {
		t.Error("b should stay revealed")
	}
	if tr.Count() != 1 {
		t.Errorf("expected 1 revealed, got %d", tr.Count())
	}
}

func TestUnknownCardHidden(t *testing.T) {
	tr := NewTracker()
	if tr.Revealed("never-seen") {
		t.Error("unknown card must report hidden")
	}
}

func TestReset(t *testing.T) {
	tr := NewTracker()
	tr.Toggle("a")
	tr.Toggle("b")

	tr.Reset()
	if tr.Count() != 0 {
		t.Errorf("Reset must hide everything, got %d", tr.Count())
	}
	if !tr.Toggle("a") {
		t.Error("toggle after Reset must reveal")
	}
}
