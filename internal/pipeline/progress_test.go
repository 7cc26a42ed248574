package pipeline

import (
	"math/rand/v2"
	"testing"

	"github.com/eduforge/eduforge/internal/video"
)

func videoPendingController(t *testing.T) *Controller {
	t.Helper()
	c := New()
	if err := c.Submit(validRequest()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !c.AdoptContent(c.Attempt(), sampleContent()) {
		t.Fatal("AdoptContent failed")
	}
	return c
}

func TestNextIncrementRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		inc := NextIncrement(r)
		if inc < 0 || inc >= 10 {
			t.Fatalf("increment %d out of [0,10)", inc)
		}
	}
}

func TestTickAdvancesAndClamps(t *testing.T) {
	c := videoPendingController(t)

	if !c.Tick(c.Attempt(), 7) {
		t.Fatal("Tick returned false for live attempt")
	}
	if c.VideoProgress() != 7 {
		t.Errorf("expected progress 7, got %d", c.VideoProgress())
	}

	// A big jump clamps to the simulated ceiling.
	c.Tick(c.Attempt(), 200)
	if c.VideoProgress() != SimulatedCeiling {
		t.Errorf("expected clamp at %d, got %d", SimulatedCeiling, c.VideoProgress())
	}

	// At the ceiling the loop stops.
	if c.Tick(c.Attempt(), 5) {
		t.Error("Tick at ceiling must report false")
	}
	if c.VideoProgress() != SimulatedCeiling {
		t.Errorf("progress must stay at ceiling, got %d", c.VideoProgress())
	}
}

func TestStaleTickIgnored(t *testing.T) {
	c := videoPendingController(t)
	stale := c.Attempt()
	c.Reset()
	_ = c.Submit(validRequest())
	_ = c.AdoptContent(c.Attempt(), sampleContent())

	if c.Tick(stale, 9) {
		t.Error("stale tick must report false")
	}
	if c.VideoProgress() != 0 {
		t.Errorf("stale tick must not advance progress, got %d", c.VideoProgress())
	}
}

func TestTickOutsideVideoStageIgnored(t *testing.T) {
	c := New()
	_ = c.Submit(validRequest())

	if c.Tick(c.Attempt(), 5) {
		t.Error("tick during content stage must report false")
	}
}

func TestMarkResponded(t *testing.T) {
	c := videoPendingController(t)
	c.Tick(c.Attempt(), 50)

	if !c.MarkResponded(c.Attempt()) {
		t.Fatal("MarkResponded returned false for live attempt")
	}
	if c.VideoProgress() != ProgressResponded {
		t.Errorf("expected progress %d, got %d", ProgressResponded, c.VideoProgress())
	}

	if c.MarkResponded(c.Attempt() + 1) {
		t.Error("stale MarkResponded must report false")
	}
}

func TestProgressRestartsPerAttempt(t *testing.T) {
	c := videoPendingController(t)
	c.Tick(c.Attempt(), 42)

	asset := video.NewAssetForTest("/tmp/none.mp4", 1)
	_ = c.AdoptVideo(c.Attempt(), asset)
	c.Reset()

	_ = c.Submit(validRequest())
	if c.VideoProgress() != 0 {
		t.Errorf("new attempt must start at progress 0, got %d", c.VideoProgress())
	}
}
