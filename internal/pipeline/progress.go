package pipeline

import (
	"math/rand/v2"
	"time"
)

// Rendering has no server-pushed progress channel, so the displayed value is
// simulated while the video stage is pending. The simulation owns 0-80; the
// last 20 points come only from a real response (90 received, 100 finalized).
const (
	// TickInterval is how often the simulator advances.
	TickInterval = 2 * time.Second

	// SimulatedCeiling is the highest value the simulator may report.
	SimulatedCeiling = 80

	// maxIncrement bounds one simulated step; increments are in [0, 10).
	maxIncrement = 10

	// ProgressResponded is set when the render response has arrived but the
	// asset is not finalized yet.
	ProgressResponded = 90
)

// NextIncrement draws one simulated progress step.
func NextIncrement(r *rand.Rand) int {
	if r == nil {
		return rand.IntN(maxIncrement)
	}
	return r.IntN(maxIncrement)
}

// Tick applies one simulated increment. It has no effect — and reports false,
// which stops the tick loop — unless the echoed token matches the live
// attempt, the stage is still VideoPending, and the ceiling is not reached.
func (c *Controller) Tick(attempt uint64, increment int) bool {
	if attempt != c.attempt || c.stage != StageVideoPending {
		return false
	}
	if c.progress >= SimulatedCeiling {
		return false
	}
	c.progress += increment
	if c.progress > SimulatedCeiling {
		c.progress = SimulatedCeiling
	}
	return true
}

// MarkResponded records that the render call returned and the payload is
// being finalized. Stale tokens are ignored.
func (c *Controller) MarkResponded(attempt uint64) bool {
	if attempt != c.attempt || c.stage != StageVideoPending {
		return false
	}
	c.progress = ProgressResponded
	return true
}
