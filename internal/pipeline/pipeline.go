// Package pipeline holds the generation state machine: one submission flows
// through content generation, then video rendering, then a ready experience.
// Video failure never blocks the content — it short-circuits to Ready with no
// asset. All async results are stamped with an attempt token so a response
// belonging to a superseded submission can never corrupt the current one.
package pipeline

import (
	"github.com/eduforge/eduforge/internal/content"
	"github.com/eduforge/eduforge/internal/video"
)

// Stage is the pipeline position. Transitions only move forward within one
// attempt; Reset and a failed content call return to StageIdle.
type Stage int

const (
	StageIdle Stage = iota
	StageContentPending
	StageVideoPending
	StageReady
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageContentPending:
		return "content-pending"
	case StageVideoPending:
		return "video-pending"
	case StageReady:
		return "ready"
	}
	return "unknown"
}

// Controller drives the three-stage flow for one session. It is plain state:
// the owning screen issues the service calls and feeds results back in, which
// keeps the machine synchronous and directly testable.
type Controller struct {
	stage   Stage
	attempt uint64

	request  content.Request
	content  *content.Content
	asset    *video.Asset
	progress int
}

// New creates an idle controller.
func New() *Controller {
	return &Controller{}
}

// Stage returns the current pipeline stage.
func (c *Controller) Stage() Stage { return c.stage }

// Attempt returns the token identifying the live submission. Async results
// and simulator ticks must echo it back; anything else is stale.
func (c *Controller) Attempt() uint64 { return c.attempt }

// Content returns the adopted content, nil before the content stage resolves.
func (c *Controller) Content() *content.Content { return c.content }

// Request returns the request of the live submission.
func (c *Controller) Request() content.Request { return c.request }

// Asset returns the rendered video, nil if rendering failed or is pending.
func (c *Controller) Asset() *video.Asset { return c.asset }

// VideoProgress returns the displayed render progress, 0-100.
func (c *Controller) VideoProgress() int { return c.progress }

// Busy reports whether a submission is in flight. The submit action is
// disabled (not queued) while true.
func (c *Controller) Busy() bool {
	return c.stage == StageContentPending || c.stage == StageVideoPending
}

// Submit validates the request and opens a new attempt. Validation failures
// leave the machine untouched. A submit while busy is rejected.
func (c *Controller) Submit(req content.Request) error {
	if c.Busy() {
		return &content.ValidationError{Field: "request", Reason: "a generation is already in progress"}
	}

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	c.releaseAsset()
	c.request = req
	c.content = nil
	c.progress = 0
	c.stage = StageContentPending
	c.attempt++
	return nil
}

// AdoptContent installs a successful content result and advances to the video
// stage. Returns false (no effect) for a stale attempt token.
func (c *Controller) AdoptContent(attempt uint64, ct *content.Content) bool {
	if attempt != c.attempt || c.stage != StageContentPending {
		return false
	}
	c.content = ct
	c.progress = 0
	c.stage = StageVideoPending
	return true
}

// FailContent aborts the attempt back to Idle. No partial content survives.
func (c *Controller) FailContent(attempt uint64) bool {
	if attempt != c.attempt || c.stage != StageContentPending {
		return false
	}
	c.content = nil
	c.stage = StageIdle
	return true
}

// AdoptVideo installs the rendered asset and completes the pipeline.
// A stale token releases the orphaned asset immediately so a late response
// can never leak a file into a session that has moved on.
func (c *Controller) AdoptVideo(attempt uint64, asset *video.Asset) bool {
	if attempt != c.attempt || c.stage != StageVideoPending {
		if asset != nil {
			_ = asset.Release()
		}
		return false
	}
	c.asset = asset
	c.progress = 100
	c.stage = StageReady
	return true
}

// FailVideo resolves the pipeline to Ready with no asset, whatever the
// failure class. The content stays usable.
func (c *Controller) FailVideo(attempt uint64) bool {
	if attempt != c.attempt || c.stage != StageVideoPending {
		return false
	}
	c.asset = nil
	c.stage = StageReady
	return true
}

// Reset discards the attempt wholesale: content, video asset, progress. The
// token is bumped so in-flight results of the old attempt are orphaned.
func (c *Controller) Reset() {
	c.releaseAsset()
	c.request = content.Request{}
	c.content = nil
	c.progress = 0
	c.stage = StageIdle
	c.attempt++
}

func (c *Controller) releaseAsset() {
	if c.asset != nil {
		_ = c.asset.Release()
		c.asset = nil
	}
}
