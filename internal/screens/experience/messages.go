package experience

import (
	"time"

	"github.com/eduforge/eduforge/internal/content"
	"github.com/eduforge/eduforge/internal/video"
)

// contentResultMsg is sent when content generation resolves.
type contentResultMsg struct {
	Attempt uint64
	Content *content.Content
	Err     error
}

// videoResultMsg is sent when the render call resolves.
type videoResultMsg struct {
	Attempt uint64
	Asset   *video.Asset
	Err     error
}

// videoFinalizedMsg completes the render after the brief finalizing display.
type videoFinalizedMsg struct {
	Attempt uint64
	Asset   *video.Asset
}

// progressTickMsg advances the simulated render progress.
type progressTickMsg struct {
	Attempt uint64
	At      time.Time
}
