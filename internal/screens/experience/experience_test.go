package experience

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/eduforge/eduforge/internal/chat"
	"github.com/eduforge/eduforge/internal/content"
	"github.com/eduforge/eduforge/internal/pipeline"
	"github.com/eduforge/eduforge/internal/router"
	"github.com/eduforge/eduforge/internal/screens/assistant"
	"github.com/eduforge/eduforge/internal/store"
	"github.com/eduforge/eduforge/internal/video"
)

type captureRecorder struct {
	gen []store.GenerationEvent
}

func (c *captureRecorder) RecordLLM(context.Context, store.LLMEvent) error { return nil }

func (c *captureRecorder) RecordGeneration(_ context.Context, ev store.GenerationEvent) error {
	c.gen = append(c.gen, ev)
	return nil
}

func validRequest() content.Request {
	return content.Request{Topic: "binary search", LearnerLevel: "beginner", Style: "visual"}
}

func sampleContent() *content.Content {
	return &content.Content{
		ID:                 "ct-1",
		Topic:              "binary search",
		LearnerLevel:       "beginner",
		Style:              "visual",
		LearningObjectives: []string{"a", "b", "c"},
		Quiz: []content.QuizQuestion{
			{ID: "q1", Question: "?", Options: []string{"x", "y"}, CorrectAnswer: 0},
			{ID: "q2", Question: "?", Options: []string{"x", "y"}, CorrectAnswer: 1},
		},
		Flashcards: []content.Flashcard{
			{ID: "f1", Front: "front", Back: "back"},
		},
		VideoScript: "script",
	}
}

func newTestScreen(t *testing.T, rec *captureRecorder) *ExperienceScreen {
	t.Helper()
	s := New(Deps{Recorder: rec}, validRequest())
	if s.contentErr != "" {
		t.Fatalf("submit failed: %s", s.contentErr)
	}
	if s.ctl.Stage() != pipeline.StageContentPending {
		t.Fatalf("stage after submit = %v", s.ctl.Stage())
	}
	return s
}

// readyScreen advances a fresh screen through a successful content stage.
func readyScreen(t *testing.T, rec *captureRecorder) *ExperienceScreen {
	t.Helper()
	s := newTestScreen(t, rec)
	_, cmd := s.Update(contentResultMsg{Attempt: s.ctl.Attempt(), Content: sampleContent()})
	if cmd == nil {
		t.Fatal("content adoption must start the video stage")
	}
	if s.ctl.Stage() != pipeline.StageVideoPending {
		t.Fatalf("stage = %v", s.ctl.Stage())
	}
	return s
}

func TestContentFailureReturnsToIdle(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestScreen(t, rec)

	s.Update(contentResultMsg{Attempt: s.ctl.Attempt(), Err: errors.New("provider down")})

	if s.ctl.Stage() != pipeline.StageIdle {
		t.Errorf("stage = %v, want idle", s.ctl.Stage())
	}
	if s.contentErr == "" {
		t.Error("content error not surfaced")
	}
	if len(rec.gen) != 1 || rec.gen[0].Success {
		t.Errorf("expected one failed generation event, got %+v", rec.gen)
	}
}

func TestContentSuccessBuildsExperience(t *testing.T) {
	rec := &captureRecorder{}
	s := readyScreen(t, rec)

	if len(s.questions) != 2 {
		t.Errorf("quiz components = %d", len(s.questions))
	}
	if s.session == nil {
		t.Error("chat session not opened")
	}
	if s.ctl.Content() == nil || s.ctl.Content().ID != "ct-1" {
		t.Error("content not adopted")
	}
}

func TestStaleContentResultIgnored(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestScreen(t, rec)

	s.Update(contentResultMsg{Attempt: s.ctl.Attempt() - 1, Content: sampleContent()})

	if s.ctl.Stage() != pipeline.StageContentPending {
		t.Errorf("stale result must not advance, stage = %v", s.ctl.Stage())
	}
	if s.ctl.Content() != nil {
		t.Error("stale content adopted")
	}
}

func TestVideoFailureStillReady(t *testing.T) {
	rec := &captureRecorder{}
	s := readyScreen(t, rec)

	s.Update(videoResultMsg{Attempt: s.ctl.Attempt(), Err: video.ErrTimeout})

	if s.ctl.Stage() != pipeline.StageReady {
		t.Errorf("video failure must resolve to ready, stage = %v", s.ctl.Stage())
	}
	if s.ctl.Asset() != nil {
		t.Error("failed render must not leave an asset")
	}
	if s.videoErr == "" {
		t.Error("failure notice missing")
	}
	if len(rec.gen) != 1 || rec.gen[0].VideoOutcome != "timeout" || !rec.gen[0].Success {
		t.Errorf("unexpected event: %+v", rec.gen)
	}
}

func TestVideoSuccessFinalizesAfterResponse(t *testing.T) {
	rec := &captureRecorder{}
	s := readyScreen(t, rec)
	asset := video.NewAssetForTest("/tmp/clip.mp4", 1024)

	_, cmd := s.Update(videoResultMsg{Attempt: s.ctl.Attempt(), Asset: asset})
	if cmd == nil {
		t.Fatal("responded render must schedule finalization")
	}
	if s.ctl.VideoProgress() != pipeline.ProgressResponded {
		t.Errorf("progress after response = %d", s.ctl.VideoProgress())
	}
	if s.ctl.Stage() != pipeline.StageVideoPending {
		t.Errorf("adoption must wait for finalization, stage = %v", s.ctl.Stage())
	}

	s.Update(videoFinalizedMsg{Attempt: s.ctl.Attempt(), Asset: asset})
	if s.ctl.Stage() != pipeline.StageReady {
		t.Errorf("stage = %v, want ready", s.ctl.Stage())
	}
	if s.ctl.Asset() != asset {
		t.Error("asset not adopted")
	}
	if s.ctl.VideoProgress() != 100 {
		t.Errorf("progress = %d, want 100", s.ctl.VideoProgress())
	}
	if len(rec.gen) != 1 || rec.gen[0].VideoOutcome != "ok" {
		t.Errorf("unexpected event: %+v", rec.gen)
	}
}

func TestStaleVideoResultReleasesAsset(t *testing.T) {
	rec := &captureRecorder{}
	s := readyScreen(t, rec)
	orphan := video.NewAssetForTest("/tmp/orphan.mp4", 1024)

	s.Update(videoResultMsg{Attempt: s.ctl.Attempt() - 1, Asset: orphan})

	if !orphan.Released() {
		t.Error("stale asset must be released")
	}
	if s.ctl.Stage() != pipeline.StageVideoPending {
		t.Errorf("stale result must not advance, stage = %v", s.ctl.Stage())
	}
}

func TestProgressTickReschedulesWhileSimulating(t *testing.T) {
	rec := &captureRecorder{}
	s := readyScreen(t, rec)

	_, cmd := s.Update(progressTickMsg{Attempt: s.ctl.Attempt()})
	if cmd == nil {
		t.Error("live tick must reschedule")
	}

	_, cmd = s.Update(progressTickMsg{Attempt: s.ctl.Attempt() - 1})
	if cmd != nil {
		t.Error("stale tick must not reschedule")
	}
}

func TestVideoTabShowsAdoptedAsset(t *testing.T) {
	rec := &captureRecorder{}
	s := readyScreen(t, rec)
	asset := video.NewAssetForTest("/tmp/clip.mp4", 2*1024*1024)

	s.Update(videoResultMsg{Attempt: s.ctl.Attempt(), Asset: asset})
	s.Update(videoFinalizedMsg{Attempt: s.ctl.Attempt(), Asset: asset})

	s.tabs.Active = tabVideo
	view := s.View(100, 40)
	if !strings.Contains(view, "clip.mp4") {
		t.Error("video tab must show the asset path")
	}
}

func TestVideoResolvesWhileChatStacked(t *testing.T) {
	rec := &captureRecorder{}
	s := readyScreen(t, rec)
	asset := video.NewAssetForTest("/tmp/clip.mp4", 1024)

	r := router.New(s)
	r.Push(assistant.New(nil, s.session, chat.Topic{CurrentTopic: "binary search"}))

	r.Update(videoResultMsg{Attempt: s.ctl.Attempt(), Asset: asset})
	r.Update(videoFinalizedMsg{Attempt: s.ctl.Attempt(), Asset: asset})

	if s.ctl.Stage() != pipeline.StageReady {
		t.Errorf("stage = %v, want ready while the chat covers the experience", s.ctl.Stage())
	}
	if s.ctl.Asset() != asset {
		t.Error("asset not adopted while the chat covers the experience")
	}
	if asset.Released() {
		t.Error("live asset must not be released")
	}
	if len(rec.gen) != 1 || rec.gen[0].VideoOutcome != "ok" {
		t.Errorf("unexpected event: %+v", rec.gen)
	}
}

func TestOutcomeRecordedOnce(t *testing.T) {
	rec := &captureRecorder{}
	s := readyScreen(t, rec)
	asset := video.NewAssetForTest("/tmp/clip.mp4", 1024)

	s.Update(videoResultMsg{Attempt: s.ctl.Attempt(), Asset: asset})
	s.Update(videoFinalizedMsg{Attempt: s.ctl.Attempt(), Asset: asset})
	s.Update(videoFinalizedMsg{Attempt: s.ctl.Attempt(), Asset: asset})

	if len(rec.gen) != 1 {
		t.Errorf("expected exactly one generation event, got %d", len(rec.gen))
	}
}
