package experience

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/eduforge/eduforge/internal/chat"
	"github.com/eduforge/eduforge/internal/content"
	"github.com/eduforge/eduforge/internal/flashcards"
	"github.com/eduforge/eduforge/internal/pipeline"
	"github.com/eduforge/eduforge/internal/quiz"
	"github.com/eduforge/eduforge/internal/router"
	"github.com/eduforge/eduforge/internal/screen"
	"github.com/eduforge/eduforge/internal/screens/assistant"
	"github.com/eduforge/eduforge/internal/store"
	"github.com/eduforge/eduforge/internal/ui/components"
	"github.com/eduforge/eduforge/internal/ui/layout"
	"github.com/eduforge/eduforge/internal/video"
)

// finalizeDelay is how long the "finalizing" progress value stays visible
// before the asset is adopted.
const finalizeDelay = 400 * time.Millisecond

// Tab indexes.
const (
	tabObjectives = iota
	tabQuiz
	tabFlashcards
	tabVideo
)

// Deps are the services an experience needs.
type Deps struct {
	Generator *content.Generator
	Video     *video.Client
	Tutor     *chat.Tutor
	Recorder  store.Recorder
}

// ExperienceScreen drives one generation attempt from submission to a ready
// learning experience, then hosts the quiz, flashcards, and video views.
type ExperienceScreen struct {
	deps Deps
	ctl  *pipeline.Controller

	tabs      components.Tabs
	questions []components.MultiChoice
	answers   *quiz.Answers
	score     *quiz.Score
	qIndex    int

	cards     *flashcards.Tracker
	cardIndex int

	session *chat.Session

	contentErr string
	videoErr   string
	recorded   bool
}

var _ screen.Screen = (*ExperienceScreen)(nil)
var _ screen.KeyHintProvider = (*ExperienceScreen)(nil)
var _ screen.StatusProvider = (*ExperienceScreen)(nil)

// New creates an experience for a validated request. The submission itself
// happens in Init.
func New(deps Deps, req content.Request) *ExperienceScreen {
	s := &ExperienceScreen{
		deps:    deps,
		ctl:     pipeline.New(),
		tabs:    components.NewTabs("Objectives", "Quiz", "Flashcards", "Video"),
		answers: quiz.NewAnswers(),
		cards:   flashcards.NewTracker(),
	}
	// The request was validated at the form; a submit on a fresh controller
	// cannot be busy, so a failure here only reflects a racing caller bug.
	if err := s.ctl.Submit(req); err != nil {
		s.contentErr = err.Error()
	}
	return s
}

func (s *ExperienceScreen) Init() tea.Cmd {
	if s.contentErr != "" {
		return nil
	}
	return s.generateContent(s.ctl.Attempt(), s.ctl.Request())
}

func (s *ExperienceScreen) Title() string {
	return "Learn"
}

func (s *ExperienceScreen) Status() string {
	return s.ctl.Request().Topic
}

func (s *ExperienceScreen) KeyHints() []layout.KeyHint {
	switch s.ctl.Stage() {
	case pipeline.StageContentPending:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	case pipeline.StageIdle:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch view"},
	}
	switch s.tabs.Active {
	case tabQuiz:
		if s.answers.Locked() {
			if s.score != nil && s.score.RetakeOffered() {
				hints = append(hints, layout.KeyHint{Key: "R", Description: "Retake"})
			}
		} else {
			hints = append(hints,
				layout.KeyHint{Key: "←→", Description: "Question"},
				layout.KeyHint{Key: "Enter", Description: "Choose"},
				layout.KeyHint{Key: "S", Description: "Submit"},
			)
		}
	case tabFlashcards:
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Card"},
			layout.KeyHint{Key: "Space", Description: "Flip"},
		)
	}
	hints = append(hints,
		layout.KeyHint{Key: "C", Description: "Tutor chat"},
		layout.KeyHint{Key: "N", Description: "New topic"},
	)
	return hints
}

func (s *ExperienceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case contentResultMsg:
		return s.handleContentResult(msg)
	case videoResultMsg:
		return s.handleVideoResult(msg)
	case videoFinalizedMsg:
		return s.handleVideoFinalized(msg)
	case progressTickMsg:
		return s.handleProgressTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// generateContent runs the content stage off the event loop. The attempt
// token rides along so a superseded result is recognizably stale.
func (s *ExperienceScreen) generateContent(attempt uint64, req content.Request) tea.Cmd {
	return func() tea.Msg {
		ct, err := s.deps.Generator.Generate(context.Background(), req)
		return contentResultMsg{Attempt: attempt, Content: ct, Err: err}
	}
}

// renderVideo runs the video stage. The client owns the bounded wait.
func (s *ExperienceScreen) renderVideo(attempt uint64, contentID string) tea.Cmd {
	return func() tea.Msg {
		asset, err := s.deps.Video.Generate(context.Background(), contentID)
		return videoResultMsg{Attempt: attempt, Asset: asset, Err: err}
	}
}

// scheduleTick arms the next simulated progress step.
func (s *ExperienceScreen) scheduleTick(attempt uint64) tea.Cmd {
	return tea.Tick(pipeline.TickInterval, func(t time.Time) tea.Msg {
		return progressTickMsg{Attempt: attempt, At: t}
	})
}

func (s *ExperienceScreen) handleContentResult(msg contentResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if s.ctl.FailContent(msg.Attempt) {
			s.contentErr = msg.Err.Error()
			s.recordOutcome("", false)
		}
		return s, nil
	}

	if !s.ctl.AdoptContent(msg.Attempt, msg.Content) {
		return s, nil
	}

	ct := s.ctl.Content()
	s.buildQuiz(ct)
	s.cards.Reset()
	s.cardIndex = 0
	s.session = chat.Open(ct.Topic)

	return s, tea.Batch(
		s.renderVideo(s.ctl.Attempt(), ct.ID),
		s.scheduleTick(s.ctl.Attempt()),
	)
}

func (s *ExperienceScreen) handleVideoResult(msg videoResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if s.ctl.FailVideo(msg.Attempt) {
			s.videoErr = video.FailureMessage(msg.Err)
			s.recordOutcome(outcomeFor(msg.Err), true)
		}
		return s, nil
	}

	if !s.ctl.MarkResponded(msg.Attempt) {
		// Stale response: the asset belongs to a dead attempt.
		if msg.Asset != nil {
			_ = msg.Asset.Release()
		}
		return s, nil
	}

	asset := msg.Asset
	return s, tea.Tick(finalizeDelay, func(time.Time) tea.Msg {
		return videoFinalizedMsg{Attempt: msg.Attempt, Asset: asset}
	})
}

func (s *ExperienceScreen) handleVideoFinalized(msg videoFinalizedMsg) (screen.Screen, tea.Cmd) {
	if s.ctl.AdoptVideo(msg.Attempt, msg.Asset) {
		s.recordOutcome("ok", true)
	}
	return s, nil
}

func (s *ExperienceScreen) handleProgressTick(msg progressTickMsg) (screen.Screen, tea.Cmd) {
	if s.ctl.Tick(msg.Attempt, pipeline.NextIncrement(nil)) {
		return s, s.scheduleTick(msg.Attempt)
	}
	return s, nil
}

func (s *ExperienceScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Global keys first.
	switch msg.String() {
	case "n", "esc":
		s.ctl.Reset()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "c":
		if s.session != nil {
			chatScreen := assistant.New(s.deps.Tutor, s.session, chat.Topic{
				CurrentTopic: s.ctl.Request().Topic,
				LearnerLevel: s.ctl.Request().LearnerLevel,
			})
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: chatScreen} }
		}
	}

	if s.ctl.Stage() != pipeline.StageVideoPending && s.ctl.Stage() != pipeline.StageReady {
		return s, nil
	}

	var cmd tea.Cmd
	s.tabs, cmd = s.tabs.Update(msg)
	if cmd != nil {
		return s, cmd
	}

	switch s.tabs.Active {
	case tabQuiz:
		return s.handleQuizKey(msg)
	case tabFlashcards:
		return s.handleCardKey(msg)
	}
	return s, nil
}

func (s *ExperienceScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	ct := s.ctl.Content()
	if ct == nil || len(s.questions) == 0 {
		return s, nil
	}

	switch msg.String() {
	case "left", "p":
		if s.qIndex > 0 {
			s.qIndex--
		}
		return s, nil
	case "right":
		if s.qIndex < len(s.questions)-1 {
			s.qIndex++
		}
		return s, nil
	case "s":
		return s.submitQuiz(ct)
	case "r":
		if s.score != nil && s.score.RetakeOffered() {
			s.retakeQuiz(ct)
		}
		return s, nil
	}

	if s.answers.Locked() {
		return s, nil
	}

	q := &s.questions[s.qIndex]
	var cmd tea.Cmd
	*q, cmd = q.Update(msg)
	if q.ChosenIndex >= 0 {
		s.answers.Select(ct.Quiz[s.qIndex].ID, q.ChosenIndex)
	}
	return s, cmd
}

func (s *ExperienceScreen) submitQuiz(ct *content.Content) (screen.Screen, tea.Cmd) {
	if s.answers.Locked() {
		return s, nil
	}

	ids := make([]string, len(ct.Quiz))
	for i, q := range ct.Quiz {
		ids[i] = q.ID
	}
	if !s.answers.Complete(ids) {
		return s, nil
	}

	s.answers.Lock()
	sc := quiz.Grade(ct.Quiz, s.answers)
	s.score = &sc
	for i := range s.questions {
		s.questions[i].Locked = true
	}
	return s, nil
}

func (s *ExperienceScreen) retakeQuiz(ct *content.Content) {
	s.answers.Reset()
	s.score = nil
	s.qIndex = 0
	s.buildQuiz(ct)
}

func (s *ExperienceScreen) handleCardKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	ct := s.ctl.Content()
	if ct == nil || len(ct.Flashcards) == 0 {
		return s, nil
	}

	switch msg.String() {
	case "left", "p":
		if s.cardIndex > 0 {
			s.cardIndex--
		}
	case "right":
		if s.cardIndex < len(ct.Flashcards)-1 {
			s.cardIndex++
		}
	case " ", "enter":
		s.cards.Toggle(ct.Flashcards[s.cardIndex].ID)
	}
	return s, nil
}

func (s *ExperienceScreen) buildQuiz(ct *content.Content) {
	s.questions = make([]components.MultiChoice, len(ct.Quiz))
	for i, q := range ct.Quiz {
		mc := components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswer)
		mc.Hint = q.Hint
		mc.Explanation = q.Explanation
		s.questions[i] = mc
	}
}

// recordOutcome appends the generation event once per attempt.
func (s *ExperienceScreen) recordOutcome(videoOutcome string, success bool) {
	if s.recorded || s.deps.Recorder == nil {
		return
	}
	s.recorded = true

	ev := store.GenerationEvent{
		Topic:        s.ctl.Request().Topic,
		LearnerLevel: s.ctl.Request().LearnerLevel,
		Style:        s.ctl.Request().Style,
		VideoOutcome: videoOutcome,
		Success:      success,
	}
	if ct := s.ctl.Content(); ct != nil {
		ev.ContentID = ct.ID
		ev.Objectives = len(ct.LearningObjectives)
		ev.Questions = len(ct.Quiz)
		ev.Flashcards = len(ct.Flashcards)
	}
	_ = s.deps.Recorder.RecordGeneration(context.Background(), ev)
}

func outcomeFor(err error) string {
	switch video.Classify(err) {
	case video.FailureNotFound:
		return "not-found"
	case video.FailureTimeout:
		return "timeout"
	}
	return "failed"
}
