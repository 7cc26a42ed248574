package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduforge/eduforge/internal/config"
	"github.com/eduforge/eduforge/internal/content"
	"github.com/eduforge/eduforge/internal/router"
	"github.com/eduforge/eduforge/internal/screen"
	"github.com/eduforge/eduforge/internal/screens/experience"
	"github.com/eduforge/eduforge/internal/store"
	"github.com/eduforge/eduforge/internal/ui/components"
	"github.com/eduforge/eduforge/internal/ui/layout"
	"github.com/eduforge/eduforge/internal/ui/theme"
)

// History is the read side of the event store the home screen needs.
type History interface {
	ListGenerations(limit int) ([]store.GenerationEvent, error)
}

// recentMsg carries recently studied topics loaded in the background.
type recentMsg struct {
	Events []store.GenerationEvent
	Err    error
}

// Form focus positions.
const (
	focusTopic = iota
	focusLevel
	focusStyle
	focusCount
)

// HomeScreen is the request form: topic, learner level, learning style.
type HomeScreen struct {
	deps    experience.Deps
	history History

	topic  components.TextInput
	level  components.Selector
	style  components.Selector
	focus  int
	notice string
	recent []store.GenerationEvent
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen with form defaults from config.
func New(deps experience.Deps, history History, defaults config.LearnerConfig) *HomeScreen {
	level := components.NewSelector("Learner level", []string{
		content.LevelBeginner, content.LevelIntermediate, content.LevelAdvanced,
	})
	level.Select(defaults.Level)

	style := components.NewSelector("Learning style", []string{
		content.StyleVisual, content.StyleAuditory, content.StyleReading, content.StyleKinesthetic,
	})
	style.Select(defaults.Style)

	s := &HomeScreen{
		deps:    deps,
		history: history,
		topic:   components.NewTextInput("What do you want to learn?", 200),
		level:   level,
		style:   style,
	}
	s.applyFocus()
	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return tea.Batch(s.topic.Init(), s.loadRecent())
}

func (s *HomeScreen) Title() string {
	return "New Topic"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HomeScreen) loadRecent() tea.Cmd {
	if s.history == nil {
		return nil
	}
	return func() tea.Msg {
		events, err := s.history.ListGenerations(5)
		return recentMsg{Events: events, Err: err}
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recentMsg:
		if msg.Err == nil {
			s.recent = msg.Events
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			s.focus = (s.focus + 1) % focusCount
			s.applyFocus()
			return s, nil
		case "shift+tab", "up":
			s.focus = (s.focus + focusCount - 1) % focusCount
			s.applyFocus()
			return s, nil
		case "enter":
			return s.submit()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusTopic:
		s.topic, cmd = s.topic.Update(msg)
	case focusLevel:
		s.level, cmd = s.level.Update(msg)
	case focusStyle:
		s.style, cmd = s.style.Update(msg)
	}
	return s, cmd
}

func (s *HomeScreen) applyFocus() {
	s.level.Focused = s.focus == focusLevel
	s.style.Focused = s.focus == focusStyle
	if s.focus == focusTopic {
		s.topic.Model.Focus()
	} else {
		s.topic.Model.Blur()
	}
}

// submit validates the form and opens an experience for the request.
// Validation failures stay on the form with a notice.
func (s *HomeScreen) submit() (screen.Screen, tea.Cmd) {
	req := content.Request{
		Topic:        s.topic.Value(),
		LearnerLevel: s.level.Value(),
		Style:        s.style.Value(),
	}.Normalize()

	if err := req.Validate(); err != nil {
		s.notice = err.Error()
		s.topic.Submit(false)
		return s, nil
	}

	s.notice = ""
	s.topic.Submit(true)

	exp := experience.New(s.deps, req)
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: exp} }
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("What shall we learn today?") + "\n\n")

	b.WriteString(theme.Body.Render("Topic") + "\n")
	b.WriteString(s.topic.View() + "\n\n")
	b.WriteString(s.level.View() + "\n\n")
	b.WriteString(s.style.View() + "\n")

	if s.notice != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.notice) + "\n")
	}

	if len(s.recent) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render("Recently studied") + "\n")
		for _, ev := range s.recent {
			marker := theme.Correct.Render("✓")
			if !ev.Success {
				marker = theme.Incorrect.Render("✗")
			}
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  %s %s (%s)", marker, ev.Topic, ev.LearnerLevel)) + "\n")
		}
	}

	form := theme.Card.Width(min(width-8, 70)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}
