package assistant

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduforge/eduforge/internal/chat"
	"github.com/eduforge/eduforge/internal/router"
	"github.com/eduforge/eduforge/internal/screen"
	"github.com/eduforge/eduforge/internal/ui/components"
	"github.com/eduforge/eduforge/internal/ui/layout"
	"github.com/eduforge/eduforge/internal/ui/theme"
)

// replyMsg is sent when the tutor reply resolves. Turn identifies the send it
// answers; a reply for an already-resolved turn is dropped.
type replyMsg struct {
	SessionID string
	Turn      uint64
	Reply     string
	Err       error
}

// AssistantScreen is the tutor chat. The session outlives the screen: it is
// owned by the experience and survives closing and reopening the chat.
type AssistantScreen struct {
	tutor   *chat.Tutor
	session *chat.Session
	topic   chat.Topic
	input   components.TextInput
}

var _ screen.Screen = (*AssistantScreen)(nil)
var _ screen.KeyHintProvider = (*AssistantScreen)(nil)
var _ screen.StatusProvider = (*AssistantScreen)(nil)

// New creates the chat screen over an existing session.
func New(tutor *chat.Tutor, session *chat.Session, topic chat.Topic) *AssistantScreen {
	return &AssistantScreen{
		tutor:   tutor,
		session: session,
		topic:   topic,
		input:   components.NewTextInput("Ask your tutor...", 500),
	}
}

func (s *AssistantScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *AssistantScreen) Title() string {
	return "Tutor"
}

func (s *AssistantScreen) Status() string {
	return s.topic.CurrentTopic
}

func (s *AssistantScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
	}
	for i, qa := range chat.QuickActions() {
		hints = append(hints, layout.KeyHint{
			Key:         quickActionKey(i),
			Description: qa.Label,
		})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Ctrl+L", Description: "Clear"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

func quickActionKey(i int) string {
	switch i {
	case 0:
		return "Ctrl+S"
	case 1:
		return "Ctrl+T"
	case 2:
		return "Ctrl+Q"
	}
	return ""
}

func (s *AssistantScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		return s.handleReply(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// A pop loses the in-flight reply, so resolve the turn now;
			// the learner can retry after reopening the chat.
			if s.session.Pending() {
				s.session.Fail()
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return s.send(s.input.Value())
		case "ctrl+l":
			s.session.Clear()
			return s, nil
		case "ctrl+s", "ctrl+t", "ctrl+q":
			return s.prefill(msg.String())
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// prefill puts a quick-action prompt into the input so the learner can edit
// before sending.
func (s *AssistantScreen) prefill(key string) (screen.Screen, tea.Cmd) {
	actions := chat.QuickActions()
	idx := map[string]int{"ctrl+s": 0, "ctrl+t": 1, "ctrl+q": 2}[key]
	if idx < len(actions) {
		s.input.SetValue(actions[idx].Prompt)
	}
	return s, nil
}

// send starts a reply for the typed message. Begin rejects blank input and
// sends while a reply is in flight, so a double enter cannot double-send.
func (s *AssistantScreen) send(text string) (screen.Screen, tea.Cmd) {
	if !s.session.Begin(text) {
		return s, nil
	}
	s.input.Reset()

	sessionID := s.session.ID()
	turn := s.session.Turn()
	history := append([]chat.Message(nil), s.session.Messages()...)
	return s, func() tea.Msg {
		reply, err := s.tutor.Reply(context.Background(), s.topic, history)
		return replyMsg{SessionID: sessionID, Turn: turn, Reply: reply, Err: err}
	}
}

func (s *AssistantScreen) handleReply(msg replyMsg) (screen.Screen, tea.Cmd) {
	if msg.SessionID != s.session.ID() || msg.Turn != s.session.Turn() {
		return s, nil
	}
	if msg.Err != nil {
		s.session.Fail()
	} else {
		s.session.Complete(msg.Reply)
	}
	return s, nil
}

func (s *AssistantScreen) View(width, height int) string {
	userStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(theme.Error)

	var lines []string
	for _, m := range s.session.Messages() {
		switch {
		case m.IsError:
			lines = append(lines, errStyle.Render("Tutor: "+m.Content))
		case m.Role == chat.RoleUser:
			lines = append(lines, userStyle.Render("You: ")+theme.Body.Render(m.Content))
		default:
			lines = append(lines, tutorStyle.Render("Tutor: ")+theme.Body.Render(m.Content))
		}
		lines = append(lines, "")
	}

	if s.session.Pending() {
		lines = append(lines, theme.Hint.Render("Tutor is thinking..."), "")
	}

	// Show only the most recent lines that fit above the input row.
	logHeight := height - 5
	if logHeight < 1 {
		logHeight = 1
	}
	if len(lines) > logHeight {
		lines = lines[len(lines)-logHeight:]
	}

	log := lipgloss.NewStyle().
		Width(width - 4).
		Height(logHeight).
		Render(joinLines(lines))

	inputBox := theme.Card.Width(width - 6).Render(s.input.View())

	return lipgloss.NewStyle().Padding(0, 2).Render(log + "\n" + inputBox)
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
