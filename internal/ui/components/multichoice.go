package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduforge/eduforge/internal/ui/theme"
)

// MultiChoice is a multiple-choice question component. Answers can be changed
// until the quiz is locked by submission.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Hint         string
	Explanation  string

	Selected    int
	ChosenIndex int
	Locked      bool
	ShowHint    bool
}

// NewMultiChoice creates a multiple-choice component with no answer chosen.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", " ":
		m.ChosenIndex = m.Selected
	case "?":
		m.ShowHint = !m.ShowHint
	}

	return m, nil
}

// View renders the question with its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E", "F"}

	for i, opt := range m.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}

		marker := " "
		if i == m.ChosenIndex {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case m.Locked && i == m.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case m.Locked && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		case i == m.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	if m.ShowHint && !m.Locked && m.Hint != "" {
		s += "\n" + theme.Hint.Render("Hint: "+m.Hint) + "\n"
	}

	if m.Locked && m.Explanation != "" {
		s += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(m.Explanation) + "\n"
	}

	return s
}

// IsCorrect returns true if the locked-in answer matches the correct index.
func (m MultiChoice) IsCorrect() bool {
	return m.Locked && m.ChosenIndex == m.CorrectIndex
}
