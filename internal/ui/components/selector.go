package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduforge/eduforge/internal/ui/theme"
)

// Selector is a horizontal single-choice selector, used for enum fields like
// learner level and learning style.
type Selector struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewSelector creates a selector with the first option chosen.
func NewSelector(label string, options []string) Selector {
	return Selector{Label: label, Options: options}
}

// Update handles left/right navigation while focused.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.Selected > 0 {
			s.Selected--
		}
	case "right", "l":
		if s.Selected < len(s.Options)-1 {
			s.Selected++
		}
	}

	return s, nil
}

// View renders the selector as a row of options.
func (s Selector) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(s.Label)

	row := ""
	for i, opt := range s.Options {
		cell := fmt.Sprintf(" %s ", opt)
		switch {
		case i == s.Selected && s.Focused:
			row += theme.Selected.Render("[" + cell + "]")
		case i == s.Selected:
			row += lipgloss.NewStyle().Foreground(theme.Secondary).Render("[" + cell + "]")
		default:
			row += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + cell + " ")
		}
		row += " "
	}

	return label + "\n" + row
}

// Value returns the selected option text.
func (s Selector) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected]
}

// Select moves the selection to the option matching value, if present.
func (s *Selector) Select(value string) {
	for i, opt := range s.Options {
		if opt == value {
			s.Selected = i
			return
		}
	}
}
