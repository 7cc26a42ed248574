package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/eduforge/eduforge/internal/ui/theme"
)

// Tabs is a horizontal tab bar switched with tab/shift+tab or number keys.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab bar with the first tab active.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Update handles tab switching keys.
func (t Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "tab":
		t.Active = (t.Active + 1) % len(t.Labels)
	case "shift+tab":
		t.Active = (t.Active + len(t.Labels) - 1) % len(t.Labels)
	case "1", "2", "3", "4", "5":
		idx := int(kmsg.String()[0] - '1')
		if idx < len(t.Labels) {
			t.Active = idx
		}
	}

	return t, nil
}

// View renders the tab bar.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
