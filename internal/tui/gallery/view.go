package gallery

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	sections := []string{m.header(), m.viewport.View()}

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("reload failed: %v", m.err)))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) header() string {
	title := titleStyle.Render(fmt.Sprintf("styled • %s", m.title))
	if len(m.entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, "")
	}

	entry := m.entries[m.selected]
	counter := counterStyle.Render(fmt.Sprintf("%d/%d", m.selected+1, len(m.entries)))
	line := fmt.Sprintf("%s %s", counter, entry.Name)
	return lipgloss.JoinVertical(lipgloss.Left, title, line, detailStyle.Render(entry.Details))
}
