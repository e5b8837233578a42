package gallery

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)
