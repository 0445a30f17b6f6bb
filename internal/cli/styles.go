package cli

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	stateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	sidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("240"))

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 3).
			Width(alertWidth)
)
