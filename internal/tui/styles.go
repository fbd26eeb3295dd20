package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	kindStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	sideStyle   = lipgloss.NewStyle().Faint(true)
	scriptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)
