package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	focusStyle   = labelStyle.Foreground(lipgloss.Color("33"))
	helperStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	problemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	fadingStyle  = problemStyle.Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)
