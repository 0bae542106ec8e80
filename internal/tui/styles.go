package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")).
			MarginBottom(1)

	styleRedCard   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleBlackCard = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	styleFaceDown  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleEmpty     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	styleCursor   = lipgloss.NewStyle().Reverse(true)
	styleSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	styleMenuChoice = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	styleMenuActive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	styleWin = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
)
