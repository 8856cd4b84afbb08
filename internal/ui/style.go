// Package ui implements interactive prompts for the command line.
package ui

import "github.com/charmbracelet/lipgloss"

// This file defines the common defaults and styles for the UI components.
var (
	_redColor   = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
	_greenColor = lipgloss.AdaptiveColor{Light: "2", Dark: "10"}
	_plainColor = lipgloss.AdaptiveColor{Light: "0", Dark: "7"}

	_titleStyle         = lipgloss.NewStyle().Foreground(_greenColor).Bold(true)
	_descriptionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	_acceptedTitleStyle = lipgloss.NewStyle().Foreground(_plainColor)
	_errorStyle         = lipgloss.NewStyle().Foreground(_redColor)
	_acceptedFieldStyle = lipgloss.NewStyle().Faint(true)
)
