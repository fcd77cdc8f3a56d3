// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for dataentry.
// This file defines the shared lipgloss styles.
package tui // import "github.com/toeirei/dataentry/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal/cyan
	colorError     = lipgloss.Color("196") // Bright red
	colorSuccess   = lipgloss.Color("40")  // Green
	colorWhite     = lipgloss.Color("231")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(0, 0, 1, 0)

	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.Color("237")).
			Padding(0, 2).
			MarginRight(1)

	activeButtonStyle = buttonStyle.
				Background(colorHighlight).
				Underline(true)

	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1).
			MarginTop(1)

	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorHighlight).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(colorError)
	successStyle     = lipgloss.NewStyle().Foreground(colorSuccess)
)
