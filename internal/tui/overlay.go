// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlay splices fg into the middle of bg, line by line. fg is clipped to
// bg's size first, so the result always has bg's dimensions.
func overlay(bg, fg string) string {
	bgWidth, bgHeight := lipgloss.Size(bg)
	fg = lipgloss.NewStyle().MaxWidth(bgWidth).MaxHeight(bgHeight).Render(fg)
	fgWidth, fgHeight := lipgloss.Size(fg)

	offsetLeft := (bgWidth - fgWidth) / 2
	offsetTop := (bgHeight - fgHeight) / 2

	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, line := range fgLines {
		row := i + offsetTop
		if row >= len(bgLines) {
			break
		}
		// Pad short background lines so the right-hand cut lands correctly.
		base := bgLines[row]
		if w := ansi.StringWidth(base); w < bgWidth {
			base += strings.Repeat(" ", bgWidth-w)
		}
		left := ansi.Truncate(base, offsetLeft, "")
		right := ansi.TruncateLeft(base, offsetLeft+fgWidth, "")
		bgLines[row] = left + line + right
	}

	return strings.Join(bgLines, "\n")
}
