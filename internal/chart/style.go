// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chart renders analysis results as terminal charts and tables.
package chart

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette used by every chart.
var (
	ColorSkyBlue = lipgloss.Color("#87CEEB")
	ColorGray    = lipgloss.Color("#808080")
	ColorPurple  = lipgloss.Color("#8E44AD")
	ColorMuted   = lipgloss.Color("#5C6770")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

const (
	defaultWidth  = 80
	defaultHeight = 12
	minWidth      = 40
)

// Options controls chart dimensions. Zero values select defaults.
type Options struct {
	Width  int
	Height int
}

func (o Options) width() int {
	switch {
	case o.Width <= 0:
		return defaultWidth
	case o.Width < minWidth:
		return minWidth
	default:
		return o.Width
	}
}

func (o Options) height() int {
	if o.Height <= 0 {
		return defaultHeight
	}
	return o.Height
}

// TerminalWidth returns the column count of the terminal on fd, or 0 when
// fd is not a terminal.
func TerminalWidth(fd uintptr) int {
	w, _, err := term.GetSize(int(fd))
	if err != nil {
		return 0
	}
	return w
}
