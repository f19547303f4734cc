// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chart

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Bar is one labelled value.
type Bar struct {
	Label string
	Value float64
}

// BarChart is a horizontal bar chart drawn top to bottom in Bars order.
type BarChart struct {
	Title  string
	XLabel string
	Bars   []Bar
	Color  lipgloss.Color
}

const barRune = "█"

// Bars renders c to w. Bars are scaled to the largest value; any positive
// value gets at least one cell.
func Bars(w io.Writer, c BarChart, opts Options) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(c.Title)); err != nil {
		return err
	}
	if len(c.Bars) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("(no data)"))
		return err
	}

	width := opts.width()
	labelWidth, valueWidth := 0, 0
	maxValue := 0.0
	for _, b := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		valueWidth = max(valueWidth, len(formatValue(b.Value)))
		maxValue = max(maxValue, b.Value)
	}
	labelWidth = min(labelWidth, width/3)
	barWidth := max(width-labelWidth-valueWidth-3, 1)

	color := c.Color
	if color == "" {
		color = ColorSkyBlue
	}
	barStyle := lipgloss.NewStyle().Foreground(color)

	for _, b := range c.Bars {
		label := text.Trim(b.Label, labelWidth)
		if lipgloss.Width(label) < lipgloss.Width(b.Label) && labelWidth > 1 {
			label = text.Trim(b.Label, labelWidth-1) + "…"
		}
		pad := strings.Repeat(" ", max(labelWidth-lipgloss.Width(label), 0))

		cells := 0
		if maxValue > 0 && b.Value > 0 {
			cells = max(int(b.Value/maxValue*float64(barWidth)+0.5), 1)
		}
		bar := barStyle.Render(strings.Repeat(barRune, cells))

		if _, err := fmt.Fprintf(w, "%s%s │%s %s\n", pad, label, bar, formatValue(b.Value)); err != nil {
			return err
		}
	}

	if c.XLabel != "" {
		axis := strings.Repeat(" ", labelWidth+2) + c.XLabel
		if _, err := fmt.Fprintln(w, mutedStyle.Render(axis)); err != nil {
			return err
		}
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
