// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chart

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
)

// Series plots values as a line chart without x labels, one point per value
// in the given order.
func Series(w io.Writer, title, caption string, values []float64, opts Options) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	if len(values) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("(no data)"))
		return err
	}

	// A single point cannot be drawn as a line.
	if len(values) == 1 {
		values = []float64{values[0], values[0]}
	}

	graphOpts := []asciigraph.Option{
		asciigraph.Height(opts.height()),
		asciigraph.Width(max(opts.width()-12, 10)),
	}
	if caption != "" {
		graphOpts = append(graphOpts, asciigraph.Caption(caption))
	}
	_, err := fmt.Fprintln(w, asciigraph.Plot(values, graphOpts...))
	return err
}
