// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chart

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pdiddy/coauthor-engine/internal/network"
)

// Table renders rows under headers with a leading rank column.
func Table(w io.Writer, title string, headers []string, rows [][]any) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
			return err
		}
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("(0 rows)"))
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := table.Row{"#"}
	for _, h := range headers {
		header = append(header, h)
	}
	t.AppendHeader(header)

	for i, r := range rows {
		row := table.Row{i + 1}
		row = append(row, r...)
		t.AppendRow(row)
	}
	t.Render()
	return nil
}

// NetworkSummary prints the size of n and its limit heaviest links.
func NetworkSummary(w io.Writer, title string, n *network.Network, limit int) error {
	edges := n.Edges()
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	summary := fmt.Sprintf("%d authors, %d co-author links", n.Nodes(), len(edges))
	if _, err := fmt.Fprintln(w, mutedStyle.Render(summary)); err != nil {
		return err
	}
	if len(edges) == 0 {
		return nil
	}

	if limit > 0 && len(edges) > limit {
		edges = edges[:limit]
	}
	rows := make([][]any, len(edges))
	for i, e := range edges {
		rows[i] = []any{e.From, e.To, formatValue(e.Weight)}
	}
	return Table(w, "", []string{"Author", "Co-author", "Weight"}, rows)
}
