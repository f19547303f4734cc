// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pdiddy/coauthor-engine/internal/analysis"
	"github.com/pdiddy/coauthor-engine/internal/chart"
	"github.com/pdiddy/coauthor-engine/internal/network"
	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// networkEdgeLimit caps the edges listed in terminal network summaries.
const networkEdgeLimit = 15

// reporter renders the analysis steps for one category sample.
type reporter struct {
	w         io.Writer
	category  types.Category
	analyzer  *analysis.Analyzer
	opts      chart.Options
	topN      int
	outputDir string
}

func newReporter(w io.Writer, c types.Category, sample []types.AuthorRecord, conf types.Config) *reporter {
	width := conf.Chart.Width
	if width <= 0 {
		width = chart.TerminalWidth(os.Stdout.Fd())
	}
	topN := conf.Analysis.TopN
	if topN <= 0 {
		topN = 10
	}
	return &reporter{
		w:         w,
		category:  c,
		analyzer:  analysis.New(sample),
		opts:      chart.Options{Width: width, Height: conf.Chart.Height},
		topN:      topN,
		outputDir: conf.OutputDir,
	}
}

// Network summarizes the whole-sample co-author network and writes its DOT
// file.
func (r *reporter) Network() error {
	n := network.Build(r.analyzer.Records())
	if err := chart.NetworkSummary(r.w, "Author and Co-Author Network", n, networkEdgeLimit); err != nil {
		return err
	}
	return r.writeDOT(n, "Author and Co-Author Network", r.category.Slug+"_network.dot")
}

// Publications plots the publication count of every sampled author.
func (r *reporter) Publications() error {
	records := r.analyzer.Records()
	values := make([]float64, len(records))
	for i, rec := range records {
		values[i] = float64(rec.NumPubs)
	}
	return chart.Series(r.w, "Number of Publications for Each Author", "Author", values, r.opts)
}

// TopPublications draws the authors with the most publications.
func (r *reporter) TopPublications() error {
	ranked := analysis.Top(r.analyzer.MostInfluential(), r.topN)
	bars := make([]chart.Bar, len(ranked))
	for i, rec := range ranked {
		bars[i] = chart.Bar{Label: rec.Name, Value: float64(rec.NumPubs)}
	}
	return chart.Bars(r.w, chart.BarChart{
		Title:  fmt.Sprintf("Top %d Authors with the Most Publications", r.topN),
		XLabel: "Number of Publications",
		Bars:   bars,
		Color:  chart.ColorSkyBlue,
	}, r.opts)
}

// TopCoauthors draws the authors with the most unique co-authors.
func (r *reporter) TopCoauthors() error {
	ranked := analysis.Top(r.analyzer.UniqueCoauthorCounts(), r.topN)
	bars := make([]chart.Bar, len(ranked))
	for i, ac := range ranked {
		bars[i] = chart.Bar{Label: ac.Name, Value: float64(ac.Count)}
	}
	return chart.Bars(r.w, chart.BarChart{
		Title:  fmt.Sprintf("Top %d Authors with the Most Unique Co-authors", r.topN),
		XLabel: "Number of Unique Co-authors",
		Bars:   bars,
		Color:  chart.ColorPurple,
	}, r.opts)
}

// Ranking prints both rankings as tables.
func (r *reporter) Ranking() error {
	pubs := analysis.Top(r.analyzer.MostInfluential(), r.topN)
	rows := make([][]any, len(pubs))
	for i, rec := range pubs {
		rows[i] = []any{rec.Name, rec.NumPubs, len(rec.CoAuthors)}
	}
	if err := chart.Table(r.w, "Most publications", []string{"Author", "Publications", "Co-authors"}, rows); err != nil {
		return err
	}

	counts := analysis.Top(r.analyzer.UniqueCoauthorCounts(), r.topN)
	rows = make([][]any, len(counts))
	for i, ac := range counts {
		rows[i] = []any{ac.Name, ac.Count}
	}
	return chart.Table(r.w, "Most unique co-authors", []string{"Author", "Unique co-authors"}, rows)
}

// Compare prints how name ranks against the author with the most unique
// co-authors.
func (r *reporter) Compare(name string) error {
	c, err := r.analyzer.Compare(name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.w, c.String())
	return err
}

// Ego summarizes name's own co-author network and writes its DOT file. An
// author missing from the sample is reported and is not an error.
func (r *reporter) Ego(name string) error {
	n, ok := network.Ego(r.analyzer.Records(), name)
	if !ok {
		_, err := fmt.Fprintf(r.w, "No data available for author: %s\n", name)
		return err
	}
	title := fmt.Sprintf("Co-Author Network for %s", name)
	if err := chart.NetworkSummary(r.w, title, n, networkEdgeLimit); err != nil {
		return err
	}
	return r.writeDOT(n, title, fmt.Sprintf("%s_%s_network.dot", r.category.Slug, fileSafe(name)))
}

// Pair prints the most frequent co-author pair. A sample without pairs is
// reported and is not an error.
func (r *reporter) Pair() error {
	p, err := r.analyzer.MostCommonPair()
	if errors.Is(err, analysis.ErrNoPairs) {
		_, err = fmt.Fprintln(r.w, "No co-author pairs in this sample.")
		return err
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.w, p.String())
	return err
}

func (r *reporter) writeDOT(n *network.Network, title, name string) error {
	if r.outputDir == "" {
		return nil
	}
	data, err := n.MarshalDOT(title)
	if err != nil {
		return fmt.Errorf("encoding network: %w", err)
	}
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(r.outputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing network: %w", err)
	}
	slog.Info("wrote network", "path", path, "nodes", n.Nodes())
	return nil
}

// fileSafe maps name to a lower-case file name fragment.
func fileSafe(name string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '_'
	}, strings.TrimSpace(name))
	if s == "" {
		return "author"
	}
	return s
}
