// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect fetches category articles and aggregates them into
// per-author co-authorship records.
package collect

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// Source fetches the articles of one category.
type Source interface {
	Name() string
	Fetch(ctx context.Context, category types.Category, cfg types.FetchConfig) ([]types.Article, error)
}

// Saver persists the records aggregated for a category and returns where
// they were written.
type Saver interface {
	Save(category types.Category, records []types.AuthorRecord) (string, error)
}

// CategoryResult is the outcome for one category.
type CategoryResult struct {
	Category types.Category
	Articles int
	Authors  int
	Path     string
	Err      error
}

// Summary holds per-category outcomes of a collection run.
type Summary struct {
	Results []CategoryResult
}

// Failed returns the number of categories that could not be collected.
func (s Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// HasFailures reports whether any category failed.
func (s Summary) HasFailures() bool { return s.Failed() > 0 }

// Collect fetches, aggregates and saves each category in turn. A failing
// category is reported on w and the run moves on to the next one.
func Collect(ctx context.Context, src Source, saver Saver, categories []types.Category, cfg types.FetchConfig, w io.Writer) Summary {
	var summary Summary
	for _, c := range categories {
		res := collectOne(ctx, src, saver, c, cfg)
		summary.Results = append(summary.Results, res)

		if res.Err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", c.Name, res.Err)
			slog.Error("category collection failed", "category", c.Name, "source", src.Name(), "error", res.Err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		fmt.Fprintf(w, "Authors extracted for %s category.\n", c.Name)
		slog.Info("category collected", "category", c.Name,
			"articles", res.Articles, "authors", res.Authors, "path", res.Path)
	}
	return summary
}

func collectOne(ctx context.Context, src Source, saver Saver, c types.Category, cfg types.FetchConfig) CategoryResult {
	res := CategoryResult{Category: c}

	articles, err := src.Fetch(ctx, c, cfg)
	if err != nil {
		res.Err = fmt.Errorf("fetching from %s: %w", src.Name(), err)
		return res
	}
	res.Articles = len(articles)

	records := Aggregate(articles)
	res.Authors = len(records)

	path, err := saver.Save(c, records)
	if err != nil {
		res.Err = fmt.Errorf("saving snapshot: %w", err)
		return res
	}
	res.Path = path
	return res
}
