// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/coauthor-engine/internal/collect"
	"github.com/pdiddy/coauthor-engine/internal/secrets"
	"github.com/pdiddy/coauthor-engine/internal/snapshot"
	"github.com/pdiddy/coauthor-engine/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [categories...]",
	Short: "Harvest arXiv articles and write per-category author snapshots",
	Long: `Fetch queries the arXiv API for each named category (all six when none
are given), aggregates the articles into per-author records, and writes one
snapshot per category to the data directory. Existing snapshots are replaced.

Categories: Physics, Mathematics, Computer Science, Quantitative Biology,
Quantitative Finance, Statistics. Names are case-insensitive; the file slug
(e.g. computer_science) is accepted as well.`,
	RunE: runFetch,
}

func init() {
	f := fetchCmd.Flags()
	f.Int("max-results", 300, "articles fetched per category")
	f.Int("page-size", 100, "articles requested per API call")
	f.Duration("interval", 3*time.Second, "minimum spacing between API calls")
	f.Duration("timeout", 60*time.Second, "HTTP request timeout")
	f.String("contact", "", "contact email appended to the User-Agent (overrides .secrets/arxiv-contact)")

	bindFlag("fetch.max_results", f.Lookup("max-results"))
	bindFlag("fetch.page_size", f.Lookup("page-size"))
	bindFlag("fetch.request_interval", f.Lookup("interval"))
	bindFlag("fetch.timeout", f.Lookup("timeout"))

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	categories, err := types.ParseCategories(args)
	if err != nil {
		return err
	}

	fc := cfg.Fetch
	override, err := cmd.Flags().GetString("contact")
	if err != nil {
		return err
	}
	contact := loadedSecrets.Lookup(secrets.ArxivContact, override)
	fc.UserAgent = secrets.Secrets{secrets.ArxivContact: contact}.UserAgent(fc.UserAgent)

	client := &http.Client{Timeout: fc.Timeout}
	src := collect.NewArxivSource(client, fc)
	store := snapshot.NewStore(cfg.DataDir)

	slog.Info("fetching", "categories", len(categories), "max_results", fc.MaxResults, "dir", store.Dir())
	summary := collect.Collect(cmd.Context(), src, store, categories, fc, cmd.OutOrStdout())
	if summary.HasFailures() {
		return fmt.Errorf("%d category(ies) failed", summary.Failed())
	}
	return nil
}
