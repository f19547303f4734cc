// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/coauthor-engine/internal/analysis"
	"github.com/pdiddy/coauthor-engine/internal/prompt"
	"github.com/pdiddy/coauthor-engine/internal/snapshot"
	"github.com/pdiddy/coauthor-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Interactively analyze a random sample of one category",
	Long: `Analyze asks for a category, draws a random sample of author records from
its snapshot, and renders the co-author network, the publications plot and
the top-author charts. It then asks for an author name, compares that author
against the one with the most unique co-authors, shows the author's own
network, and reports the most frequent co-author pair.

Network files are written to the output directory in Graphviz DOT format.`,
	RunE: runAnalyze,
}

func init() {
	addSampleFlags(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	conf, err := sampleConfig(cmd)
	if err != nil {
		return err
	}
	p := prompt.New(os.Stdin, cmd.OutOrStdout())
	return analyzeSession(cmd.Context(), p, cmd.OutOrStdout(), conf)
}

// analyzeSession runs the interactive analysis, prompting through p and
// rendering to w.
func analyzeSession(ctx context.Context, p prompt.Prompter, w io.Writer, conf types.Config) error {
	category, err := prompt.Category(ctx, p, w)
	if err != nil {
		return err
	}
	sample, err := loadSample(category, conf)
	if err != nil {
		return err
	}

	r := newReporter(w, category, sample, conf)
	steps := []func() error{r.Network, r.Publications, r.TopPublications, r.TopCoauthors}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	name, err := prompt.Author(ctx, p)
	if err != nil {
		return err
	}
	if err := r.Compare(name); err != nil {
		return err
	}
	if err := r.Ego(name); err != nil {
		return err
	}
	return r.Pair()
}

// loadSample reads the category snapshot and draws the configured sample.
func loadSample(c types.Category, conf types.Config) ([]types.AuthorRecord, error) {
	records, err := snapshot.NewStore(conf.DataDir).Load(c)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s snapshot: %w", c.Name, analysis.ErrEmptySample)
	}
	rng := snapshot.NewRand(conf.Analysis.Seed)
	sample := snapshot.Sample(records, conf.Analysis.SampleSize, rng)
	slog.Info("sampled snapshot", "category", c.Slug, "records", len(records), "sample", len(sample))
	return sample, nil
}

// addSampleFlags registers the sampling flags shared by the analysis
// commands.
func addSampleFlags(cmd *cobra.Command) {
	cmd.Flags().Int("sample", 0, "author records drawn from the snapshot (default 50, 0 or negative for all)")
	cmd.Flags().Uint64("seed", 0, "sampling seed for reproducible runs (default random)")
	cmd.Flags().Int("top", 0, "entries shown in rankings (default 10)")
}

// sampleConfig returns the global configuration with any sampling flags set
// on cmd applied.
func sampleConfig(cmd *cobra.Command) (types.Config, error) {
	conf := cfg
	f := cmd.Flags()
	if f.Changed("sample") {
		n, err := f.GetInt("sample")
		if err != nil {
			return conf, err
		}
		conf.Analysis.SampleSize = n
	}
	if f.Changed("seed") {
		s, err := f.GetUint64("seed")
		if err != nil {
			return conf, err
		}
		conf.Analysis.Seed = s
	}
	if f.Changed("top") {
		n, err := f.GetInt("top")
		if err != nil {
			return conf, err
		}
		conf.Analysis.TopN = n
	}
	return conf, nil
}
