// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank sampled authors by publications and unique co-authors",
	Long: `Rank draws a sample from the category snapshot and prints the authors with
the most publications and the most unique co-authors, as tables and bar
charts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := stepReporter(cmd)
		if err != nil {
			return err
		}
		for _, step := range []func() error{r.Ranking, r.TopPublications, r.TopCoauthors} {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <author>",
	Short: "Compare an author's unique co-authors with the sample leader",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := stepReporter(cmd)
		if err != nil {
			return err
		}
		return r.Compare(args[0])
	},
}

var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Report the most frequent co-author pair in a sample",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := stepReporter(cmd)
		if err != nil {
			return err
		}
		return r.Pair()
	},
}

var networkCmd = &cobra.Command{
	Use:   "network [author]",
	Short: "Summarize a sample's co-author network, or one author's",
	Long: `Network prints the size and heaviest links of the sampled co-author network
and writes it as a Graphviz DOT file to the output directory. With an author
argument only that author's own network is built.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := stepReporter(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return r.Ego(args[0])
		}
		return r.Network()
	},
}

func init() {
	for _, c := range []*cobra.Command{rankCmd, compareCmd, pairCmd, networkCmd} {
		addSampleFlags(c)
		addCategoryFlag(c)
		rootCmd.AddCommand(c)
	}
}

// addCategoryFlag registers the required --category flag.
func addCategoryFlag(cmd *cobra.Command) {
	cmd.Flags().String("category", "", "subject category (e.g. \"Computer Science\" or computer_science)")
	_ = cmd.MarkFlagRequired("category")
}

// flagCategory parses the --category flag of cmd.
func flagCategory(cmd *cobra.Command) (types.Category, error) {
	name, err := cmd.Flags().GetString("category")
	if err != nil {
		return types.Category{}, err
	}
	return types.ParseCategory(name)
}

// stepReporter loads the sample selected by cmd's flags.
func stepReporter(cmd *cobra.Command) (*reporter, error) {
	category, err := flagCategory(cmd)
	if err != nil {
		return nil, err
	}
	conf, err := sampleConfig(cmd)
	if err != nil {
		return nil, err
	}
	sample, err := loadSample(category, conf)
	if err != nil {
		return nil, err
	}
	return newReporter(cmd.OutOrStdout(), category, sample, conf), nil
}
