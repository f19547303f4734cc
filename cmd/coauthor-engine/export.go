// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/coauthor-engine/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump a full category snapshot as YAML or SQLite",
	Long: `Export reads the whole snapshot of a category (no sampling) and writes it
once in another format: a YAML document, or a single-file SQLite database with
snapshots, authors and coauthors tables. Each SQLite export adds a new
snapshot row keyed by a fresh UUID.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	addCategoryFlag(exportCmd)
	exportCmd.Flags().String("format", "yaml", "output format: yaml or sqlite")
	exportCmd.Flags().String("out", "", "output file (default <output-dir>/<slug>_authors.<yaml|db>)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	category, err := flagCategory(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	records, err := snapshot.NewStore(cfg.DataDir).Load(category)
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "yaml", "yml":
		if out == "" {
			out = filepath.Join(cfg.OutputDir, category.Slug+"_authors.yaml")
		}
		if err := snapshot.ExportYAML(out, category, records); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d authors to %s\n", len(records), out)
	case "sqlite", "db":
		if out == "" {
			out = filepath.Join(cfg.OutputDir, category.Slug+"_authors.db")
		}
		id, err := snapshot.ExportSQLite(cmd.Context(), out, category, records)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d authors to %s (snapshot %s)\n", len(records), out, id)
	default:
		return fmt.Errorf("unknown export format %q (want yaml or sqlite)", format)
	}
	return nil
}
