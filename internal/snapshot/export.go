// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// ExportDocument is the YAML form of a snapshot.
type ExportDocument struct {
	Category   string               `yaml:"category"`
	ExportedAt time.Time            `yaml:"exported_at"`
	Authors    []types.AuthorRecord `yaml:"authors"`
}

// ExportYAML writes records for category to path.
func ExportYAML(path string, c types.Category, records []types.AuthorRecord) error {
	doc := ExportDocument{
		Category:   c.Name,
		ExportedAt: time.Now().UTC(),
		Authors:    records,
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportSQLite dumps records for category into the SQLite file at path as a
// new snapshot and returns the snapshot ID. Earlier snapshots in the same
// file are left untouched.
func ExportSQLite(ctx context.Context, path string, c types.Category, records []types.AuthorRecord) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return "", fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := createSchema(ctx, db); err != nil {
		return "", fmt.Errorf("creating schema: %w", err)
	}

	id := uuid.NewString()
	if err := insertSnapshot(ctx, db, id, c, records); err != nil {
		return "", err
	}
	return id, nil
}

func createSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			category TEXT NOT NULL,
			created_at TEXT NOT NULL,
			authors INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS authors (
			snapshot_id TEXT NOT NULL REFERENCES snapshots(id),
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			num_pubs INTEGER NOT NULL,
			PRIMARY KEY (snapshot_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS coauthors (
			snapshot_id TEXT NOT NULL REFERENCES snapshots(id),
			author TEXT NOT NULL,
			coauthor TEXT NOT NULL,
			PRIMARY KEY (snapshot_id, author, coauthor)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_coauthors_coauthor ON coauthors(snapshot_id, coauthor)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func insertSnapshot(ctx context.Context, db *sql.DB, id string, c types.Category, records []types.AuthorRecord) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, category, created_at, authors) VALUES (?, ?, ?, ?)`,
		id, c.Name, time.Now().UTC().Format(time.RFC3339), len(records),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	authorStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO authors (snapshot_id, position, name, num_pubs) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing author insert: %w", err)
	}
	defer authorStmt.Close()

	coStmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO coauthors (snapshot_id, author, coauthor) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing co-author insert: %w", err)
	}
	defer coStmt.Close()

	for i, r := range records {
		if _, err := authorStmt.ExecContext(ctx, id, i, r.Name, r.NumPubs); err != nil {
			return fmt.Errorf("inserting author %q: %w", r.Name, err)
		}
		for _, co := range r.CoAuthors {
			if _, err := coStmt.ExecContext(ctx, id, r.Name, co); err != nil {
				return fmt.Errorf("inserting co-author of %q: %w", r.Name, err)
			}
		}
	}

	return tx.Commit()
}
