// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestExportYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "physics.yaml")
	require.NoError(t, ExportYAML(path, category(t, "physics"), sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc ExportDocument
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "physics", doc.Category)
	assert.False(t, doc.ExportedAt.IsZero())
	require.Len(t, doc.Authors, 3)
	assert.Equal(t, "Ada Lovelace", doc.Authors[1].Name)
	assert.Equal(t, 3, doc.Authors[1].NumPubs)
	assert.Equal(t, []string{"Zed Zimmer", "Charles Babbage"}, doc.Authors[1].CoAuthors)
}

func TestExportSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshots.db")
	c := category(t, "mathematics")

	id1, err := ExportSQLite(ctx, path, c, sampleRecords())
	require.NoError(t, err)
	id2, err := ExportSQLite(ctx, path, c, sampleRecords()[:1])
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var snapshots int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM snapshots`).Scan(&snapshots))
	assert.Equal(t, 2, snapshots)

	var authors, pubs int
	require.NoError(t, db.QueryRow(
		`SELECT count(*), sum(num_pubs) FROM authors WHERE snapshot_id = ?`, id1,
	).Scan(&authors, &pubs))
	assert.Equal(t, 3, authors)
	assert.Equal(t, 6, pubs)

	var first string
	require.NoError(t, db.QueryRow(
		`SELECT name FROM authors WHERE snapshot_id = ? ORDER BY position LIMIT 1`, id1,
	).Scan(&first))
	assert.Equal(t, "Zed Zimmer", first)

	var links int
	require.NoError(t, db.QueryRow(
		`SELECT count(*) FROM coauthors WHERE snapshot_id = ? AND coauthor = 'Ada Lovelace'`, id1,
	).Scan(&links))
	assert.Equal(t, 2, links)
}
