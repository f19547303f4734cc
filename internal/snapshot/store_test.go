// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

func category(t *testing.T, name string) types.Category {
	t.Helper()
	c, err := types.ParseCategory(name)
	require.NoError(t, err)
	return c
}

func sampleRecords() []types.AuthorRecord {
	return []types.AuthorRecord{
		{Name: "Zed Zimmer", CoAuthors: []string{"Ada Lovelace"}, NumPubs: 1},
		{Name: "Ada Lovelace", CoAuthors: []string{"Zed Zimmer", "Charles Babbage"}, NumPubs: 3},
		{Name: "Charles Babbage", CoAuthors: []string{"Ada Lovelace"}, NumPubs: 2},
	}
}

func TestStorePath(t *testing.T) {
	s := NewStore("")
	assert.Equal(t, DefaultDir, s.Dir())
	assert.Equal(t, filepath.Join("author_data", "computer_science_authors.json"),
		s.Path(category(t, "computer science")))
}

func TestSaveLoadPreservesOrder(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "author_data"))
	c := category(t, "physics")

	path, err := s.Save(c, sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, s.Path(c), path)
	assert.True(t, s.Exists(c))

	got, err := s.Load(c)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file is renamed away")
}

func TestEncodeFormat(t *testing.T) {
	data, err := Encode([]types.AuthorRecord{
		{Name: "A", CoAuthors: []string{"B"}, NumPubs: 1},
		{Name: "B", NumPubs: 1},
	})
	require.NoError(t, err)

	want := `{
    "A": {
        "co_authors": [
            "B"
        ],
        "num_pubs": 1
    },
    "B": {
        "co_authors": [],
        "num_pubs": 1
    }
}
`
	assert.Equal(t, want, string(data))
}

func TestEncodeEmpty(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	got, err := Decode(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeCleansLegacyFiles(t *testing.T) {
	legacy := `{
    "A": {"co_authors": ["B", "A", "B", "C"], "num_pubs": 2},
    "B": {"co_authors": ["A"], "num_pubs": 1},
    "A": {"co_authors": ["C", "A"], "num_pubs": 5}
}`
	got, err := Decode(strings.NewReader(legacy))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, []string{"C"}, got[0].CoAuthors, "last duplicate wins, self dropped")
	assert.Equal(t, 5, got[0].NumPubs)
	assert.Equal(t, "B", got[1].Name)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"array root", `[]`},
		{"truncated", `{"A": {"co_authors": [`},
		{"bad value", `{"A": 3}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.Load(category(t, "statistics"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.Exists(category(t, "statistics")))
}
