// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

type mockSource struct {
	articles map[string][]types.Article
	errs     map[string]error
}

func (m *mockSource) Name() string { return "mock" }

func (m *mockSource) Fetch(_ context.Context, c types.Category, _ types.FetchConfig) ([]types.Article, error) {
	if err := m.errs[c.Slug]; err != nil {
		return nil, err
	}
	return m.articles[c.Slug], nil
}

type memSaver struct {
	saved map[string][]types.AuthorRecord
	err   error
}

func (m *memSaver) Save(c types.Category, records []types.AuthorRecord) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.saved == nil {
		m.saved = make(map[string][]types.AuthorRecord)
	}
	m.saved[c.Slug] = records
	return "mem://" + c.Slug, nil
}

func TestCollect(t *testing.T) {
	cats, err := types.ParseCategories([]string{"physics", "statistics", "mathematics"})
	require.NoError(t, err)

	src := &mockSource{
		articles: map[string][]types.Article{
			"physics":     {{ID: "1", Authors: []string{"A", "B"}}, {ID: "2", Authors: []string{"A"}}},
			"mathematics": {{ID: "3", Authors: []string{"C"}}},
		},
		errs: map[string]error{"statistics": errors.New("network down")},
	}
	saver := &memSaver{}
	var out strings.Builder

	summary := Collect(context.Background(), src, saver, cats, types.FetchConfig{}, &out)

	require.Len(t, summary.Results, 3)
	assert.Equal(t, 1, summary.Failed())
	assert.True(t, summary.HasFailures())

	phys := summary.Results[0]
	assert.NoError(t, phys.Err)
	assert.Equal(t, 2, phys.Articles)
	assert.Equal(t, 2, phys.Authors)
	assert.Equal(t, "mem://physics", phys.Path)

	assert.ErrorContains(t, summary.Results[1].Err, "network down")
	assert.Len(t, saver.saved["mathematics"], 1, "collection continues after a failed category")

	assert.Contains(t, out.String(), "Authors extracted for physics category.")
	assert.Contains(t, out.String(), "failed  statistics: fetching from mock: network down")
	assert.Contains(t, out.String(), "Authors extracted for mathematics category.")
}

func TestCollectSaveFailure(t *testing.T) {
	cats, err := types.ParseCategories([]string{"physics"})
	require.NoError(t, err)

	src := &mockSource{articles: map[string][]types.Article{"physics": {{ID: "1", Authors: []string{"A"}}}}}
	var out strings.Builder
	summary := Collect(context.Background(), src, &memSaver{err: errors.New("disk full")}, cats, types.FetchConfig{}, &out)

	assert.Equal(t, 1, summary.Failed())
	assert.ErrorContains(t, summary.Results[0].Err, "saving snapshot: disk full")
}
