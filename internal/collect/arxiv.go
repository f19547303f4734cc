// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/coauthor-engine/internal/httputil"
	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

const (
	defaultMaxResults      = 300
	defaultPageSize        = 100
	defaultRequestInterval = 3 * time.Second
)

// ArxivSource fetches category articles from the arXiv API.
type ArxivSource struct {
	Client *http.Client

	// Limiter spaces consecutive API calls. Nil disables throttling.
	Limiter *rate.Limiter
}

// NewArxivSource returns a source throttled to one request per
// cfg.RequestInterval (default 3s, as arXiv's terms of use ask).
func NewArxivSource(client *http.Client, cfg types.FetchConfig) *ArxivSource {
	interval := cfg.RequestInterval
	if interval <= 0 {
		interval = defaultRequestInterval
	}
	return &ArxivSource{
		Client:  client,
		Limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Name returns the source identifier.
func (s *ArxivSource) Name() string { return "arxiv" }

// Fetch pages through the search results for category until cfg.MaxResults
// articles have been read or the API runs out of entries.
func (s *ArxivSource) Fetch(ctx context.Context, category types.Category, cfg types.FetchConfig) ([]types.Article, error) {
	q := buildArxivQuery(category)
	if q == "" {
		return nil, fmt.Errorf("empty arXiv query for category %q", category.Name)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var articles []types.Article
	for start := 0; start < maxResults; {
		n := min(pageSize, maxResults-start)
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return articles, err
			}
		}

		feed, err := s.fetchPage(ctx, q, start, n, cfg)
		if err != nil {
			return articles, err
		}
		slog.Debug("fetched arXiv page", "category", category.Name, "start", start, "entries", len(feed.Entries))

		for _, e := range feed.Entries {
			if a, ok := e.article(); ok {
				articles = append(articles, a)
			}
		}
		if len(feed.Entries) < n {
			break
		}
		start += len(feed.Entries)
	}
	return articles, nil
}

func (s *ArxivSource) fetchPage(ctx context.Context, q string, start, n int, cfg types.FetchConfig) (*arxivFeed, error) {
	url := fmt.Sprintf("%s?search_query=%s&start=%d&max_results=%d&sortBy=relevance&sortOrder=descending",
		arxivAPIBase, q, start, n)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	return &feed, nil
}

// buildArxivQuery turns the category terms into a search_query value.
func buildArxivQuery(c types.Category) string {
	if len(c.Terms) == 0 {
		return ""
	}
	return "all:" + strings.Join(c.Terms, "+")
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID         string          `xml:"id"`
	Title      string          `xml:"title"`
	Published  string          `xml:"published"`
	Authors    []arxivAuthor   `xml:"author"`
	Categories []arxivCategory `xml:"category"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

func (e arxivEntry) article() (types.Article, bool) {
	id := extractArxivID(e.ID)
	if id == "" {
		return types.Article{}, false
	}
	a := types.Article{
		ID:    id,
		Title: strings.Join(strings.Fields(e.Title), " "),
	}
	for _, au := range e.Authors {
		a.Authors = append(a.Authors, strings.TrimSpace(au.Name))
	}
	for _, c := range e.Categories {
		if c.Term != "" {
			a.Categories = append(a.Categories, c.Term)
		}
	}
	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		a.Published = t
	}
	return a, true
}

// extractArxivID pulls the arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" → "2301.07041").
func extractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := idURL[idx+len(prefix):]

	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
