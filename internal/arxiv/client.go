// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-scout/internal/httputil"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// Base URLs. Declared as vars so tests can substitute httptest servers.
var (
	urlBase    = "https://arxiv.org"
	readerBase = "https://r.jina.ai"
)

const (
	// MaxPageSize caps results per page for every fetch adapter.
	MaxPageSize = 50

	defaultPageSize = 25

	// DefaultTimeout applies to page fetches. Content rendering goes
	// through an external proxy and gets double.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "arxiv-scout/0.1"
)

// Sentinel errors for caller-input failures. These are surfaced as
// structured error payloads, not fatal faults.
var (
	// ErrEmptyQuery means an advanced search was requested with no
	// filter fields.
	ErrEmptyQuery = errors.New("at least one search field is required")

	// ErrNoIdentifier means no arXiv identifier could be derived from
	// the input.
	ErrNoIdentifier = errors.New("could not extract arXiv ID")
)

// Client fetches arXiv HTML pages and runs them through the extractors.
// Each call is independent and stateless; a slow or failing upstream
// fails that call only.
type Client struct {
	page   *http.Client
	render *http.Client
	cfg    types.ClientConfig
}

// New builds a Client from cfg, applying defaults for zero values.
func New(cfg types.ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Client{
		page:   &http.Client{Timeout: cfg.Timeout},
		render: &http.Client{Timeout: 2 * cfg.Timeout},
		cfg:    cfg,
	}
}

// SearchParams holds the plain-search filters.
type SearchParams struct {
	Query    string
	Category string
	Author   string
	SortBy   string
	Page     int
	PageSize int
}

// AdvancedParams holds the field-scoped search filters. Dates are
// YYYY-MM-DD strings passed through to the remote form.
type AdvancedParams struct {
	Title    string
	Abstract string
	Author   string
	Category string
	ID       string
	DateFrom string
	DateTo   string
	SortBy   string
	Page     int
	PageSize int
}

// clampPaging applies the page and page-size defaults and the
// MaxPageSize cap.
func clampPaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Search queries the search page and extracts one page of results.
func (c *Client) Search(ctx context.Context, p SearchParams) (*types.SearchResult, error) {
	page, pageSize := clampPaging(p.Page, p.PageSize)
	start := (page - 1) * pageSize

	var terms []string
	if p.Query != "" {
		terms = append(terms, p.Query)
	}
	if p.Author != "" {
		terms = append(terms, "au:"+p.Author)
	}
	if p.Category != "" {
		terms = append(terms, "cat:"+p.Category)
	}
	fullQuery := strings.Join(terms, " AND ")

	u := fmt.Sprintf("%s/search/?query=%s&searchtype=all&abstracts=show&order=%s&size=%d&start=%d",
		urlBase, url.QueryEscape(fullQuery), url.QueryEscape(SortToken(p.SortBy)), pageSize, start)

	body, err := httputil.Get(ctx, c.page, u, c.cfg.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("fetching search page: %w", err)
	}

	return ParseSearchResults(body, fullQuery, page, pageSize)
}

// SearchAdvanced queries the advanced-search form with field-scoped
// filters. It fails fast with ErrEmptyQuery before any network call when
// no filter field is supplied.
func (c *Client) SearchAdvanced(ctx context.Context, p AdvancedParams) (*types.SearchResult, error) {
	var parts []string
	for _, f := range []struct{ prefix, value string }{
		{"ti:", p.Title},
		{"abs:", p.Abstract},
		{"au:", p.Author},
		{"cat:", p.Category},
		{"id:", p.ID},
	} {
		if f.value != "" {
			parts = append(parts, f.prefix+f.value)
		}
	}
	if len(parts) == 0 {
		return nil, ErrEmptyQuery
	}

	page, pageSize := clampPaging(p.Page, p.PageSize)
	start := (page - 1) * pageSize
	fullQuery := strings.Join(parts, " AND ")

	u := fmt.Sprintf("%s/search/advanced?terms-0-operator=AND&terms-0-term=%s&terms-0-field=all"+
		"&classification-physics_archives=all&classification-include_cross_list=include"+
		"&abstracts=show&size=%d&start=%d&order=%s",
		urlBase, url.QueryEscape(fullQuery), pageSize, start, url.QueryEscape(SortToken(p.SortBy)))
	if p.DateFrom != "" {
		u += "&date-from_date=" + url.QueryEscape(p.DateFrom)
	}
	if p.DateTo != "" {
		u += "&date-to_date=" + url.QueryEscape(p.DateTo)
	}

	body, err := httputil.Get(ctx, c.page, u, c.cfg.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("fetching advanced search page: %w", err)
	}

	return ParseSearchResults(body, fullQuery, page, pageSize)
}

// Paper resolves an identifier from a bare ID or URL, fetches the
// abstract page, and extracts the record.
func (c *Client) Paper(ctx context.Context, idOrURL string) (*types.Paper, error) {
	id, ok := ExtractID(idOrURL)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoIdentifier, idOrURL)
	}

	body, err := httputil.Get(ctx, c.page, absURL(id), c.cfg.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("fetching abstract page for %s: %w", id, err)
	}

	return ParsePaper(body, id)
}

// Content fetches the rendered plain-text/markdown content of a paper
// through the external rendering proxy. The body is returned verbatim;
// there is no local parsing. Inputs that are neither an identifier nor
// an http(s) URL are treated as an abstract-page path.
func (c *Client) Content(ctx context.Context, idOrURL string) (string, error) {
	var target string
	if id, ok := ExtractID(idOrURL); ok {
		target = absURL(id)
	} else if strings.HasPrefix(idOrURL, "http") {
		target = idOrURL
	} else {
		target = urlBase + "/abs/" + idOrURL
	}

	body, err := httputil.Get(ctx, c.render, readerBase+"/"+target, c.cfg.UserAgent)
	if err != nil {
		return "", fmt.Errorf("fetching rendered content: %w", err)
	}
	return body, nil
}

// Recent fetches the recent-listing page for a category and extracts
// its papers. count is capped at MaxPageSize and defaults to 10.
func (c *Client) Recent(ctx context.Context, category string, count int) (*types.Listing, error) {
	if category == "" {
		category = "cs.AI"
	}
	if count <= 0 {
		count = 10
	}
	if count > MaxPageSize {
		count = MaxPageSize
	}

	u := fmt.Sprintf("%s/list/%s/recent?skip=0&show=%d", urlBase, category, count)
	body, err := httputil.Get(ctx, c.page, u, c.cfg.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("fetching recent listing for %s: %w", category, err)
	}

	papers, err := ParseListing(body)
	if err != nil {
		return nil, err
	}

	return &types.Listing{
		Category:     category,
		CategoryName: CategoryName(category),
		Count:        len(papers),
		Papers:       papers,
	}, nil
}
