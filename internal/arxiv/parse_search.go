// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

var (
	// totalResultsPattern matches the page-header result count,
	// e.g. "Showing 1-25 of 12,345 results".
	totalResultsPattern = regexp.MustCompile(`of ([\d,]+) results`)

	// submittedPattern captures the submission date from a result
	// dateline, e.g. "Submitted 17 January, 2023".
	submittedPattern = regexp.MustCompile(`Submitted\s+(\d+\s+\w+,?\s+\d+)`)
)

// ParseSearchResults extracts papers from a search-results page. A result
// block whose required fields cannot be located is skipped; one malformed
// entry never sinks the rest of the page.
func ParseSearchResults(html, query string, page, pageSize int) (*types.SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing search page: %w", err)
	}

	result := &types.SearchResult{
		Query:    query,
		Page:     page,
		PageSize: pageSize,
	}

	if m := totalResultsPattern.FindStringSubmatch(doc.Find(".title.is-clearfix").First().Text()); m != nil {
		if n, convErr := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); convErr == nil {
			result.TotalResults = n
		}
	}

	doc.Find(".arxiv-result").Each(func(_ int, item *goquery.Selection) {
		paper, itemErr := parseSearchItem(item)
		if itemErr != nil {
			return
		}
		result.Papers = append(result.Papers, paper)
	})

	return result, nil
}

// parseSearchItem extracts a single result block. The title element is
// required; everything else degrades to an absent field.
func parseSearchItem(item *goquery.Selection) (types.Paper, error) {
	title := item.Find(".title").First()
	if title.Length() == 0 {
		return types.Paper{}, fmt.Errorf("result block has no title element")
	}

	var paper types.Paper
	paper.Title = Normalize(title.Text())

	// The expanded abstract region is preferred; collapsed results only
	// carry the short one.
	abstract := item.Find(".abstract-full").First()
	if abstract.Length() == 0 {
		abstract = item.Find(".abstract").First()
	}
	if abstract.Length() > 0 {
		paper.Abstract = CleanAbstract(abstract.Text())
	}

	href, _ := item.Find(".list-title > span > a").First().Attr("href")
	paper.URLAbstract = href
	if id, ok := ExtractID(href); ok {
		paper.ID = id
		paper.URLPDF = pdfURL(id)
	}

	item.Find(".authors a").Each(func(_ int, a *goquery.Selection) {
		paper.Authors = append(paper.Authors, strings.TrimSpace(a.Text()))
	})

	// DOI tags share the markup of category tags but are not categories.
	item.Find(".tag.is-small").Each(func(_ int, tag *goquery.Selection) {
		text := strings.TrimSpace(tag.Text())
		if text != "" && !strings.HasPrefix(text, "doi:") {
			paper.Categories = append(paper.Categories, text)
		}
	})

	if m := submittedPattern.FindStringSubmatch(item.Find(".is-size-7").First().Text()); m != nil {
		paper.DatePublished = m[1]
	}

	return paper, nil
}
