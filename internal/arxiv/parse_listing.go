// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

var (
	// listingAbsPattern captures the identifier from an abstract-page
	// href, e.g. "/abs/2301.00001".
	listingAbsPattern = regexp.MustCompile(`/abs/(\d+\.\d+)`)

	// listingCodePattern matches category codes in the subjects text.
	listingCodePattern = regexp.MustCompile(`[a-z-]+\.[A-Z]+`)
)

// ParseListing extracts papers from a category recent-listing page. The
// listing is alternating dt/dd element pairs: the dt carries the
// abstract-page link, the dd the metadata. Pairs without a resolvable
// identifier are skipped. Abstracts are not present in this page format.
func ParseListing(html string) ([]types.Paper, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing listing page: %w", err)
	}

	var entries []*goquery.Selection
	doc.Find("dl#articles dt, dl#articles dd").Each(func(_ int, s *goquery.Selection) {
		entries = append(entries, s)
	})

	var papers []types.Paper
	for i := 0; i < len(entries)-1; {
		if goquery.NodeName(entries[i]) != "dt" || goquery.NodeName(entries[i+1]) != "dd" {
			i++
			continue
		}
		dt, dd := entries[i], entries[i+1]
		i += 2

		href, _ := dt.Find(`a[href*="/abs/"]`).First().Attr("href")
		m := listingAbsPattern.FindStringSubmatch(href)
		if m == nil {
			continue
		}
		id := m[1]

		paper := types.Paper{
			ID:          id,
			URLAbstract: absURL(id),
			URLPDF:      pdfURL(id),
		}

		if title := dd.Find(".list-title").First(); title.Length() > 0 {
			paper.Title = stripLabel(title.Text(), "Title:")
		}

		dd.Find(".list-authors a").Each(func(_ int, a *goquery.Selection) {
			paper.Authors = append(paper.Authors, strings.TrimSpace(a.Text()))
		})

		for _, code := range listingCodePattern.FindAllString(dd.Find(".list-subjects").Text(), -1) {
			paper.Categories = appendUnique(paper.Categories, code)
		}

		papers = append(papers, paper)
	}

	return papers, nil
}
