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
	// primarySubjectPattern captures the parenthesized code from the
	// primary-subject span, e.g. "Artificial Intelligence (cs.AI)".
	primarySubjectPattern = regexp.MustCompile(`\(([^)]+)\)`)

	// subjectCodePattern captures additional parenthesized category
	// codes from the subjects cell text.
	subjectCodePattern = regexp.MustCompile(`\(([a-z-]+\.[A-Z]+)\)`)

	// datelinePattern captures the submission date from the dateline,
	// e.g. "[Submitted on 17 Jan 2023]".
	datelinePattern = regexp.MustCompile(`Submitted.*?(\d+\s+\w+\s+\d+)`)
)

// ParsePaper extracts a single Paper from an abstract page. The caller
// resolves the identifier before fetching; id is taken as-is here.
func ParsePaper(html, id string) (*types.Paper, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing abstract page: %w", err)
	}

	paper := &types.Paper{
		ID:          id,
		URLAbstract: absURL(id),
		URLPDF:      pdfURL(id),
	}

	if title := doc.Find(".title.mathjax").First(); title.Length() > 0 {
		paper.Title = stripLabel(title.Text(), "Title:")
	}

	if abstract := doc.Find(".abstract.mathjax").First(); abstract.Length() > 0 {
		paper.Abstract = CleanAbstract(abstract.Text())
	}

	doc.Find(".authors a").Each(func(_ int, a *goquery.Selection) {
		paper.Authors = append(paper.Authors, strings.TrimSpace(a.Text()))
	})

	// Primary subject first, then any secondary codes, deduplicated in
	// first-seen order.
	if subjects := doc.Find(".tablecell.subjects").First(); subjects.Length() > 0 {
		subjects.Find("span.primary-subject").Each(func(_ int, span *goquery.Selection) {
			if m := primarySubjectPattern.FindStringSubmatch(span.Text()); m != nil {
				paper.Categories = appendUnique(paper.Categories, m[1])
			}
		})
		for _, m := range subjectCodePattern.FindAllStringSubmatch(subjects.Text(), -1) {
			paper.Categories = appendUnique(paper.Categories, m[1])
		}
	}

	if m := datelinePattern.FindStringSubmatch(doc.Find(".dateline").First().Text()); m != nil {
		paper.DatePublished = m[1]
	}

	return paper, nil
}
