// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv scrapes arxiv.org HTML pages into structured records.
// The page extractors are pure functions over raw markup; the Client
// holds the fetch adapters that feed them.
package arxiv

import "regexp"

// idPatterns recognize an arXiv identifier, tried in order: abstract-page
// URL, PDF URL, bare "digits.digits" identifier.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`arxiv\.org/abs/(\d+\.\d+)`),
	regexp.MustCompile(`arxiv\.org/pdf/(\d+\.\d+)`),
	regexp.MustCompile(`^(\d+\.\d+)$`),
}

// ExtractID pulls an arXiv identifier out of a raw string, which may be
// a bare ID, an abstract-page URL, or a PDF URL. The second return value
// reports whether an identifier was recognized.
func ExtractID(s string) (string, bool) {
	for _, p := range idPatterns {
		if m := p.FindStringSubmatch(s); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// absURL returns the abstract-page URL for an identifier, or "" for an
// empty identifier.
func absURL(id string) string {
	if id == "" {
		return ""
	}
	return urlBase + "/abs/" + id
}

// pdfURL returns the PDF URL for an identifier, or "" for an empty
// identifier. A record without an identifier never carries a PDF URL.
func pdfURL(id string) string {
	if id == "" {
		return ""
	}
	return urlBase + "/pdf/" + id + ".pdf"
}
