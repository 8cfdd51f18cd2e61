// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the record shapes returned by the arXiv scraper.
package types

// Paper is a bibliographic record extracted from an arXiv HTML page.
// Listing-derived records carry no abstract; a record whose identifier
// could not be resolved has an empty ID and no PDF URL.
type Paper struct {
	// ID is the arXiv identifier (e.g. "2301.00001"). Empty when the
	// page did not yield a recognizable identifier.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title, whitespace-normalized.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract, whitespace-normalized. Empty for
	// records built from a category listing page.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Authors lists the author names in page order.
	Authors []string `json:"authors" yaml:"authors"`

	// Categories lists the category codes attached to the paper,
	// deduplicated in first-seen order.
	Categories []string `json:"categories" yaml:"categories"`

	// URLAbstract is the abstract-page URL.
	URLAbstract string `json:"url_abstract" yaml:"url_abstract"`

	// URLPDF is the PDF URL, derived from ID. Always empty when ID is empty.
	URLPDF string `json:"url_pdf" yaml:"url_pdf"`

	// DatePublished and DateUpdated are free-form date text captured
	// from the page. Upstream date formats vary, so they are kept
	// opaque rather than parsed into a calendar type.
	DatePublished string `json:"date_published,omitempty" yaml:"date_published,omitempty"`
	DateUpdated   string `json:"date_updated,omitempty" yaml:"date_updated,omitempty"`
}

// SearchResult is one page of search results.
type SearchResult struct {
	// Query echoes the effective query string sent upstream.
	Query string `json:"query" yaml:"query"`

	// TotalResults is the result count parsed from the page header,
	// 0 when the header could not be located.
	TotalResults int `json:"total_results" yaml:"total_results"`

	// Papers holds the extracted records in page order.
	Papers []Paper `json:"papers" yaml:"papers"`

	Page     int `json:"page" yaml:"page"`
	PageSize int `json:"page_size" yaml:"page_size"`
}

// Listing is the result of a category recent-listing fetch.
type Listing struct {
	// Category is the requested category code.
	Category string `json:"category" yaml:"category"`

	// CategoryName is the display name for the category, or the code
	// itself when the code is not in the built-in table.
	CategoryName string `json:"category_name" yaml:"category_name"`

	// Count is the number of papers extracted.
	Count int `json:"count" yaml:"count"`

	Papers []Paper `json:"papers" yaml:"papers"`
}

// Category is one entry of the built-in category reference table.
type Category struct {
	// Code is the category code (e.g. "cs.AI").
	Code string `json:"code" yaml:"code"`

	// Name is the full category name.
	Name string `json:"name" yaml:"name"`

	// Group is the top-level group label (e.g. "Computer Science").
	Group string `json:"group" yaml:"group"`
}
