// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// FormatJSON writes v as indented JSON to w.
func FormatJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatYAML writes v as YAML to w.
func FormatYAML(v any, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

// FormatPapersTable writes papers as a human-readable table to w.
func FormatPapersTable(papers []types.Paper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-12s  %-60s  %-24s  %s\n", "ID", "Title", "Authors", "Categories")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, p := range papers {
		fmt.Fprintf(w, "%-12s  %-60s  %-24s  %s\n",
			p.ID, truncate(p.Title, 60), formatAuthors(p.Authors), strings.Join(p.Categories, ","))
	}

	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// FormatCategoriesTable writes the category table to w, grouped the way
// Categories() orders them.
func FormatCategoriesTable(cats []types.Category, w io.Writer) {
	fmt.Fprintf(w, "%-10s  %-45s  %s\n", "Code", "Name", "Group")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, c := range cats {
		fmt.Fprintf(w, "%-10s  %-45s  %s\n", c.Code, c.Name, c.Group)
	}
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 24)
	default:
		return truncate(authors[0], 18) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
