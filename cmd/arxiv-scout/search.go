// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search arXiv for papers",
	Long: `Search scrapes the arXiv search page for papers matching the query.
Plain searches combine the free-text query with optional author and
category filters. Setting any of --title, --abstract, --id, --from, or
--to switches to the advanced-search form, which requires at least one
filter field.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("author", "", "filter by author name")
	searchCmd.Flags().String("category", "", "filter by arXiv category (e.g. cs.AI)")
	searchCmd.Flags().String("sort-by", "relevance", "sort order: relevance, date_desc, date_asc, submissions_desc, submissions_asc")
	searchCmd.Flags().Int("page", 1, "page number")
	searchCmd.Flags().Int("page-size", 25, "results per page (max 50)")

	searchCmd.Flags().String("title", "", "advanced: search in paper titles")
	searchCmd.Flags().String("abstract", "", "advanced: search in abstracts")
	searchCmd.Flags().String("id", "", "advanced: search by arXiv ID pattern")
	searchCmd.Flags().String("from", "", "advanced: start date filter (YYYY-MM-DD)")
	searchCmd.Flags().String("to", "", "advanced: end date filter (YYYY-MM-DD)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	var query string
	if len(args) > 0 {
		query = args[0]
	}

	author, _ := cmd.Flags().GetString("author")
	category, _ := cmd.Flags().GetString("category")
	sortBy, _ := cmd.Flags().GetString("sort-by")
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	title, _ := cmd.Flags().GetString("title")
	abstract, _ := cmd.Flags().GetString("abstract")
	id, _ := cmd.Flags().GetString("id")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	client := newClient()

	var result *types.SearchResult
	var err error
	if title != "" || abstract != "" || id != "" || from != "" || to != "" {
		result, err = client.SearchAdvanced(ctx, arxiv.AdvancedParams{
			Title:    title,
			Abstract: abstract,
			Author:   author,
			Category: category,
			ID:       id,
			DateFrom: from,
			DateTo:   to,
			SortBy:   sortBy,
			Page:     page,
			PageSize: pageSize,
		})
	} else {
		result, err = client.Search(ctx, arxiv.SearchParams{
			Query:    query,
			Category: category,
			Author:   author,
			SortBy:   sortBy,
			Page:     page,
			PageSize: pageSize,
		})
	}
	if err != nil {
		return err
	}

	return writeOutput(cmd, result, func(w io.Writer) {
		arxiv.FormatPapersTable(result.Papers, w)
	})
}
