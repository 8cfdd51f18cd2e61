// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
)

var recentCmd = &cobra.Command{
	Use:   "recent [category]",
	Short: "List recent papers in a category",
	Long: `Recent scrapes the category recent-listing page and prints the extracted
papers. Listing records carry no abstract; fetch one with the paper
subcommand.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecent,
}

func init() {
	recentCmd.Flags().Int("count", 10, "number of papers to retrieve (max 50)")

	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	category := "cs.AI"
	if len(args) > 0 {
		category = args[0]
	}
	count, _ := cmd.Flags().GetInt("count")

	listing, err := newClient().Recent(ctx, category, count)
	if err != nil {
		return err
	}

	return writeOutput(cmd, listing, func(w io.Writer) {
		arxiv.FormatPapersTable(listing.Papers, w)
	})
}
