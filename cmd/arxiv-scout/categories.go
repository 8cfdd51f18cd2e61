// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the known arXiv categories",
	Long: `Categories prints the built-in category table sorted by group and code.
The table is a build-time constant; no network call is made.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cats := arxiv.Categories()
		return writeOutput(cmd, cats, func(w io.Writer) {
			arxiv.FormatCategoriesTable(cats, w)
		})
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
