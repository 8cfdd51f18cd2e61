// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

var paperCmd = &cobra.Command{
	Use:   "paper <id-or-url>",
	Short: "Get detailed information about one paper",
	Long: `Paper resolves an arXiv identifier from a bare ID, an abstract-page URL,
or a PDF URL, fetches the abstract page, and prints the extracted record.`,
	Args: cobra.ExactArgs(1),
	RunE: runPaper,
}

func init() {
	rootCmd.AddCommand(paperCmd)
}

func runPaper(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	paper, err := newClient().Paper(ctx, args[0])
	if err != nil {
		return err
	}

	return writeOutput(cmd, paper, func(w io.Writer) {
		printPaper(paper, w)
	})
}

func printPaper(p *types.Paper, w io.Writer) {
	fmt.Fprintf(w, "ID:         %s\n", p.ID)
	fmt.Fprintf(w, "Title:      %s\n", p.Title)
	fmt.Fprintf(w, "Authors:    %s\n", strings.Join(p.Authors, ", "))
	fmt.Fprintf(w, "Categories: %s\n", strings.Join(p.Categories, ", "))
	if p.DatePublished != "" {
		fmt.Fprintf(w, "Submitted:  %s\n", p.DatePublished)
	}
	fmt.Fprintf(w, "Abstract:   %s\n", p.Abstract)
	fmt.Fprintf(w, "URL:        %s\n", p.URLAbstract)
	fmt.Fprintf(w, "PDF:        %s\n", p.URLPDF)
}
