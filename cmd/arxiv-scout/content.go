// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content <id-or-url>",
	Short: "Fetch the full rendered text of a paper",
	Long: `Content retrieves the paper's rendered plain-text/markdown through the
external rendering proxy and writes it verbatim to stdout. No local
parsing is applied, so --format has no effect here.`,
	Args: cobra.ExactArgs(1),
	RunE: runContent,
}

func init() {
	rootCmd.AddCommand(contentCmd)
}

func runContent(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	text, err := newClient().Content(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, text)
	return nil
}
