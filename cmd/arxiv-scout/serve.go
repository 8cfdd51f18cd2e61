// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the arXiv tools over stdio",
	Long: `Serve runs the MCP stdio tool-call channel until the host closes it.
The hosting transport dispatches calls to the search, getPaper,
getContent, listCategories, and getRecent tools; each call performs one
blocking page fetch and returns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := mcpserver.New(newClient(), version)
		return mcpserver.ServeStdio(s)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
