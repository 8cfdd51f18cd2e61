// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-scout CLI. Every tool of
// the stdio server is also exposed as a subcommand: search, paper,
// content, recent, and categories. The serve subcommand runs the MCP
// stdio channel for the process lifetime.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the arxiv-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-scout",
	Short: "Query and fetch arXiv papers from the public HTML pages",
	Long: `arxiv-scout turns arXiv's public HTML pages into structured paper records.
It scrapes the search, abstract, and recent-listing pages directly, so it
covers the same surface a browser sees.

Run it as a one-shot CLI (search, paper, content, recent, categories) or
as a stdio tool-call server for an agent host (serve).`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-scout.yaml or ~/.config/arxiv-scout/config.yaml)")
	rootCmd.PersistentFlags().String("format", "table", "output format: table, json, or yaml")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-scout"))
		}
	}

	viper.SetEnvPrefix("ARXIV_SCOUT")
	viper.AutomaticEnv()

	viper.SetDefault("http.timeout", arxiv.DefaultTimeout)
	viper.SetDefault("http.user_agent", "arxiv-scout/"+version)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newClient builds the shared fetch client from the resolved config.
func newClient() *arxiv.Client {
	return arxiv.New(types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
	})
}

// writeOutput renders v per the --format flag, falling back to the
// provided table renderer.
func writeOutput(cmd *cobra.Command, v any, table func(w io.Writer)) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return arxiv.FormatJSON(v, os.Stdout)
	case "yaml":
		return arxiv.FormatYAML(v, os.Stdout)
	case "table", "":
		table(os.Stdout)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json, or yaml)", format)
	}
}

// commandTimeout bounds a one-shot CLI invocation. The HTTP client
// timeout covers the request itself; this is a safety margin on top.
const commandTimeout = 5 * time.Minute

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
