package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pepscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pepscan",
		Short: "Scraper for Python documentation and PEP metadata",
		Long: `pepscan crawls a fixed set of pages on the Python documentation sites
and extracts structured records:

  whats-new        authors and editors of "What's New in Python" articles
  latest-versions  every documented Python version with its status
  download         the PDF documentation archive
  pep              PEP counts aggregated by status

Successful responses are cached on disk, so repeat runs against the same
pages avoid the network until the cache is cleared with --clear-cache.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all scrape modes
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolP("clear-cache", "c", false, "Clear the response cache before the run")
	cmd.PersistentFlags().StringP("output", "o", "",
		`Output mode: "pretty" (console table) or "file" (CSV in the results directory)`)
	cmd.PersistentFlags().String("config", "",
		"Configuration file path (default: .pepscan in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewWhatsNewCmd())
	cmd.AddCommand(NewLatestVersionsCmd())
	cmd.AddCommand(NewDownloadCmd())
	cmd.AddCommand(NewPEPCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
