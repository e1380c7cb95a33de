package main

import (
	"github.com/spf13/cobra"

	"github.com/pepscan/pepscan/internal/scan"
)

// NewWhatsNewCmd creates the whats-new command.
func NewWhatsNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whats-new",
		Short: `Collect authors and editors of "What's New in Python" articles`,
		Long: `whats-new fetches the "What's New in Python" overview page, follows
every per-version article listed there, and extracts each article's title
and its authors/editors block.

Articles that fail to fetch are skipped; the remaining articles still
produce rows.

Examples:
  # Print one row per article
  pepscan whats-new

  # Render a console table
  pepscan whats-new -o pretty

  # Write a CSV file into the results directory
  pepscan whats-new -o file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMode(cmd, "whats-new", scan.WhatsNew)
		},
	}
}
