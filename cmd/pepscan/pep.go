package main

import (
	"github.com/spf13/cobra"

	"github.com/pepscan/pepscan/internal/scan"
)

// NewPEPCmd creates the pep command.
func NewPEPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pep",
		Short: "Aggregate PEP counts by status",
		Long: `pep visits every PEP detail page linked from the numerical index,
reads each PEP's status, and prints how many PEPs carry each status plus
a final total.

Statuses not present in the expected-status registry are logged together
with the accepted set and excluded from the table and the total.

The full index is several hundred pages; the response cache makes repeat
runs fast. Use --verbose to watch per-page progress.

Examples:
  pepscan pep
  pepscan pep -o file
  pepscan pep --clear-cache -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMode(cmd, "pep", scan.PEP)
		},
	}
}
