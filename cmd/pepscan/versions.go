package main

import (
	"github.com/spf13/cobra"

	"github.com/pepscan/pepscan/internal/scan"
)

// NewLatestVersionsCmd creates the latest-versions command.
func NewLatestVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest-versions",
		Short: "List every documented Python version with its status",
		Long: `latest-versions reads the sidebar of the main documentation page and
lists every linked Python version. Entries shaped like "Python 3.12
(stable)" are split into version and status; anything else keeps its raw
text as the version with an empty status.

This mode makes exactly one HTTP request.

Examples:
  pepscan latest-versions
  pepscan latest-versions -o pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMode(cmd, "latest-versions", scan.LatestVersions)
		},
	}
}
