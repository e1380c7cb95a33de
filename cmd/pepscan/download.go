package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pepscan/pepscan/internal/config"
	"github.com/pepscan/pepscan/internal/fetch"
	"github.com/pepscan/pepscan/internal/model"
	"github.com/pepscan/pepscan/internal/scan"
)

// NewDownloadCmd creates the download command.
func NewDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Download the PDF documentation archive",
		Long: `download locates the A4 PDF archive link on the documentation
downloads page, fetches the archive, and writes it into the downloads
directory named after the final segment of the archive URL.

This mode produces no rows; success is the file on disk and a log line
with its path.

Examples:
  pepscan download
  pepscan download --clear-cache`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMode(cmd, "download",
				func(ctx context.Context, f *fetch.Fetcher, cfg *config.Config) (*model.Table, error) {
					return nil, scan.Download(ctx, f, cfg)
				})
		},
	}
}
