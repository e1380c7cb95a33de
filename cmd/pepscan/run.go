package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pepscan/pepscan/internal/cache"
	"github.com/pepscan/pepscan/internal/config"
	"github.com/pepscan/pepscan/internal/fetch"
	"github.com/pepscan/pepscan/internal/model"
	"github.com/pepscan/pepscan/internal/output"
)

// modeFunc is one scrape mode: it accumulates rows into a table, or
// returns nil when the mode produced nothing (e.g. the entry page was
// unreachable, or the mode downloads a file instead of rows).
type modeFunc func(ctx context.Context, f *fetch.Fetcher, cfg *config.Config) (*model.Table, error)

// buildConfig creates a Config from the persistent flags and the optional
// .pepscan configuration file. Flag values are applied after the file so
// the command line always wins.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	cfg.ClearCache, err = cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return nil, err
	}
	cfg.Output, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load overrides from the config file.
	// If the user explicitly specified a path, error if it is missing.
	// If no path was specified, silently continue without a file.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, err
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runMode wires configuration, logging, the response cache, and the output
// sink around one scrape mode. Every subcommand funnels through here.
func runMode(cmd *cobra.Command, mode string, fn modeFunc) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Ctrl-C cancels the in-flight fetch and ends the run.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.InfoContext(ctx, "scraper started", "mode", mode)

	f, cleanup, err := newFetcher(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	table, err := fn(ctx, f, cfg)
	if err != nil {
		return err
	}

	if table != nil {
		if err := newWriter(cmd, cfg, mode).Write(table); err != nil {
			return err
		}
	}

	slog.InfoContext(ctx, "scraper finished", "mode", mode)
	return nil
}

// newFetcher opens the response cache and builds the fetcher around it.
// A cache that cannot be opened disables caching for the run instead of
// failing it; clearing a healthy cache is done here when requested.
func newFetcher(ctx context.Context, cfg *config.Config) (*fetch.Fetcher, func(), error) {
	store, err := cache.Open(cfg.CacheDir)
	if err != nil {
		slog.WarnContext(ctx, "response cache unavailable, fetching without it",
			"dir", cfg.CacheDir, "error", err)
		store = nil
	}

	if store != nil && cfg.ClearCache {
		if err := store.Clear(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		slog.InfoContext(ctx, "response cache cleared", "path", store.Path())
	}

	cleanup := func() {
		if store != nil {
			_ = store.Close()
		}
	}

	f := fetch.New(store,
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	)
	return f, cleanup, nil
}

// newWriter selects the output sink for the run based on --output.
func newWriter(cmd *cobra.Command, cfg *config.Config, mode string) output.Writer {
	switch cfg.Output {
	case config.OutputPretty:
		return output.NewPrettyWriter(cmd.OutOrStdout())
	case config.OutputFile:
		return output.NewCSVWriter(cfg.ResultsDir, mode)
	default:
		return output.NewPlainWriter(cmd.OutOrStdout())
	}
}
