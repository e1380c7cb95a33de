package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".pepscan"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .pepscan configuration file.
// Every field is optional; unset fields leave the built-in defaults intact.
type File struct {
	// BaseURL overrides the root documentation URL.
	BaseURL string `yaml:"base_url,omitempty"`

	// PEPURL overrides the PEP index URL.
	PEPURL string `yaml:"pep_url,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Timeout overrides the per-request HTTP timeout.
	// Uses Go duration syntax (e.g. "30s", "2m").
	Timeout string `yaml:"timeout,omitempty"`

	// MaxBodySize overrides the maximum response body size in bytes.
	MaxBodySize int64 `yaml:"max_body_size,omitempty"`

	// CacheDir overrides the response cache directory.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// ResultsDir overrides the CSV output directory.
	ResultsDir string `yaml:"results_dir,omitempty"`

	// DownloadsDir overrides the archive download directory.
	DownloadsDir string `yaml:"downloads_dir,omitempty"`
}

// Apply copies every non-zero field of the file onto the config.
// It returns an error if the timeout cannot be parsed as a duration.
//
// Design decision: yaml.v3 does not decode time.Duration from strings
// like "30s", so the file stores the duration as text and Apply parses it.
func (f *File) Apply(cfg *Config) error {
	if f.BaseURL != "" {
		cfg.BaseDocURL = f.BaseURL
	}
	if f.PEPURL != "" {
		cfg.PEPIndexURL = f.PEPURL
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config file: %w", f.Timeout, err)
		}
		cfg.Timeout = d
	}
	if f.MaxBodySize != 0 {
		cfg.MaxBodySize = f.MaxBodySize
	}
	if f.CacheDir != "" {
		cfg.CacheDir = f.CacheDir
	}
	if f.ResultsDir != "" {
		cfg.ResultsDir = f.ResultsDir
	}
	if f.DownloadsDir != "" {
		cfg.DownloadsDir = f.DownloadsDir
	}
	return nil
}

// LoadConfigFile loads overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .pepscan in the current directory
// 3. Look for .pepscan in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
