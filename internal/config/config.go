package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// URL defaults point at the live Python documentation sites; everything else
// is chosen to be safe for a polite, sequential scraper.
const (
	// DefaultBaseDocURL is the root of the Python 3 documentation.
	// All whats-new, latest-versions, and download fetches resolve
	// relative links against this URL.
	DefaultBaseDocURL = "https://docs.python.org/3/"

	// DefaultPEPIndexURL is the root of the PEP index site.
	// PEP detail links are resolved against this URL.
	DefaultPEPIndexURL = "https://peps.python.org/"

	// DefaultTimeout is the per-request HTTP timeout. The documentation
	// sites are fast CDN-backed hosts, so 30 seconds is generous.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies pepscan in HTTP requests.
	// A descriptive User-Agent lets site operators identify scraper traffic.
	DefaultUserAgent = "pepscan/1.0 (+https://github.com/pepscan/pepscan)"

	// DefaultMaxBodySize limits the maximum response body size to read.
	// 20MB covers the PDF documentation archive while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 20 * 1024 * 1024 // 20MB

	// DefaultResultsDir is where CSV output files are written,
	// relative to the working directory.
	DefaultResultsDir = "results"

	// DefaultDownloadsDir is where downloaded archives are written,
	// relative to the working directory.
	DefaultDownloadsDir = "downloads"

	// AppName is the application name used for XDG directory paths.
	AppName = "pepscan"
)

// Output mode values accepted by the --output flag.
const (
	// OutputPlain prints rows to stdout as tab-separated text. Default.
	OutputPlain = ""

	// OutputPretty renders a bordered table to stdout.
	OutputPretty = "pretty"

	// OutputFile writes a CSV file to the results directory.
	OutputFile = "file"
)

// Config holds all configuration options for one pepscan run.
// It is populated from defaults, the optional .pepscan file, and CLI flags,
// then passed through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., FetchConfig, OutputConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without benefit.
type Config struct {
	// BaseDocURL is the root documentation URL. The whats-new,
	// latest-versions, and download modes fetch pages under it.
	BaseDocURL string

	// PEPIndexURL is the PEP index URL used by the pep mode.
	PEPIndexURL string

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// Timeout is the HTTP timeout applied to each individual request.
	Timeout time.Duration

	// MaxBodySize is the maximum response body size in bytes to read.
	// Responses larger than this are truncated.
	MaxBodySize int64

	// CacheDir is the directory holding the sqlite response cache.
	// Defaults to the XDG cache directory for pepscan.
	CacheDir string

	// ResultsDir is the directory CSV output files are written to.
	ResultsDir string

	// DownloadsDir is the directory downloaded archives are written to.
	DownloadsDir string

	// Output selects the sink for accumulated rows: OutputPlain,
	// OutputPretty, or OutputFile.
	Output string

	// ClearCache drops all cached responses before the run starts.
	ClearCache bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, info and above are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .pepscan in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// ExpectedStatus is the allow-list of raw PEP status strings used by
	// the pep mode to validate extracted statuses. Loaded once, never
	// mutated.
	ExpectedStatus ExpectedStatus
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because most defaults are non-zero (URLs, timeout, limits).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		BaseDocURL:     DefaultBaseDocURL,
		PEPIndexURL:    DefaultPEPIndexURL,
		UserAgent:      DefaultUserAgent,
		Timeout:        DefaultTimeout,
		MaxBodySize:    DefaultMaxBodySize,
		CacheDir:       XDGCacheDir(),
		ResultsDir:     DefaultResultsDir,
		DownloadsDir:   DefaultDownloadsDir,
		ExpectedStatus: DefaultExpectedStatus(),
	}
}

// Validate checks the configuration for invalid values.
// It returns the first problem found as a sentinel error suitable
// for errors.Is checks.
func (c *Config) Validate() error {
	if c.BaseDocURL == "" {
		return ErrNoBaseURL
	}
	if c.PEPIndexURL == "" {
		return ErrNoPEPURL
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	switch c.Output {
	case OutputPlain, OutputPretty, OutputFile:
	default:
		return ErrInvalidOutputMode
	}
	return nil
}

// XDGCacheDir returns the XDG cache directory for pepscan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.cache/pepscan
// On macOS: ~/Library/Caches/pepscan
// On Windows: %LOCALAPPDATA%\cache\pepscan
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}
