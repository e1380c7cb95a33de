package output

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pepscan/pepscan/internal/model"
)

// timestampLayout names result files down to the second, which keeps
// files from successive runs distinct without colliding characters
// that are invalid on Windows.
const timestampLayout = "2006-01-02_15-04-05"

// CSVWriter writes tables as CSV files into the results directory.
// Files are named "<mode>_<timestamp>.csv" so successive runs never
// overwrite each other.
type CSVWriter struct {
	// dir is the results directory, created on first write.
	dir string

	// mode is the scrape mode name used in the file name.
	mode string

	// now supplies the timestamp; replaceable in tests.
	now func() time.Time

	// path is the most recently written file.
	path string
}

// NewCSVWriter creates a CSVWriter for the given results directory and mode.
func NewCSVWriter(dir, mode string) *CSVWriter {
	return &CSVWriter{
		dir:  dir,
		mode: mode,
		now:  time.Now,
	}
}

// Write stores the table as a CSV file and logs its path.
func (w *CSVWriter) Write(table *model.Table) error {
	if err := os.MkdirAll(w.dir, 0750); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.csv", w.mode, w.now().Format(timestampLayout))
	path := filepath.Join(w.dir, name)

	file, err := os.Create(path) //nolint:gosec // Path is built from config, not user input
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	w.path = path
	slog.Info("results saved", "path", path)
	return nil
}

// Path returns the most recently written file path, or empty if nothing
// has been written yet.
func (w *CSVWriter) Path() string {
	return w.path
}
