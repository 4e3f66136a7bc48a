package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cryptotable/internal/coinmarketcap/table"
)

// Exporter writes a finished table to path, replacing any existing file.
type Exporter interface {
	Export(path string, t table.Table) error
}

// ForPath returns the CSV exporter for ".csv" paths and the XLSX exporter otherwise.
func ForPath(path, sheet string) Exporter {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return CSV{}
	}
	return XLSX{Sheet: sheet}
}

// writeAtomic streams into a temp file next to path and renames it over path,
// so a failed export leaves no partial file behind.
func writeAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".cryptotable-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
