package aging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// NewestCSV returns the path of the most recently modified .csv file in
// dir. The extension match is case-insensitive and subdirectories are not
// descended into. Returns ErrNoInput when the folder is missing, empty or
// holds no CSV files.
func NewestCSV(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w in %s", ErrNoInput, dir)
		}
		return "", fmt.Errorf("reading input dir: %w", err)
	}

	newest := ""
	modified := time.Time{}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}

		info, err := e.Info()
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", e.Name(), err)
		}

		if newest == "" || info.ModTime().After(modified) {
			newest = filepath.Join(dir, e.Name())
			modified = info.ModTime()
		}
	}

	if newest == "" {
		return "", fmt.Errorf("%w in %s", ErrNoInput, dir)
	}

	return newest, nil
}
