// Package config builds the per-run settings from the environment,
// optionally seeded from a .env file alongside the binary.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalid is returned when a required setting is missing or malformed.
var ErrInvalid = errors.New("invalid configuration")

// Defaults for the optional settings.
const (
	DefaultCredentials = "service_account.json"
	DefaultTab         = "Overdue aging"
	DefaultCSVDir      = "incoming_csv"
	DefaultOrigin      = "A1"
)

var originPattern = regexp.MustCompile(`^[A-Za-z]+[1-9][0-9]*$`)

// RunConfig is the read-only configuration for a single run.
type RunConfig struct {
	// Credentials is the path of the service-account JSON key.
	Credentials string

	// SpreadsheetID identifies the target Google Sheets spreadsheet.
	SpreadsheetID string

	// Tab is the worksheet written to, created if missing.
	Tab string

	// CSVDir is the folder watched for QuickBooks exports.
	CSVDir string

	// Origin is the top-left cell of the target range, e.g. "A1".
	Origin string
}

// Load reads the environment (after best-effort loading of .env) and
// validates the result. The variable names follow the ones the report
// scripts have always used.
func Load() (RunConfig, error) {
	// A missing .env is fine - the scheduler may set the environment itself.
	godotenv.Load()

	cfg := RunConfig{
		Credentials:   getenv("GOOGLE_CREDENTIALS", DefaultCredentials),
		SpreadsheetID: strings.TrimSpace(os.Getenv("GOOGLE_SHEET_ID")),
		Tab:           getenv("AGING_TAB", DefaultTab),
		CSVDir:        getenv("AGING_CSV_DIR", DefaultCSVDir),
		Origin:        getenv("AGING_ORIGIN", DefaultOrigin),
	}

	return cfg, cfg.Validate()
}

// Validate checks the required settings before any I/O happens.
func (c RunConfig) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("%w: GOOGLE_SHEET_ID is required", ErrInvalid)
	}

	if c.Credentials == "" {
		return fmt.Errorf("%w: GOOGLE_CREDENTIALS must not be blank", ErrInvalid)
	}

	if c.Tab == "" {
		return fmt.Errorf("%w: AGING_TAB must not be blank", ErrInvalid)
	}

	if c.CSVDir == "" {
		return fmt.Errorf("%w: AGING_CSV_DIR must not be blank", ErrInvalid)
	}

	if !originPattern.MatchString(c.Origin) {
		return fmt.Errorf("%w: AGING_ORIGIN '%s' is not a cell reference", ErrInvalid, c.Origin)
	}

	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
