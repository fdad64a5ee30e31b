package aging

import "errors"

var (
	// ErrNoInput is returned when the watched folder has no CSV file to process.
	ErrNoInput = errors.New("no CSV file found")

	// ErrMalformed is returned when the input CSV has the wrong structure or
	// an unparseable value. One bad row fails the whole run.
	ErrMalformed = errors.New("malformed CSV")
)
