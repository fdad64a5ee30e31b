package sheet

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// authorize reads the service-account key file and returns an HTTP client
// that authenticates as that account. The credential is scoped to this
// call chain and not retained beyond the run.
func authorize(ctx context.Context, credentials string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, fmt.Errorf("%w: reading credentials %s: %v", ErrAuth, credentials, err)
	}

	cfg, err := google.JWTConfigFromJSON(b, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing credentials %s: %v", ErrAuth, credentials, err)
	}

	return cfg.Client(ctx), nil
}
