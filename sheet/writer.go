// Package sheet writes aging snapshots to a Google Sheets worksheet,
// authenticating with a service-account credential.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/arledger/aging-sheets/config"
)

var (
	// ErrAuth is returned when the credential is rejected or lacks access.
	ErrAuth = errors.New("authentication failed")

	// ErrRemote is returned when the spreadsheet service rejects a call.
	ErrRemote = errors.New("spreadsheet service error")
)

// retryDelay is the pause before the single retry of a failed write.
const retryDelay = 10 * time.Second

// Writer replaces a rectangular range of a worksheet with a fresh
// snapshot. It is the sole expected writer of its target range.
type Writer struct {
	svc           *sheets.Service
	spreadsheetID string
	tab           string
	origin        cell
	delay         time.Duration
	log           zerolog.Logger
}

// NewWriter authorizes against the Sheets API and returns a Writer for
// the configured spreadsheet. Extra client options override the default
// service-account transport (used by tests to point at a stub server).
func NewWriter(ctx context.Context, cfg config.RunConfig, log zerolog.Logger, opts ...option.ClientOption) (*Writer, error) {
	origin, err := parseCell(cfg.Origin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}

	if len(opts) == 0 {
		client, err := authorize(ctx, cfg.Credentials)
		if err != nil {
			return nil, err
		}

		opts = []option.ClientOption{option.WithHTTPClient(client)}
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: creating Sheets client: %v", ErrRemote, err)
	}

	return &Writer{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		tab:           cfg.Tab,
		origin:        origin,
		delay:         retryDelay,
		log:           log,
	}, nil
}

// Replace overwrites the target range with the header and data rows:
// ensure the worksheet exists, clear the previous snapshot, then write
// the new one. With no data rows only the header is written.
func (w *Writer) Replace(ctx context.Context, header []any, rows [][]any) error {
	spreadsheet, err := w.svc.Spreadsheets.Get(w.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return wrap("fetching spreadsheet", err)
	}

	if err := w.ensureTab(ctx, spreadsheet); err != nil {
		return err
	}

	if err := w.clear(ctx, len(header)); err != nil {
		return err
	}

	return w.update(ctx, header, rows)
}

// ensureTab creates the target worksheet when the spreadsheet does not
// have it. The lookup ignores case and surrounding whitespace.
func (w *Writer) ensureTab(ctx context.Context, spreadsheet *sheets.Spreadsheet) error {
	for _, s := range spreadsheet.Sheets {
		if strings.EqualFold(strings.TrimSpace(s.Properties.Title), strings.TrimSpace(w.tab)) {
			return nil
		}
	}

	w.log.Info().Str("tab", w.tab).Msg("worksheet not found, creating it")

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: w.tab,
					},
				},
			},
		},
	}

	if _, err := w.svc.Spreadsheets.BatchUpdate(w.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return wrap("creating worksheet", err)
	}

	return nil
}

func (w *Writer) clear(ctx context.Context, width int) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: []string{clearRange(w.tab, w.origin, width)},
	}

	if _, err := w.svc.Spreadsheets.Values.BatchClear(w.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return wrap("clearing range", err)
	}

	return nil
}

func (w *Writer) update(ctx context.Context, header []any, rows [][]any) error {
	data := []*sheets.ValueRange{
		{
			Range:  headerRange(w.tab, w.origin, len(header)),
			Values: [][]any{header},
		},
	}

	if len(rows) > 0 {
		data = append(data, &sheets.ValueRange{
			Range:  dataRange(w.tab, w.origin, len(header), len(rows)),
			Values: rows,
		})
	}

	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}

	_, err := w.svc.Spreadsheets.Values.BatchUpdate(w.spreadsheetID, &rq).Context(ctx).Do()
	if err == nil {
		return nil
	}

	if !retriable(err) {
		return wrap("updating values", err)
	}

	// One best-effort retry for rate limits and transient server errors.
	w.log.Warn().Err(err).Dur("delay", w.delay).Msg("write rejected, retrying once")

	select {
	case <-time.After(w.delay):
	case <-ctx.Done():
		return wrap("updating values", ctx.Err())
	}

	if _, err := w.svc.Spreadsheets.Values.BatchUpdate(w.spreadsheetID, &rq).Context(ctx).Do(); err != nil {
		return wrap("updating values", err)
	}

	return nil
}

func wrap(op string, err error) error {
	var apierr *googleapi.Error
	if errors.As(err, &apierr) && (apierr.Code == 401 || apierr.Code == 403) {
		return fmt.Errorf("%w: %s: %v", ErrAuth, op, err)
	}

	return fmt.Errorf("%w: %s: %v", ErrRemote, op, err)
}

func retriable(err error) bool {
	var apierr *googleapi.Error
	return errors.As(err, &apierr) && (apierr.Code == 429 || apierr.Code >= 500)
}
