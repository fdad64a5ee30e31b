package commands

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arledger/aging-sheets/aging"
	"github.com/arledger/aging-sheets/config"
	"github.com/arledger/aging-sheets/sheet"
)

// uploadOptions are the flags shared by the root command and 'upload'.
type uploadOptions struct {
	file   string
	dryRun bool
}

func addUploadFlags(cmd *cobra.Command, opts *uploadOptions) {
	cmd.Flags().StringVar(&opts.file, "file", "", "CSV file to upload (default: newest CSV in the watched folder)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Parse and map the CSV without writing to the spreadsheet")
}

func newUploadCommand(opts *uploadOptions, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Uploads the newest aging CSV to the configured worksheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd.Context(), *opts, *log)
		},
	}

	addUploadFlags(cmd, opts)

	return cmd
}

// runUpload is the whole pipeline: locate the input, parse it, map the
// records and replace the target range. Any failure aborts the remaining
// stages and propagates to the exit code.
func runUpload(ctx context.Context, opts uploadOptions, log zerolog.Logger) error {
	log = log.With().Str("run", uuid.NewString()).Logger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// ... locate
	path := opts.file
	if path == "" {
		if path, err = aging.NewestCSV(cfg.CSVDir); err != nil {
			return err
		}
	}

	log.Debug().Str("file", path).Msg("input located")

	// ... parse
	records, format, err := aging.DefaultRegistry().ParseFile(path)
	if err != nil {
		return err
	}

	log.Info().
		Str("file", filepath.Base(path)).
		Str("format", format).
		Int("customers", len(records)).
		Msg("parsed aging CSV")

	// ... map
	rows := aging.ToSheetRows(records)

	if opts.dryRun {
		log.Info().Int("rows", len(rows)).Msg("dry run, not writing to spreadsheet")
		return nil
	}

	// ... write
	writer, err := sheet.NewWriter(ctx, cfg, log)
	if err != nil {
		return err
	}

	if err := writer.Replace(ctx, aging.Header(), rows); err != nil {
		return err
	}

	log.Info().
		Str("spreadsheet", cfg.SpreadsheetID).
		Str("tab", cfg.Tab).
		Int("rows", len(rows)).
		Msg("uploaded aging snapshot")

	return nil
}

// ExitCode maps an error to the process exit code, one code per failure
// class so the scheduler can tell them apart.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrInvalid):
		return 1
	case errors.Is(err, aging.ErrNoInput):
		return 2
	case errors.Is(err, aging.ErrMalformed):
		return 3
	case errors.Is(err, sheet.ErrAuth):
		return 4
	case errors.Is(err, sheet.ErrRemote):
		return 5
	default:
		return 1
	}
}
