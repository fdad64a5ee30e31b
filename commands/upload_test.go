package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arledger/aging-sheets/aging"
	"github.com/arledger/aging-sheets/config"
	"github.com/arledger/aging-sheets/sheet"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{nil, 0},
		{config.ErrInvalid, 1},
		{aging.ErrNoInput, 2},
		{aging.ErrMalformed, 3},
		{sheet.ErrAuth, 4},
		{sheet.ErrRemote, 5},
		{errors.New("something else"), 1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.code, ExitCode(tc.err), "error %v", tc.err)
	}
}

func TestRoot_DryRun(t *testing.T) {
	dir := t.TempDir()
	csv := "Customer,Current,1 - 30,31 - 60,61 - 90,> 90,Total\nAcme Co,100,50,0,0,0,150\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aging.csv"), []byte(csv), 0o644))

	t.Setenv("GOOGLE_SHEET_ID", "sheet123")
	t.Setenv("AGING_CSV_DIR", dir)

	root := NewRootCommand()
	root.SetArgs([]string{"--dry-run"})

	assert.NoError(t, root.ExecuteContext(context.Background()))
}

func TestRoot_MissingConfiguration(t *testing.T) {
	t.Setenv("GOOGLE_SHEET_ID", "")

	root := NewRootCommand()
	root.SetArgs([]string{"--dry-run"})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRoot_EmptyInputFolder(t *testing.T) {
	t.Setenv("GOOGLE_SHEET_ID", "sheet123")
	t.Setenv("AGING_CSV_DIR", t.TempDir())

	root := NewRootCommand()
	root.SetArgs([]string{"--dry-run"})

	err := root.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, aging.ErrNoInput)
}

func TestUploadSubcommand_DryRun(t *testing.T) {
	dir := t.TempDir()
	csv := "Customer,Due Date,Balance\nAcme Co,01/15/2026,100.00\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoices.csv"), []byte(csv), 0o644))

	t.Setenv("GOOGLE_SHEET_ID", "sheet123")
	t.Setenv("AGING_CSV_DIR", dir)

	root := NewRootCommand()
	root.SetArgs([]string{"upload", "--dry-run"})

	assert.NoError(t, root.ExecuteContext(context.Background()))
}
