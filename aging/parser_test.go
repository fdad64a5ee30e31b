package aging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRegistry_DetectsSummary(t *testing.T) {
	records, format, err := DefaultRegistry().ParseFile("testdata/aging_summary.csv")
	require.NoError(t, err)
	assert.Equal(t, "summary", format)
	assert.Len(t, records, 3)
}

func TestRegistry_DetectsDetail(t *testing.T) {
	_, format, err := DefaultRegistry().ParseFile("testdata/invoices.csv")
	require.NoError(t, err)
	assert.Equal(t, "detail", format)
}

func TestRegistry_UnrecognisedHeader(t *testing.T) {
	path := writeTemp(t, "Name,Phone,Email\nAcme Co,555-0100,ar@acme.example\n")

	_, _, err := DefaultRegistry().ParseFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "unrecognised header")
}

func TestRegistry_EmptyFile(t *testing.T) {
	_, _, err := DefaultRegistry().ParseFile(writeTemp(t, ""))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestRegistry_DuplicateFormatPanics(t *testing.T) {
	g := NewRegistry()
	g.Register(&SummaryParser{})

	assert.Panics(t, func() { g.Register(&SummaryParser{}) })
}
