package aging

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2026, time.August, 24, 12, 0, 0, 0, time.Local)

func TestDetailParser_Parse(t *testing.T) {
	data, err := os.ReadFile("testdata/invoices.csv")
	require.NoError(t, err)

	p := &DetailParser{AsOf: asOf}
	records, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Acme Co: 25 days overdue and not-yet-due
	acme := records[0]
	assert.Equal(t, "Acme Co", acme.Name)
	assert.Equal(t, "50.00", acme.Current.StringFixed(2))
	assert.Equal(t, "100.00", acme.Days30.StringFixed(2))
	assert.Equal(t, "150.00", acme.Total.StringFixed(2))

	// Globex: 55 and 115 days overdue
	globex := records[1]
	assert.Equal(t, "Globex Corporation", globex.Name)
	assert.Equal(t, "250.50", globex.Days60.StringFixed(2))
	assert.Equal(t, "125.25", globex.Over90.StringFixed(2))
	assert.Equal(t, "375.75", globex.Total.StringFixed(2))

	// Initech: 75 days overdue and not-yet-due
	initech := records[2]
	assert.Equal(t, "Initech", initech.Name)
	assert.Equal(t, "75.00", initech.Current.StringFixed(2))
	assert.Equal(t, "25.00", initech.Days90.StringFixed(2))
	assert.Equal(t, "100.00", initech.Total.StringFixed(2))
}

func TestDetailParser_SkipsZeroBalances(t *testing.T) {
	data, err := os.ReadFile("testdata/invoices.csv")
	require.NoError(t, err)

	p := &DetailParser{AsOf: asOf}
	records, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	for _, r := range records {
		assert.NotEqual(t, "Wile E Supplies", r.Name)
	}
}

func TestDetailParser_BucketBoundaries(t *testing.T) {
	tests := []struct {
		due    string
		bucket func(r Record) string
	}{
		{"08/24/2026", func(r Record) string { return r.Current.StringFixed(2) }}, // due today
		{"08/23/2026", func(r Record) string { return r.Days30.StringFixed(2) }},  // 1 day
		{"07/25/2026", func(r Record) string { return r.Days30.StringFixed(2) }},  // 30 days
		{"07/24/2026", func(r Record) string { return r.Days60.StringFixed(2) }},  // 31 days
		{"06/25/2026", func(r Record) string { return r.Days60.StringFixed(2) }},  // 60 days
		{"05/26/2026", func(r Record) string { return r.Days90.StringFixed(2) }},  // 90 days
		{"05/25/2026", func(r Record) string { return r.Over90.StringFixed(2) }},  // 91 days
	}

	for _, tc := range tests {
		t.Run(tc.due, func(t *testing.T) {
			csv := "Customer,Due Date,Balance\nAcme Co," + tc.due + ",10.00\n"

			p := &DetailParser{AsOf: asOf}
			records, err := p.Parse(strings.NewReader(csv))
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, "10.00", tc.bucket(records[0]))
		})
	}
}

func TestDetailParser_BadDate(t *testing.T) {
	csv := "Customer,Due Date,Balance\nAcme Co,NOTADATE,10.00\n"

	p := &DetailParser{AsOf: asOf}
	_, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "due date")
}

func TestDetailParser_BadBalance(t *testing.T) {
	csv := "Customer,Due Date,Balance\nAcme Co,08/01/2026,NOTANUMBER\n"

	p := &DetailParser{AsOf: asOf}
	_, err := p.Parse(strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDetailParser_DuplicateColumn(t *testing.T) {
	csv := "Customer,Due Date,Due Date,Balance\nAcme Co,08/01/2026,08/01/2026,10.00\n"

	p := &DetailParser{AsOf: asOf}
	_, err := p.Parse(strings.NewReader(csv))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDetailParser_SortedByName(t *testing.T) {
	csv := "Customer,Due Date,Balance\n" +
		"Zebra Ltd,08/01/2026,10.00\n" +
		"Acme Co,08/01/2026,20.00\n"

	p := &DetailParser{AsOf: asOf}
	records, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Acme Co", records[0].Name)
	assert.Equal(t, "Zebra Ltd", records[1].Name)
}
