package aging

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// quickbooksDateFormat is the MM/DD/YYYY format QuickBooks uses in exports.
const quickbooksDateFormat = "01/02/2006"

// DetailParser reads an invoice-level QuickBooks export ('Customer',
// 'Due Date', 'Balance', other columns ignored), ages each open balance
// against AsOf and aggregates the buckets per customer.
type DetailParser struct {
	// AsOf is the date invoices are aged against. Zero means today.
	AsOf time.Time
}

// Format returns the parser name.
func (p *DetailParser) Format() string { return "detail" }

// Matches reports whether the header looks like an invoice-level export.
func (p *DetailParser) Matches(header []string) bool {
	return contains(header, "customer") && contains(header, "duedate") && contains(header, "balance")
}

// Parse reads the detail CSV and returns one Record per customer, sorted
// by name. Zero balances are dropped; a bad date or amount fails the run.
func (p *DetailParser) Parse(r io.Reader) ([]Record, error) {
	asOf := p.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrMalformed)
	}

	// .. build index
	index := map[string]int{}
	for i, v := range rows[0] {
		k := normalise(v)
		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("%w: duplicate column name '%s'", ErrMalformed, v)
		}

		index[k] = i
	}

	byName := map[string]*Record{}

	for i, row := range rows[1:] {
		name := row[index["customer"]]

		due, err := time.ParseInLocation(quickbooksDateFormat, row[index["duedate"]], time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid due date '%s'", ErrMalformed, i+2, row[index["duedate"]])
		}

		balance, err := decimal.NewFromString(row[index["balance"]])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid balance '%s'", ErrMalformed, i+2, row[index["balance"]])
		}

		if balance.IsZero() {
			continue
		}

		record, ok := byName[name]
		if !ok {
			record = &Record{Name: name}
			byName[name] = record
		}

		switch days := daysOverdue(asOf, due); {
		case days <= 0:
			record.Current = record.Current.Add(balance)
		case days <= 30:
			record.Days30 = record.Days30.Add(balance)
		case days <= 60:
			record.Days60 = record.Days60.Add(balance)
		case days <= 90:
			record.Days90 = record.Days90.Add(balance)
		default:
			record.Over90 = record.Over90.Add(balance)
		}
	}

	records := make([]Record, 0, len(byName))
	for _, record := range byName {
		record.Total = record.Sum()
		records = append(records, *record)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })

	return records, nil
}

// daysOverdue is the number of whole calendar days between the due date
// and the as-of date, ignoring time of day.
func daysOverdue(asOf, due time.Time) int {
	a := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)

	return int(a.Sub(d).Hours() / 24)
}
