package aging

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/shopspring/decimal"
)

// SummaryParser reads a QuickBooks A/R Aging Summary export: one row per
// customer with the balance already split across the aging buckets.
//
//	Customer,Current,1 - 30,31 - 60,61 - 90,> 90,Total
type SummaryParser struct{}

type summaryRow struct {
	Customer string          `csv:"Customer"`
	Current  decimal.Decimal `csv:"Current"`
	Days30   decimal.Decimal `csv:"1 - 30"`
	Days60   decimal.Decimal `csv:"31 - 60"`
	Days90   decimal.Decimal `csv:"61 - 90"`
	Over90   decimal.Decimal `csv:"> 90"`
	Total    decimal.Decimal `csv:"Total"`
}

// Format returns the parser name.
func (p *SummaryParser) Format() string { return "summary" }

// Matches reports whether the header looks like an aging summary.
func (p *SummaryParser) Matches(header []string) bool {
	return contains(header, "customer") && contains(header, "current") && contains(header, "total")
}

// Parse decodes the summary CSV. The stated total of every row must equal
// the sum of its buckets - a mismatch means the export is corrupt and
// fails the run rather than publishing bad numbers.
func (p *SummaryParser) Parse(r io.Reader) ([]Record, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	dec.DisallowMissingColumns = true

	records := []Record{}
	line := 1

	for {
		row := summaryRow{}

		if err := dec.Decode(&row); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, line+1, err)
		}

		line++

		record := Record{
			Name:    row.Customer,
			Current: row.Current,
			Days30:  row.Days30,
			Days60:  row.Days60,
			Days90:  row.Days90,
			Over90:  row.Over90,
			Total:   row.Total,
		}

		if !record.Sum().Equal(record.Total) {
			return nil, fmt.Errorf("%w: row %d: buckets sum to %s but total is %s",
				ErrMalformed, line, record.Sum(), record.Total)
		}

		records = append(records, record)
	}

	return records, nil
}
