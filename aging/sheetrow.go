package aging

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SheetColumns is the fixed number of cells per sheet row.
const SheetColumns = 7

// Header returns the header row written at the top of the target range.
func Header() []any {
	header := make([]any, 0, SheetColumns)
	header = append(header, "Customer")
	for _, bucket := range Buckets {
		header = append(header, bucket)
	}

	return append(header, "Total")
}

// ToSheetRow maps a Record to its sheet representation: the customer name
// followed by the five buckets and the total, amounts rendered with two
// decimal places for USER_ENTERED input.
func ToSheetRow(r Record) []any {
	return []any{
		r.Name,
		r.Current.StringFixed(2),
		r.Days30.StringFixed(2),
		r.Days60.StringFixed(2),
		r.Days90.StringFixed(2),
		r.Over90.StringFixed(2),
		r.Total.StringFixed(2),
	}
}

// ToSheetRows maps records in order.
func ToSheetRows(records []Record) [][]any {
	rows := make([][]any, len(records))
	for i, r := range records {
		rows[i] = ToSheetRow(r)
	}

	return rows
}

// FromSheetRow is the inverse of ToSheetRow.
func FromSheetRow(row []any) (Record, error) {
	if len(row) != SheetColumns {
		return Record{}, fmt.Errorf("%w: expected %d cells, got %d", ErrMalformed, SheetColumns, len(row))
	}

	name, ok := row[0].(string)
	if !ok {
		return Record{}, fmt.Errorf("%w: customer name is not a string", ErrMalformed)
	}

	amounts := make([]decimal.Decimal, 6)
	for i := range amounts {
		s, ok := row[i+1].(string)
		if !ok {
			return Record{}, fmt.Errorf("%w: cell %d is not a string", ErrMalformed, i+1)
		}

		amount, err := decimal.NewFromString(s)
		if err != nil {
			return Record{}, fmt.Errorf("%w: cell %d: %v", ErrMalformed, i+1, err)
		}

		amounts[i] = amount
	}

	return Record{
		Name:    name,
		Current: amounts[0],
		Days30:  amounts[1],
		Days60:  amounts[2],
		Days90:  amounts[3],
		Over90:  amounts[4],
		Total:   amounts[5],
	}, nil
}
