package sheet

import (
	"fmt"
	"regexp"
	"strings"
)

var cellPattern = regexp.MustCompile(`^([A-Za-z]+)([1-9][0-9]*)$`)
var plainTabPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// cell is a parsed A1-notation cell reference.
type cell struct {
	col string
	row int
}

func parseCell(s string) (cell, error) {
	match := cellPattern.FindStringSubmatch(s)
	if len(match) < 3 {
		return cell{}, fmt.Errorf("invalid cell reference '%s'", s)
	}

	c := cell{col: strings.ToUpper(match[1])}
	fmt.Sscanf(match[2], "%d", &c.row)

	return c, nil
}

// colIndex converts column letters to a 1-based index (A=1, Z=26, AA=27).
func colIndex(col string) int {
	n := 0
	for _, r := range strings.ToUpper(col) {
		n = n*26 + int(r-'A') + 1
	}

	return n
}

// colName is the inverse of colIndex.
func colName(n int) string {
	name := ""
	for n > 0 {
		n--
		name = string(rune('A'+n%26)) + name
		n /= 26
	}

	return name
}

// quoteTab wraps the worksheet name in single quotes when A1 notation
// requires it (spaces or other punctuation in the name).
func quoteTab(tab string) string {
	if plainTabPattern.MatchString(tab) {
		return tab
	}

	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}

// headerRange is the single row at the origin, width columns wide.
func headerRange(tab string, origin cell, width int) string {
	right := colName(colIndex(origin.col) + width - 1)

	return fmt.Sprintf("%s!%s%d:%s%d", quoteTab(tab), origin.col, origin.row, right, origin.row)
}

// dataRange is the block immediately below the header.
func dataRange(tab string, origin cell, width, rows int) string {
	right := colName(colIndex(origin.col) + width - 1)

	return fmt.Sprintf("%s!%s%d:%s%d", quoteTab(tab), origin.col, origin.row+1, right, origin.row+rows)
}

// clearRange covers the full column block from the origin down, so a
// shorter snapshot does not leave stale rows from the previous run.
func clearRange(tab string, origin cell, width int) string {
	right := colName(colIndex(origin.col) + width - 1)

	return fmt.Sprintf("%s!%s%d:%s", quoteTab(tab), origin.col, origin.row, right)
}
