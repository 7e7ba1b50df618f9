package scan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet day serials for plausible statement dates. The range covers
// roughly 1982-2064; anything outside is treated as an ordinary number.
const (
	serialMin = 30000
	serialMax = 60000
)

var (
	dmyPattern     = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	numericPattern = regexp.MustCompile(`^\d+\.?\d*$`)
)

// SerialDate converts a day-serial cell value to DD/MM/YYYY. The value may be
// the raw numeric text of the cell, including a fractional time part.
func SerialDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || !numericPattern.MatchString(s) {
		return "", false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= serialMin || v >= serialMax {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(v, false)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year()), true
}

// FirstDate returns the first DD/MM/YYYY date in s. Statement-period
// expressions ("date - date") therefore yield their opening date.
func FirstDate(s string) (string, bool) {
	m := dmyPattern.FindString(s)
	return m, m != ""
}
