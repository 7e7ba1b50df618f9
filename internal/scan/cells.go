// Package scan provides the cell-level heuristics shared by all variant
// matchers: text normalization, code/amount parsing, branding evidence checks
// and document metadata extraction. Everything here is a pure function over a
// grid so matchers can be tested without a real spreadsheet reader.
package scan

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`\s+`)

// NormalizeCell lowercases a cell, collapses internal whitespace runs to a
// single space and trims the ends. Keyword sets are matched against this form.
func NormalizeCell(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(strings.ToLower(s), " "))
}

// RowText joins every cell of a row into one lowercase string, for row-level
// token checks.
func RowText(row []string) string {
	return strings.ToLower(strings.Join(row, " "))
}

// ContainsAny reports whether s contains any of the given tokens.
func ContainsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

// RowHasAny reports whether any cell of the row, joined and lowercased,
// contains one of the tokens.
func RowHasAny(row []string, tokens []string) bool {
	return ContainsAny(RowText(row), tokens)
}

// IsGenericCodeLabel reports whether a normalized cell is the generic customer
// code header shared across several bank layouts. CIF-number and full
// "customer code" headers are excluded; those belong to specific layouts.
func IsGenericCodeLabel(norm string) bool {
	if !strings.Contains(norm, "mã kh") && norm != "ma kh" {
		return false
	}
	return !strings.Contains(norm, "cif") && !strings.Contains(norm, "khách hàng")
}
