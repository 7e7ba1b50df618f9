package scan

import "strings"

// Evidence reports whether any of the brand tokens can be found near a
// candidate code-column cell: in the cell itself, in the already-captured
// institution name, anywhere in the candidate's row, or in a bounded forward
// window of following rows. Generic code headers are only accepted with such
// evidence, so a shared "customer code" label is never attributed to the wrong
// institution.
func Evidence(grid [][]string, rowIdx int, cellNorm, institution string, tokens []string, lookahead int) bool {
	if ContainsAny(cellNorm, tokens) {
		return true
	}
	if institution != "" && ContainsAny(strings.ToLower(institution), tokens) {
		return true
	}
	if rowIdx >= 0 && rowIdx < len(grid) && RowHasAny(grid[rowIdx], tokens) {
		return true
	}
	limit := rowIdx + lookahead
	if limit > len(grid) {
		limit = len(grid)
	}
	for r := rowIdx + 1; r < limit; r++ {
		if RowHasAny(grid[r], tokens) {
			return true
		}
	}
	return false
}
