// Package compare reconciles two code lists pasted or exported as newline
// separated text.
package compare

import (
	"strings"

	"github.com/aquabill/statement-reconciler/internal/models"
)

// Compare splits both inputs into trimmed lines and reports which codes exist
// only on one side. Membership is exact case-sensitive equality over non-empty
// lines. The only-in lists keep input order and duplicates; the intersection
// is a unique set and the totals count unique non-empty values. Empty lines
// never join the sets but keep their slot in the per-line details so indices
// line up with the input.
func Compare(rawA, rawB string) models.ComparisonResult {
	linesA := splitLines(rawA)
	linesB := splitLines(rawB)
	setA := lineSet(linesA)
	setB := lineSet(linesB)

	res := models.ComparisonResult{
		TotalA:  len(setA),
		TotalB:  len(setB),
		DetailA: detail(linesA, setB),
		DetailB: detail(linesB, setA),
	}

	for _, line := range linesA {
		if line != "" && !setB[line] {
			res.InAOnly = append(res.InAOnly, line)
		}
	}
	for _, line := range linesB {
		if line != "" && !setA[line] {
			res.InBOnly = append(res.InBOnly, line)
		}
	}

	seen := make(map[string]bool)
	for _, line := range linesA {
		if line != "" && setB[line] && !seen[line] {
			seen[line] = true
			res.Intersection = append(res.Intersection, line)
		}
	}
	return res
}

func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

func lineSet(lines []string) map[string]bool {
	set := make(map[string]bool, len(lines))
	for _, line := range lines {
		if line != "" {
			set[line] = true
		}
	}
	return set
}

func detail(lines []string, other map[string]bool) []models.LineDetail {
	seen := make(map[string]bool, len(lines))
	details := make([]models.LineDetail, 0, len(lines))
	for i, line := range lines {
		details = append(details, models.LineDetail{
			Value:         line,
			Index:         i,
			ExistsInOther: line != "" && other[line],
			IsValid:       line != "",
			IsDuplicate:   line != "" && seen[line],
		})
		seen[line] = true
	}
	return details
}
