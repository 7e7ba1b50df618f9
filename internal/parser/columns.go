package parser

import (
	"strings"

	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// cellAt returns the cell at idx, tolerating ragged rows and absent columns.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// amountAt parses the amount cell at idx, or nil when the column is absent or
// the cell is empty.
func amountAt(row []string, idx int) *models.Amount {
	v := cellAt(row, idx)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	a := scan.ParseAmount(v)
	return &a
}
