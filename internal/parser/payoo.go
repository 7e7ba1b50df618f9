package parser

import (
	"strings"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// Payoo matches the wallet collection report: customer-code, amount (VND) and
// full-name columns must appear together in one header row. Codes come from a
// pattern match inside the code cell.
type Payoo struct {
	log logging.Logger
}

func (p *Payoo) Institution() string { return "Payoo Wallet" }

func (p *Payoo) Match(s models.Sheet) (Layout, bool) {
	l := newLayout()
	limit := min(len(s.Grid), headerScanWindow)
	for r := 0; r < limit; r++ {
		row := s.Grid[r]
		for c := range row {
			cell := scan.NormalizeCell(row[c])
			switch {
			case strings.Contains(cell, "mã khách hàng") || cell == "mã kh" || cell == "ma khach hang":
				l.Code = c
			case strings.Contains(cell, "số tiền(vnd)") || strings.Contains(cell, "số tiền") ||
				strings.Contains(cell, "so tien"):
				l.Amount = c
			case strings.Contains(cell, "họ tên") || strings.Contains(cell, "ho ten") ||
				strings.Contains(cell, "tên khách hàng"):
				l.Name = c
			}
		}
		if l.Code != -1 && l.Amount != -1 && l.Name != -1 {
			l.HeaderRow = r
			p.log.Logf("payoo", "header accepted at row %d (code %d, amount %d, name %d)",
				r, l.Code, l.Amount, l.Name)
			return l, true
		}
	}
	return Layout{}, false
}

func (p *Payoo) ExtractRow(l Layout, row []string) (models.CodeRecord, bool) {
	code, ok := scan.FindCode(cellAt(row, l.Code))
	if !ok {
		return models.CodeRecord{}, false
	}
	return models.CodeRecord{
		Code:        code,
		Amount:      amountAt(row, l.Amount),
		Description: strings.TrimSpace(cellAt(row, l.Name)),
	}, true
}
