package parser

import (
	"strings"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// VNPTPay matches the wallet transaction detail export: customer-code,
// invoice-value and customer-name columns together in one header row. Like
// MoMo, any non-empty code cell counts — the wallet settles non-X customer
// identifiers too.
type VNPTPay struct {
	log logging.Logger
}

func (p *VNPTPay) Institution() string { return "VNPT Pay" }

func (p *VNPTPay) Match(s models.Sheet) (Layout, bool) {
	l := newLayout()
	limit := min(len(s.Grid), headerScanWindow)
	for r := 0; r < limit; r++ {
		row := s.Grid[r]
		for c := range row {
			cell := scan.NormalizeCell(row[c])
			switch {
			case strings.Contains(cell, "mã khách hàng"):
				l.Code = c
			case strings.Contains(cell, "giá trị hóa đơn") || strings.Contains(cell, "gia tri hoa don"):
				l.Amount = c
			case strings.Contains(cell, "tên khách hàng") || strings.Contains(cell, "ten khach hang"):
				l.Name = c
			}
		}
		if l.Code != -1 && l.Amount != -1 && l.Name != -1 {
			l.HeaderRow = r
			p.log.Logf("vnptpay", "header accepted at row %d (code %d, amount %d, name %d)",
				r, l.Code, l.Amount, l.Name)
			return l, true
		}
	}
	return Layout{}, false
}

func (p *VNPTPay) ExtractRow(l Layout, row []string) (models.CodeRecord, bool) {
	code := cellAt(row, l.Code)
	if strings.TrimSpace(code) == "" {
		return models.CodeRecord{}, false
	}
	return models.CodeRecord{
		Code:        scan.NormalizeCode(code),
		Amount:      amountAt(row, l.Amount),
		Description: strings.TrimSpace(cellAt(row, l.Name)),
	}, true
}
