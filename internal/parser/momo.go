package parser

import (
	"strings"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// MoMo matches the wallet settlement export. Only the sheet named "data"
// carries transactions; the layout needs the partner-code, debit and
// customer-name columns together in one header row. Partner codes are taken
// as-is (any non-empty value), not forced through the X-pattern.
type MoMo struct {
	log logging.Logger
}

func (p *MoMo) Institution() string { return "MoMo Wallet" }

func (p *MoMo) Match(s models.Sheet) (Layout, bool) {
	if !strings.EqualFold(s.Name, "data") {
		return Layout{}, false
	}

	l := newLayout()
	limit := min(len(s.Grid), headerScanWindow)
	for r := 0; r < limit; r++ {
		row := s.Grid[r]
		for c := range row {
			cell := scan.NormalizeCell(row[c])
			switch {
			case strings.Contains(cell, "ms.mã đối tác") || strings.Contains(cell, "ms.ma doi tac") ||
				cell == "mã đối tác" || cell == "ma doi tac":
				l.Code = c
			case cell == "ms.nợ" || cell == "ms.no" || cell == "nợ" || cell == "no":
				l.Amount = c
			case strings.Contains(cell, "ms.tên khách hàng") || strings.Contains(cell, "ms.ten khach hang") ||
				cell == "tên khách hàng" || cell == "ten khach hang":
				l.Name = c
			}
		}
		if l.Code != -1 && l.Amount != -1 && l.Name != -1 {
			l.HeaderRow = r
			p.log.Logf("momo", "header accepted at row %d (code %d, amount %d, name %d)",
				r, l.Code, l.Amount, l.Name)
			return l, true
		}
	}
	return Layout{}, false
}

func (p *MoMo) ExtractRow(l Layout, row []string) (models.CodeRecord, bool) {
	code := cellAt(row, l.Code)
	if strings.TrimSpace(code) == "" {
		return models.CodeRecord{}, false
	}
	rec := models.CodeRecord{
		Code:        scan.NormalizeCode(code),
		Description: strings.TrimSpace(cellAt(row, l.Name)),
	}
	if v := cellAt(row, l.Amount); strings.TrimSpace(v) != "" {
		a := scan.ParseAmount(v)
		rec.Amount = &a
	}
	return rec, true
}
