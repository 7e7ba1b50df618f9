package parser

import (
	"strings"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// BIDV has no layout of its own beyond the generic "Mã KH" listing, so the
// match hinges entirely on branding evidence near the header row.
type BIDV struct {
	log logging.Logger
}

var bidvBrandTokens = []string{"bidv", "đầu tư và phát triển"}

const bidvLookahead = 8

func (p *BIDV) Institution() string { return "BIDV" }

func (p *BIDV) Match(s models.Sheet) (Layout, bool) {
	l := newLayout()
	meta := scan.NewMetadataScanner(p.log)
	limit := min(len(s.Grid), headerScanWindow)

	for r := 0; r < limit; r++ {
		row := s.Grid[r]
		for c := range row {
			meta.Observe(row, r, c)
			if l.HeaderRow != -1 {
				continue
			}
			cell := scan.NormalizeCell(row[c])

			if scan.IsGenericCodeLabel(cell) {
				if !scan.Evidence(s.Grid, r, cell, meta.Result().Institution, bidvBrandTokens, bidvLookahead) {
					p.log.Logf("bidv", "generic code header at row %d without branding, skipping", r)
					continue
				}
				l.Code = c
			}
			if strings.Contains(cell, "số tiền") || strings.Contains(cell, "so tien") ||
				strings.Contains(cell, "tổng tiền") || strings.Contains(cell, "tong tien") ||
				cell == "amount" {
				l.Amount = c
			}
			if strings.Contains(cell, "nội dung") || strings.Contains(cell, "noi dung") ||
				strings.Contains(cell, "diễn giải") || strings.Contains(cell, "dien giai") ||
				strings.Contains(cell, "ghi chú") || strings.Contains(cell, "ghi chu") ||
				cell == "description" {
				l.Desc = c
			}
		}
		if l.Code != -1 && l.HeaderRow == -1 {
			l.HeaderRow = r
			p.log.Logf("bidv", "header accepted at row %d (code %d, amount %d, desc %d)",
				r, l.Code, l.Amount, l.Desc)
		}
	}

	if l.HeaderRow == -1 {
		return Layout{}, false
	}
	l.Meta = meta.Result()
	return l, true
}

func (p *BIDV) ExtractRow(l Layout, row []string) (models.CodeRecord, bool) {
	code, ok := scan.FindCode(cellAt(row, l.Code))
	if !ok {
		return models.CodeRecord{}, false
	}
	return models.CodeRecord{
		Code:        code,
		Amount:      amountAt(row, l.Amount),
		Description: strings.TrimSpace(cellAt(row, l.Desc)),
	}, true
}
