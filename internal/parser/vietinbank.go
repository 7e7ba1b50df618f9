package parser

import (
	"strings"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// VietinBank matches both the eFAST statement layout (a "Mô tả giao dịch"
// transaction-description column carrying embedded codes) and collection
// listings with the generic "Mã KH" header. The generic header alone is not
// enough: it appears in several banks' listings, so acceptance requires
// VietinBank branding evidence, and a row naming another bank disqualifies
// the candidate outright.
type VietinBank struct {
	log logging.Logger
}

var (
	vietinBrandTokens  = []string{"vietin", "công thương", "efast"}
	vietinOtherBankRow = []string{"lienviet", "lpbank", "agribank", "bidv", "vietcombank"}
)

const vietinLookahead = 6

func (p *VietinBank) Institution() string { return "VietinBank" }

func (p *VietinBank) Match(s models.Sheet) (Layout, bool) {
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

			isStatement := strings.Contains(cell, "mô tả giao dịch") ||
				strings.Contains(cell, "mo ta giao dich") ||
				strings.Contains(cell, "transaction description")
			isGeneric := scan.IsGenericCodeLabel(cell)

			if isStatement || isGeneric {
				if isGeneric {
					if scan.RowHasAny(row, vietinOtherBankRow) {
						p.log.Logf("vietin", "generic code header at row %d names another bank, skipping", r)
						continue
					}
					if !scan.Evidence(s.Grid, r, cell, meta.Result().Institution, vietinBrandTokens, vietinLookahead) {
						p.log.Logf("vietin", "generic code header at row %d without branding, skipping", r)
						continue
					}
				}
				l.Code = c
			}
			if strings.Contains(cell, "có / credit") || strings.Contains(cell, "co / credit") ||
				(strings.Contains(cell, "credit") && !strings.Contains(cell, "debit")) {
				l.Amount = c
			}
			if strings.Contains(cell, "tên tài khoản đối ứng") ||
				strings.Contains(cell, "ten tai khoan doi ung") ||
				strings.Contains(cell, "corresponsive name") {
				l.Desc = c
			}
		}
		// Keep scanning after acceptance so vertical metadata below the
		// header row is still collected.
		if l.Code != -1 && l.HeaderRow == -1 {
			l.HeaderRow = r
			p.log.Logf("vietin", "header accepted at row %d (code %d, amount %d, desc %d)",
				r, l.Code, l.Amount, l.Desc)
		}
	}

	if l.HeaderRow == -1 {
		return Layout{}, false
	}
	l.Meta = meta.Result()
	return l, true
}

func (p *VietinBank) ExtractRow(l Layout, row []string) (models.CodeRecord, bool) {
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
