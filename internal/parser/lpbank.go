package parser

import (
	"strings"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// LPBank matches three layouts: the account statement (codes in the
// "Nội dung giao dịch" details column), collection history files keyed by a
// CIF-number column, and generic "Mã KH" listings backed by LienViet/LPBank
// branding evidence.
//
// Description priority is name column > description column > code-cell text,
// and amount priority is bill total > credit; both differ from the other bank
// layouts on purpose.
type LPBank struct {
	log logging.Logger
}

var lpBrandTokens = []string{"lienviet", "lpbank", "linviet"}

const lpLookahead = 8

func (p *LPBank) Institution() string { return "LPBank" }

func (p *LPBank) Match(s models.Sheet) (Layout, bool) {
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

			isStatement := strings.Contains(cell, "nội dung giao dịch") ||
				strings.Contains(cell, "noi dung giao dich") ||
				(strings.Contains(cell, "details") && !strings.Contains(cell, "ref")) ||
				strings.Contains(cell, "cif. no")
			// Broader than the shared generic label on purpose: LPBank
			// history files head the code column with "Mã khách hàng".
			isGeneric := strings.Contains(cell, "mã kh") || cell == "ma kh"

			if isStatement || isGeneric {
				// Branding is required whenever the generic token appears,
				// even in a combined "Mã Khách hàng (CIF. No)" header.
				if isGeneric &&
					!scan.Evidence(s.Grid, r, cell, meta.Result().Institution, lpBrandTokens, lpLookahead) {
					p.log.Logf("lpbank", "generic code header at row %d without branding, skipping", r)
					continue
				}
				l.Code = c
			}
			if strings.Contains(cell, "ghi có") || strings.Contains(cell, "ghi co") ||
				(strings.Contains(cell, "credit") && !strings.Contains(cell, "debit")) {
				l.Amount = c
			}
			if strings.Contains(cell, "tổng tiền hđ") || strings.Contains(cell, "tong tien hd") ||
				strings.Contains(cell, "tổng tiền thanh toán") || strings.Contains(cell, "tong tien thanh toan") {
				l.BillAmount = c
			}
			if strings.Contains(cell, "họ tên") || strings.Contains(cell, "ho ten") ||
				strings.Contains(cell, "tên kh") || strings.Contains(cell, "ten kh") ||
				strings.Contains(cell, "người nộp") || strings.Contains(cell, "nguoi nop") {
				l.Name = c
			}
			if strings.Contains(cell, "diễn giải") || strings.Contains(cell, "nội dung") ||
				strings.Contains(cell, "transaction description") {
				l.Desc = c
			}
		}
		if l.Code != -1 && l.HeaderRow == -1 {
			l.HeaderRow = r
			p.log.Logf("lpbank", "header accepted at row %d (code %d, amount %d, bill %d, name %d, desc %d)",
				r, l.Code, l.Amount, l.BillAmount, l.Name, l.Desc)
		}
	}

	if l.HeaderRow == -1 {
		return Layout{}, false
	}
	l.Meta = meta.Result()
	return l, true
}

func (p *LPBank) ExtractRow(l Layout, row []string) (models.CodeRecord, bool) {
	val := strings.TrimSpace(cellAt(row, l.Code))
	code, ok := scan.FindCode(val)
	if !ok {
		return models.CodeRecord{}, false
	}

	desc := strings.TrimSpace(cellAt(row, l.Name))
	if desc == "" {
		desc = strings.TrimSpace(cellAt(row, l.Desc))
	}
	if desc == "" && len(val) > len(code)+5 {
		// The details column doubles as description when it is more than
		// just the bare code.
		desc = val
	}

	amountCol := l.Amount
	if l.BillAmount != -1 && strings.TrimSpace(cellAt(row, l.BillAmount)) != "" {
		amountCol = l.BillAmount
	}

	return models.CodeRecord{
		Code:        code,
		Amount:      amountAt(row, amountCol),
		Description: desc,
	}, true
}
