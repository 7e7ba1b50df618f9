package parser

import (
	"strings"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// Sacombank matches the account statement layout with bilingual headers:
//
//	STT | Ngày giao dịch | ... | Diễn giải | Số tiền rút | Số tiền gửi | Số dư
//	No  | Booking date   | ... | Description | Debit | Credit | Actual Balance
//
// All of the booking-date, description and credit columns are required.
// Codes are embedded in the description; only credit (incoming) amounts are
// captured. The statement date comes from the first data row's booking date.
type Sacombank struct {
	log logging.Logger
}

func (p *Sacombank) Institution() string { return "Sacombank" }

func (p *Sacombank) Match(s models.Sheet) (Layout, bool) {
	l := newLayout()
	dateCol := -1
	limit := min(len(s.Grid), headerScanWindow)
	for r := 0; r < limit; r++ {
		row := s.Grid[r]
		for c := range row {
			cell := scan.NormalizeCell(row[c])
			if strings.Contains(cell, "ngày giao dịch") || strings.Contains(cell, "booking date") {
				dateCol = c
			}
			if l.Desc == -1 &&
				(strings.Contains(cell, "diễn giải") ||
					(strings.Contains(cell, "description") && !strings.Contains(cell, "txn"))) {
				l.Desc = c
			}
			if strings.Contains(cell, "số tiền gửi") || cell == "credit" ||
				(strings.Contains(cell, "credit") && !strings.Contains(cell, "debit")) {
				l.Amount = c
			}
		}
		if dateCol != -1 && l.Desc != -1 && l.Amount != -1 {
			l.HeaderRow = r
			l.Code = l.Desc
			p.log.Logf("sacom", "header accepted at row %d (date %d, desc %d, credit %d)",
				r, dateCol, l.Desc, l.Amount)
			l.Meta.StatementDate = p.firstBookingDate(s.Grid, r+1, dateCol)
			return l, true
		}
	}
	return Layout{}, false
}

// firstBookingDate scans data rows for the first booking-date value, either a
// day serial or the date prefix of a "DD/MM/YYYY hh:mm:ss" timestamp.
func (p *Sacombank) firstBookingDate(grid [][]string, startRow, dateCol int) string {
	for r := startRow; r < len(grid); r++ {
		val := cellAt(grid[r], dateCol)
		if strings.TrimSpace(val) == "" {
			continue
		}
		if d, ok := scan.SerialDate(val); ok {
			return d
		}
		head, _, _ := strings.Cut(strings.TrimSpace(val), " ")
		if d, ok := scan.FirstDate(head); ok {
			return d
		}
	}
	return ""
}

func (p *Sacombank) ExtractRow(l Layout, row []string) (models.CodeRecord, bool) {
	desc := strings.TrimSpace(cellAt(row, l.Desc))
	code, ok := scan.FindCode(desc)
	if !ok {
		return models.CodeRecord{}, false
	}
	rec := models.CodeRecord{Code: code, Description: desc}
	if v := strings.TrimSpace(cellAt(row, l.Amount)); v != "" && v != "-" {
		a := scan.ParseAmount(v)
		rec.Amount = &a
	}
	return rec, true
}
