package parser

import (
	"regexp"
	"strings"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// Agribank is the cascade terminator: it accepts every sheet that no other
// matcher claimed, unless the sheet openly brands itself as another bank.
// With no header found it still accepts and extraction falls back to a
// whole-row code scan.
type Agribank struct {
	log logging.Logger
}

var (
	agriRowDisqualifiers   = []string{"lienviet", "lpbank", "vietin", "vietcom", "bidv"}
	agriSheetDisqualifiers = []string{
		"lienviet", "lpbank", "vietin", "vietcom", "bidv",
		"công thương", "ngoại thương", "đầu tư và phát triển",
	}
	agriDescPattern = regexp.MustCompile(`(?i)X\d{6},[^#]+#[^#]+`)
)

func (p *Agribank) Institution() string { return "Agribank" }

func (p *Agribank) Match(s models.Sheet) (Layout, bool) {
	for r := 0; r < min(len(s.Grid), 10); r++ {
		if scan.RowHasAny(s.Grid[r], agriSheetDisqualifiers) {
			p.log.Logf("agribank", "row %d names another institution, declining sheet", r)
			return Layout{}, false
		}
	}

	l := newLayout()
	meta := scan.NewMetadataScanner(p.log)
	limit := min(len(s.Grid), fallbackScanWindow)

	for r := 0; r < limit; r++ {
		row := s.Grid[r]
		if scan.RowHasAny(row, agriRowDisqualifiers) {
			continue
		}
		for c := range row {
			meta.Observe(row, r, c)
			cell := scan.NormalizeCell(row[c])
			if l.Code == -1 {
				if strings.Contains(cell, "mã kh") || strings.Contains(cell, "ma kh") {
					l.Code = c
					l.HeaderRow = r
				} else if scan.IsBareCode(row[c]) {
					// Discovered from a data row, not a label: keep this row
					// in the extraction range.
					l.Code = c
					l.HeaderRow = r - 1
				}
			}
			if l.Amount == -1 && (strings.Contains(cell, "số tiền") || strings.Contains(cell, "so tien")) {
				l.Amount = c
			}
			if l.Desc == -1 && (strings.Contains(cell, "nội dung") || strings.Contains(cell, "noi dung") ||
				strings.Contains(cell, "diễn giải") || strings.Contains(cell, "dien giai")) {
				l.Desc = c
			}
		}
	}

	l.Meta = meta.Result()
	return l, true
}

func (p *Agribank) ExtractRow(l Layout, row []string) (models.CodeRecord, bool) {
	code := ""
	if colVal := strings.TrimSpace(cellAt(row, l.Code)); l.Code != -1 && colVal != "" {
		// A confirmed code column is authoritative: a non-code value there
		// means the row carries no code.
		var ok bool
		if code, ok = scan.StrictCode(colVal); !ok {
			return models.CodeRecord{}, false
		}
	} else {
		// No column, or an empty cell in it: a strict full-cell code anywhere
		// in the row wins, an embedded code is kept as a candidate.
		candidate := ""
		for _, cell := range row {
			if strict, ok := scan.StrictCode(cell); ok {
				code = strict
				break
			}
			if candidate == "" {
				if embedded, ok := scan.EmbeddedCode(cell); ok {
					candidate = embedded
				}
			}
		}
		if code == "" {
			code = candidate
		}
	}
	if code == "" {
		return models.CodeRecord{}, false
	}

	desc := strings.TrimSpace(cellAt(row, l.Desc))
	if m := agriDescPattern.FindString(desc); m != "" {
		desc = m
	}

	return models.CodeRecord{
		Code:        code,
		Amount:      amountAt(row, l.Amount),
		Description: desc,
	}, true
}
