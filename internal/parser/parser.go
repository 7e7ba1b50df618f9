// Package parser implements the variant matcher cascade: an ordered set of
// per-institution layout matchers, each independently accepting or declining a
// sheet grid, followed by record extraction under the accepted layout.
package parser

import (
	"github.com/google/uuid"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// Header scan windows, in leading rows.
const (
	headerScanWindow   = 50
	fallbackScanWindow = 20
)

// Per-sheet soft error messages. These are recorded on the sheet result; they
// never abort processing of sibling sheets.
const (
	errEmptySheet = "empty sheet"
	errNoHeader   = "no header row found"
	errNoCodes    = "no matching codes found"
)

// Layout describes where an accepted variant found its header row and field
// columns. Absent columns are -1. A fallback acceptance without a header keeps
// HeaderRow at -1 so data scanning starts at row 0.
type Layout struct {
	HeaderRow  int
	Code       int
	Amount     int
	BillAmount int
	Name       int
	Desc       int
	Meta       scan.Metadata
}

func newLayout() Layout {
	return Layout{HeaderRow: -1, Code: -1, Amount: -1, BillAmount: -1, Name: -1, Desc: -1}
}

// Matcher recognizes one institution's statement layout.
//
// Match scans the grid's header window and returns ok=false when the sheet is
// not this institution's format. Declining is the expected outcome for every
// non-matching variant; no matcher returns an error for it.
type Matcher interface {
	Institution() string
	Match(s models.Sheet) (Layout, bool)
	// ExtractRow pulls one code record from a data row under the accepted
	// layout; ok=false means the row carries no code and contributes nothing.
	ExtractRow(l Layout, row []string) (models.CodeRecord, bool)
}

// Cascade returns the matchers in fixed priority order: wallet layouts first
// (their strict multi-column requirements make them decline fast), then the
// bank layouts, with the loose generic matcher last so every sheet yields
// some outcome.
func Cascade(log logging.Logger) []Matcher {
	return []Matcher{
		&MoMo{log: log},
		&Payoo{log: log},
		&VNPTPay{log: log},
		&Sacombank{log: log},
		&VietinBank{log: log},
		&Vietcombank{log: log},
		&LPBank{log: log},
		&BIDV{log: log},
		&Agribank{log: log},
	}
}

// ProcessSheet runs the cascade over one sheet and extracts records under the
// first accepted layout. The returned result is complete and immutable; the
// caller aggregates results across sheets and files.
func ProcessSheet(s models.Sheet, fileName string, matchers []Matcher, log logging.Logger) models.SheetResult {
	res := models.SheetResult{
		ID:        resultID(fileName, s.Name),
		FileName:  fileName,
		SheetName: s.Name,
		Kind:      models.KindSpreadsheet,
	}

	if len(s.Grid) == 0 {
		res.Err = errEmptySheet
		return res
	}

	for _, m := range matchers {
		layout, ok := m.Match(s)
		if !ok {
			log.Logf("cascade", "%s declined sheet %q", m.Institution(), s.Name)
			continue
		}
		log.Logf("cascade", "%s accepted sheet %q, header row %d, code col %d",
			m.Institution(), s.Name, layout.HeaderRow, layout.Code)

		res.Institution = layout.Meta.Institution
		if res.Institution == "" {
			res.Institution = m.Institution()
		}
		res.StatementDate = layout.Meta.StatementDate

		for r := layout.HeaderRow + 1; r < len(s.Grid); r++ {
			rec, ok := m.ExtractRow(layout, s.Grid[r])
			if !ok {
				continue
			}
			rec.Row = r
			res.Codes = append(res.Codes, rec.Code)
			res.Records = append(res.Records, rec)
		}

		if len(res.Codes) == 0 {
			res.Err = errNoCodes
		} else {
			res.Selected = true
		}
		return res
	}

	res.Err = errNoHeader
	return res
}

// ProcessSheets runs the cascade over every sheet of one document.
func ProcessSheets(sheets []models.Sheet, fileName string, log logging.Logger) []models.SheetResult {
	matchers := Cascade(log)
	results := make([]models.SheetResult, 0, len(sheets))
	for _, s := range sheets {
		results = append(results, ProcessSheet(s, fileName, matchers, log))
	}
	return results
}

// resultID is unique per (file, sheet, invocation).
func resultID(fileName, sheetName string) string {
	return fileName + "/" + sheetName + "/" + uuid.NewString()
}
