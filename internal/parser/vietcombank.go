package parser

import (
	"strings"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// Vietcombank matches the statement layout whose "Mô tả" column carries both
// the embedded code and the payer name behind a GENPCO_ marker:
//
//	MBVCB.12800478724_20260129_GENPCO_TA THI MY HANH...
//
// A generic "Mã KH" header is accepted only with Vietcombank branding
// evidence. The description is always derived from the code cell itself.
type Vietcombank struct {
	log logging.Logger
}

var vietcomBrandTokens = []string{"vietcom", "ngoại thương"}

const (
	vietcomLookahead  = 8
	vietcomDescMarker = "GENPCO_"
)

func (p *Vietcombank) Institution() string { return "Vietcombank" }

func (p *Vietcombank) Match(s models.Sheet) (Layout, bool) {
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

			isStatement := cell == "mô tả" || cell == "mo ta" || cell == "description"
			isGeneric := scan.IsGenericCodeLabel(cell)

			if isStatement || isGeneric {
				if isGeneric && !scan.Evidence(s.Grid, r, cell, meta.Result().Institution, vietcomBrandTokens, vietcomLookahead) {
					p.log.Logf("vietcom", "generic code header at row %d without branding, skipping", r)
					continue
				}
				l.Code = c
			}
			if strings.Contains(cell, "số tiền") || strings.Contains(cell, "so tien") ||
				strings.Contains(cell, "credit amount") {
				l.Amount = c
			}
		}
		if l.Code != -1 && l.HeaderRow == -1 {
			l.HeaderRow = r
			p.log.Logf("vietcom", "header accepted at row %d (code %d, amount %d)", r, l.Code, l.Amount)
		}
	}

	if l.HeaderRow == -1 {
		return Layout{}, false
	}
	l.Meta = meta.Result()
	return l, true
}

func (p *Vietcombank) ExtractRow(l Layout, row []string) (models.CodeRecord, bool) {
	val := strings.TrimSpace(cellAt(row, l.Code))
	code, ok := scan.FindCode(val)
	if !ok {
		return models.CodeRecord{}, false
	}

	desc := val
	if _, after, found := strings.Cut(val, vietcomDescMarker); found && after != "" {
		desc = strings.TrimSpace(after)
	}

	return models.CodeRecord{
		Code:        code,
		Amount:      amountAt(row, l.Amount),
		Description: desc,
	}, true
}
