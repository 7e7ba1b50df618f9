package parser

import (
	"regexp"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/scan"
)

// BIDV collection statements arrive as PDF text rather than a grid. Each
// transfer is a "REM Tfr" block carrying the customer code, a SOTIEN amount
// and a KH/SODB remittance note.
var (
	blockStartPattern = regexp.MustCompile(`(?i)REM\s+Tfr`)
	textAmountPattern = regexp.MustCompile(`(?i)SOTIEN:\s*([0-9,.]+)`)
	textDescPattern   = regexp.MustCompile(`(?i)KH:[^,]+,\s*SODB:[^\s]+\s+TT\s+TIEN\s+NUOC\s+THANG:\d+\s*-\s*NAM:\d+`)
)

// ExtractTextStatement parses one text document into a sheet result. Blocks
// without a code are skipped; a code seen in an earlier block is not recorded
// again.
func ExtractTextStatement(text, fileName string, log logging.Logger) models.SheetResult {
	res := models.SheetResult{
		ID:          resultID(fileName, "document"),
		FileName:    fileName,
		SheetName:   "document",
		Institution: "BIDV",
		Kind:        models.KindPDF,
		Codes:       scan.AllCodes(text),
	}

	// Text before the first marker (or a document with no markers at all) is
	// still one block: short payment notices carry codes without the
	// transfer-list framing.
	starts := blockStartPattern.FindAllStringIndex(text, -1)
	var blocks []string
	if len(starts) == 0 {
		blocks = []string{text}
	} else {
		if starts[0][0] > 0 {
			blocks = append(blocks, text[:starts[0][0]])
		}
		for i, loc := range starts {
			end := len(text)
			if i+1 < len(starts) {
				end = starts[i+1][0]
			}
			blocks = append(blocks, text[loc[0]:end])
		}
	}

	seen := make(map[string]bool)
	for i, block := range blocks {
		code, ok := scan.FindCode(block)
		if !ok || seen[code] {
			continue
		}
		seen[code] = true

		rec := models.CodeRecord{Code: code, Row: i}
		if m := textAmountPattern.FindStringSubmatch(block); m != nil {
			a := scan.ParseAmount(m[1])
			rec.Amount = &a
		}
		rec.Description = textDescPattern.FindString(block)
		res.Records = append(res.Records, rec)
		log.Logf("textdoc", "block %d: code %s", i, code)
	}

	if len(res.Codes) == 0 {
		res.Err = errNoCodes
	} else {
		res.Selected = true
	}
	return res
}
