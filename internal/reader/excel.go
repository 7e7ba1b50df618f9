// Package reader wraps the document-reading collaborators: it turns
// spreadsheet files into raw cell grids and text statements into page text.
// Locked documents surface as ErrPasswordRequired so callers can prompt and
// retry that one document without aborting the batch.
package reader

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aquabill/statement-reconciler/internal/models"
)

// ErrPasswordRequired is returned when a document is encrypted and the
// supplied password is missing or wrong. It is a recoverable condition, not a
// terminal read failure.
var ErrPasswordRequired = errors.New("document password required")

// ReadWorkbook reads every sheet of a spreadsheet into a raw cell grid.
// RawCellValue keeps date serials numeric so downstream heuristics can apply
// the epoch rule themselves.
func ReadWorkbook(r io.Reader, password string) ([]models.Sheet, error) {
	f, err := excelize.OpenReader(r, excelize.Options{Password: password, RawCellValue: true})
	if err != nil {
		if isPasswordErr(err) {
			return nil, ErrPasswordRequired
		}
		return nil, err
	}
	defer f.Close()

	var sheets []models.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			// Keep the sheet with an empty grid; the pipeline records it
			// as an empty-sheet result instead of failing the workbook.
			rows = nil
		}
		sheets = append(sheets, models.Sheet{Name: name, Grid: rows})
	}
	return sheets, nil
}

func isPasswordErr(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "password")
}
