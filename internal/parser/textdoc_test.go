package parser

import (
	"testing"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
)

const sampleStatementText = `SAO KE TAI KHOAN
REM Tfr X010101 SOTIEN: 350,000 ND KH:NGUYEN VAN A, SODB:X010101 TT TIEN NUOC THANG:03 - NAM:2024 het
REM Tfr X020202 SOTIEN: 1,250,000 chuyen khoan
REM Tfr X010101 SOTIEN: 350,000 lap lai
REM Tfr khong co ma`

func TestExtractTextStatement(t *testing.T) {
	res := ExtractTextStatement(sampleStatementText, "statement.pdf", logging.Nop())

	if res.Institution != "BIDV" || res.Kind != models.KindPDF {
		t.Fatalf("Institution = %q, Kind = %q", res.Institution, res.Kind)
	}
	if !res.Selected {
		t.Error("result not selected")
	}

	// Codes keep first-appearance order; the repeated block is not recorded
	// twice.
	if len(res.Codes) != 2 || res.Codes[0] != "X010101" || res.Codes[1] != "X020202" {
		t.Fatalf("Codes = %v", res.Codes)
	}
	if len(res.Records) != 2 {
		t.Fatalf("Records = %+v", res.Records)
	}

	first := res.Records[0]
	if first.Amount == nil || first.Amount.Value != 350000 {
		t.Errorf("first amount = %+v", first.Amount)
	}
	want := "KH:NGUYEN VAN A, SODB:X010101 TT TIEN NUOC THANG:03 - NAM:2024"
	if first.Description != want {
		t.Errorf("Description = %q, want %q", first.Description, want)
	}

	second := res.Records[1]
	if second.Amount == nil || second.Amount.Value != 1250000 {
		t.Errorf("second amount = %+v", second.Amount)
	}
	if second.Description != "" {
		t.Errorf("second description = %q", second.Description)
	}
}

func TestExtractTextStatementWithoutTransferMarkers(t *testing.T) {
	// Short payment notices have no "REM Tfr" framing; the whole text is one
	// block and the result still counts as selected.
	res := ExtractTextStatement("GIAY BAO CO X123456 TT TIEN NUOC SOTIEN: 450,000", "notice.pdf", logging.Nop())

	if !res.Selected || res.Err != "" {
		t.Fatalf("Selected = %v, Err = %q", res.Selected, res.Err)
	}
	if len(res.Records) != 1 || res.Records[0].Code != "X123456" {
		t.Fatalf("Records = %+v", res.Records)
	}
	if res.Records[0].Amount == nil || res.Records[0].Amount.Value != 450000 {
		t.Errorf("Amount = %+v", res.Records[0].Amount)
	}
}

func TestExtractTextStatementPreMarkerChunk(t *testing.T) {
	text := "GIAY BAO CO X030303 SOTIEN: 120,000\nREM Tfr X040404 SOTIEN: 80,000"
	res := ExtractTextStatement(text, "mixed.pdf", logging.Nop())

	if len(res.Records) != 2 {
		t.Fatalf("Records = %+v", res.Records)
	}
	if res.Records[0].Code != "X030303" || res.Records[1].Code != "X040404" {
		t.Errorf("codes = %v", res.Codes)
	}
}

func TestExtractTextStatementNoCodes(t *testing.T) {
	res := ExtractTextStatement("giay bao co khong co ma khach hang", "empty.pdf", logging.Nop())
	if res.Err != errNoCodes {
		t.Errorf("Err = %q, want %q", res.Err, errNoCodes)
	}
	if res.Selected {
		t.Error("empty result selected")
	}
}
