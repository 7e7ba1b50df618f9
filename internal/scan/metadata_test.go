package scan

import (
	"testing"

	"github.com/aquabill/statement-reconciler/internal/logging"
)

func scanGrid(grid [][]string) Metadata {
	m := NewMetadataScanner(logging.Nop())
	for r, row := range grid {
		for c := range row {
			m.Observe(row, r, c)
		}
	}
	return m.Result()
}

func TestMetadataSameCell(t *testing.T) {
	got := scanGrid([][]string{
		{"Người thu: Công ty Nước Sạch ABC"},
		{"Ngày thu: 15/03/2024"},
	})
	if got.Institution != "công ty nước sạch abc" {
		t.Errorf("Institution = %q", got.Institution)
	}
	if got.StatementDate != "15/03/2024" {
		t.Errorf("StatementDate = %q", got.StatementDate)
	}
}

func TestMetadataNeighborCell(t *testing.T) {
	got := scanGrid([][]string{
		{"Người thu", "Chi nhánh Hà Nội 1"},
		{"Ngày thu", "20/04/2024"},
	})
	if got.Institution != "Chi nhánh Hà Nội 1" {
		t.Errorf("Institution = %q", got.Institution)
	}
	if got.StatementDate != "20/04/2024" {
		t.Errorf("StatementDate = %q", got.StatementDate)
	}
}

func TestMetadataVerticalColumn(t *testing.T) {
	got := scanGrid([][]string{
		{"STT", "Người thu", "Ngày thu"},
		{"1", "Đơn vị thu hộ XYZ", "44562"},
	})
	if got.Institution != "Đơn vị thu hộ XYZ" {
		t.Errorf("Institution = %q", got.Institution)
	}
	// Day serials resolve through the 1900 epoch.
	if got.StatementDate != "01/01/2022" {
		t.Errorf("StatementDate = %q", got.StatementDate)
	}
}

func TestMetadataDenylistSkipsHeaderLabels(t *testing.T) {
	for _, label := range []string{"Số tiền", "Thành tiền", "Mã KH"} {
		got := scanGrid([][]string{
			{"Người thu", label},
		})
		if got.Institution != "" {
			t.Errorf("captured header label %q as institution", label)
		}
	}

	// Branch names are values, not header labels.
	got := scanGrid([][]string{
		{"Người thu", "Chi nhánh Đống Đa"},
	})
	if got.Institution != "Chi nhánh Đống Đa" {
		t.Errorf("Institution = %q", got.Institution)
	}
}

func TestMetadataNoOverwrite(t *testing.T) {
	got := scanGrid([][]string{
		{"Ngày thu: 15/03/2024"},
		{"Ngày thu: 16/03/2024"},
	})
	if got.StatementDate != "15/03/2024" {
		t.Errorf("first accepted date was overwritten: %q", got.StatementDate)
	}
}

func TestMetadataPeriodFirstDate(t *testing.T) {
	got := scanGrid([][]string{
		{"Kỳ sao kê: 01/03/2024 - 31/03/2024"},
	})
	if got.StatementDate != "01/03/2024" {
		t.Errorf("StatementDate = %q", got.StatementDate)
	}
}
