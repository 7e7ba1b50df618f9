package models

// DocumentKind tells which reader produced a sheet result.
type DocumentKind string

const (
	KindSpreadsheet DocumentKind = "excel"
	KindPDF         DocumentKind = "pdf"
)

// Sheet is one rectangular grid of raw cell values, as delivered by the
// document reader. Rows may be ragged; indices are 0-based.
type Sheet struct {
	Name string
	Grid [][]string
}

// Amount is a parsed monetary value. When the source text is not numeric the
// raw text is kept verbatim and Valid is false — malformed amounts are never
// dropped.
type Amount struct {
	Value float64 `json:"value"`
	Raw   string  `json:"raw,omitempty"`
	Valid bool    `json:"valid"`
}

// CodeRecord is one extracted customer code together with the transaction
// details found in the same row or block. One record per matched row; repeated
// codes stay as separate records.
type CodeRecord struct {
	Code        string  `json:"code"`
	Amount      *Amount `json:"amount,omitempty"`
	Description string  `json:"description,omitempty"`
	Row         int     `json:"row"`
}

// SheetResult is the immutable extraction outcome for one sheet or text
// document.
type SheetResult struct {
	ID            string       `json:"id"`
	FileName      string       `json:"fileName"`
	SheetName     string       `json:"sheetName"`
	Codes         []string     `json:"codes"`
	Records       []CodeRecord `json:"records,omitempty"`
	Institution   string       `json:"institution,omitempty"`
	StatementDate string       `json:"statementDate,omitempty"`
	Err           string       `json:"error,omitempty"`
	Selected      bool         `json:"selected"`
	Kind          DocumentKind `json:"kind"`
}

// RecordIndex maps each code to its first extracted record across the given
// results, for report enrichment. First match wins on collision.
func RecordIndex(results []SheetResult) map[string]CodeRecord {
	idx := make(map[string]CodeRecord)
	for _, res := range results {
		for _, rec := range res.Records {
			if _, ok := idx[rec.Code]; !ok {
				idx[rec.Code] = rec
			}
		}
	}
	return idx
}

// LineDetail carries the per-line flags for one input line of a comparison.
type LineDetail struct {
	Value         string `json:"value"`
	Index         int    `json:"index"`
	ExistsInOther bool   `json:"existsInOther"`
	IsValid       bool   `json:"isValid"`
	IsDuplicate   bool   `json:"isDuplicate"`
}

// ComparisonResult is the outcome of reconciling two code lists.
// InAOnly and InBOnly keep original order and duplicates; Intersection is a
// unique set.
type ComparisonResult struct {
	InAOnly      []string     `json:"inAOnly"`
	InBOnly      []string     `json:"inBOnly"`
	Intersection []string     `json:"intersection"`
	TotalA       int          `json:"totalA"`
	TotalB       int          `json:"totalB"`
	DetailA      []LineDetail `json:"detailA"`
	DetailB      []LineDetail `json:"detailB"`
}
