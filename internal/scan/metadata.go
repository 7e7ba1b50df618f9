package scan

import (
	"regexp"
	"strings"

	"github.com/aquabill/statement-reconciler/internal/logging"
)

// Metadata is the document-level information found during a header scan.
type Metadata struct {
	Institution   string
	StatementDate string
}

// Labels that introduce metadata values. Documents carry both accented and
// ASCII-folded spellings.
var (
	collectorLabels = []string{"người thu", "nguoi thu"}
	dateLabels      = []string{"ngày thu", "ngay thu"}
	periodLabels    = []string{"kỳ sao kê", "statement period"}

	collectorValuePattern = regexp.MustCompile(`(?i)(?:người|nguoi)\s+thu\s*[:.-]?\s+(.+)`)
	dateValuePattern      = regexp.MustCompile(`(?i)(?:ngày|ngay)\s+thu\s*[:.-]?\s+(.+)`)
	digitPattern          = regexp.MustCompile(`\d`)
)

// headerDenylist keeps a neighboring header label from being captured as if it
// were a metadata value.
var headerDenylist = []string{
	"ngày thu", "số tiền", "mô tả", "ghi chú", "thành tiền", "mã kh",
}

func isHeaderLabel(s string) bool {
	lower := strings.ToLower(s)
	if lower == "ngày" {
		return true
	}
	return ContainsAny(lower, headerDenylist)
}

// MetadataScanner locates the issuing institution and statement date while a
// matcher walks the header window. It works independently of code-column
// discovery: values are found in the label cell itself, in the horizontal
// neighbor, or vertically in a later row of a labeled column. Once a value is
// accepted it is never overwritten by a weaker later candidate.
type MetadataScanner struct {
	log            logging.Logger
	meta           Metadata
	institutionCol int
	dateCol        int
}

func NewMetadataScanner(log logging.Logger) *MetadataScanner {
	return &MetadataScanner{log: log, institutionCol: -1, dateCol: -1}
}

// Result returns what has been found so far.
func (m *MetadataScanner) Result() Metadata { return m.meta }

// Observe inspects one cell. Vertical value checks run before label detection
// so a label cell is never consumed as its own value.
func (m *MetadataScanner) Observe(row []string, r, c int) {
	raw := row[c]
	norm := NormalizeCell(raw)

	if m.institutionCol == c && m.meta.Institution == "" {
		val := strings.TrimSpace(raw)
		if val != "" && !isHeaderLabel(val) && !ContainsAny(strings.ToLower(val), collectorLabels) {
			m.log.Logf("meta", "institution (vertical, row %d): %s", r, val)
			m.meta.Institution = val
		}
	}
	if m.dateCol == c && m.meta.StatementDate == "" {
		m.acceptDate(raw, "vertical", r)
	}

	if ContainsAny(norm, collectorLabels) {
		m.institutionCol = c
		if match := collectorValuePattern.FindStringSubmatch(norm); match != nil {
			if val := strings.TrimSpace(match[1]); val != "" && !isHeaderLabel(val) {
				m.log.Logf("meta", "institution (same cell, row %d): %s", r, val)
				m.meta.Institution = val
			}
		} else if c+1 < len(row) {
			if val := strings.TrimSpace(row[c+1]); val != "" && !isHeaderLabel(val) {
				m.log.Logf("meta", "institution (neighbor, row %d): %s", r, val)
				m.meta.Institution = val
			}
		}
	}

	if ContainsAny(norm, dateLabels) {
		m.dateCol = c
		if match := dateValuePattern.FindStringSubmatch(norm); match != nil {
			val := strings.TrimSpace(match[1])
			if val != "" && digitPattern.MatchString(val) && !isHeaderLabel(val) && m.meta.StatementDate == "" {
				m.log.Logf("meta", "date (same cell, row %d): %s", r, val)
				m.meta.StatementDate = val
			}
		} else if c+1 < len(row) && m.meta.StatementDate == "" {
			m.acceptDate(row[c+1], "neighbor", r)
		}
	}

	if m.meta.StatementDate == "" && ContainsAny(norm, periodLabels) {
		val := ""
		if parts := strings.SplitN(norm, ":", 2); len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
			val = parts[1]
		} else if c+1 < len(row) {
			val = row[c+1]
		}
		if d, ok := FirstDate(val); ok {
			m.log.Logf("meta", "date (period, row %d): %s", r, d)
			m.meta.StatementDate = d
		}
	}
}

// acceptDate takes a candidate date value, preferring a day-serial form over
// free text containing digits.
func (m *MetadataScanner) acceptDate(raw, via string, r int) {
	if d, ok := SerialDate(raw); ok {
		m.log.Logf("meta", "date (%s serial, row %d): %s", via, r, d)
		m.meta.StatementDate = d
		return
	}
	val := strings.TrimSpace(raw)
	if val != "" && digitPattern.MatchString(val) && !isHeaderLabel(val) &&
		!ContainsAny(strings.ToLower(val), dateLabels) {
		m.log.Logf("meta", "date (%s, row %d): %s", via, r, val)
		m.meta.StatementDate = val
	}
}
