package scan

import (
	"regexp"
	"strings"
)

// Customer codes are the letter X followed by exactly six digits. Matching is
// case-insensitive; extracted codes are normalized to uppercase.
var (
	codePattern       = regexp.MustCompile(`(?i)X\d{6}`)
	strictCodePattern = regexp.MustCompile(`(?i)^X\d{6}$`)
	// A code embedded in a longer string, bounded by non-word characters
	// (e.g. "MA_GD:541541323|X039209,...").
	embeddedCodePattern = regexp.MustCompile(`(?i)(?:^|[^0-9A-Za-z_])(X\d{6})(?:[^0-9A-Za-z_]|$)`)
)

// NormalizeCode trims and uppercases a code. Idempotent.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// FindCode returns the first code found anywhere in s.
func FindCode(s string) (string, bool) {
	m := codePattern.FindString(s)
	if m == "" {
		return "", false
	}
	return NormalizeCode(m), true
}

// StrictCode matches only when the whole trimmed cell is a code.
func StrictCode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strictCodePattern.MatchString(s) {
		return "", false
	}
	return NormalizeCode(s), true
}

// EmbeddedCode finds a code inside a longer string, preferring matches with
// clear boundaries, and falling back to a bare substring match.
func EmbeddedCode(s string) (string, bool) {
	if m := embeddedCodePattern.FindStringSubmatch(s); m != nil {
		return NormalizeCode(m[1]), true
	}
	return FindCode(s)
}

// IsBareCode reports whether the raw cell itself is a code. The fallback
// matcher uses this as a loose code-column signal.
func IsBareCode(s string) bool {
	_, ok := StrictCode(s)
	return ok
}

// AllCodes returns every code in the text, in order of first appearance, with
// duplicates removed.
func AllCodes(text string) []string {
	var codes []string
	seen := make(map[string]bool)
	for _, m := range codePattern.FindAllString(text, -1) {
		code := NormalizeCode(m)
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	return codes
}
