package reader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ReadPDFText extracts the full text of a PDF statement. Encrypted documents
// yield ErrPasswordRequired until the correct password is supplied.
func ReadPDFText(path, password string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", err
	}

	// The library calls pw repeatedly until it returns ""; offer the supplied
	// password once, then give up so a wrong password surfaces as an error.
	offered := false
	pw := func() string {
		if offered || password == "" {
			return ""
		}
		offered = true
		return password
	}

	r, err := newReader(f, fi.Size(), pw)
	if err != nil {
		if isPasswordErr(err) {
			return "", ErrPasswordRequired
		}
		return "", fmt.Errorf("pdf open failed: %w", err)
	}

	text, err := extractText(r)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no readable text could be extracted; the document may be image-based or use undecodable font encodings")
	}
	return text, nil
}

// newReader guards against parser panics inside the PDF library, which crashes
// on some malformed files.
func newReader(f *os.File, size int64, pw func() string) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("pdf library crashed: %v", rec)
		}
	}()
	return pdf.NewReaderEncrypted(f, size, pw)
}

// extractText tries row-based extraction (best layout preservation) and falls
// back to the whole-document plain text path.
func extractText(r *pdf.Reader) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("pdf text extraction crashed: %v", rec)
		}
	}()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}
	if len(pages) > 0 {
		return strings.Join(pages, "\n"), nil
	}

	plain, plainErr := r.GetPlainText()
	if plainErr != nil {
		return "", fmt.Errorf("pdf text extraction failed: %w", plainErr)
	}
	data, readErr := io.ReadAll(plain)
	if readErr != nil {
		return "", readErr
	}
	return string(data), nil
}
