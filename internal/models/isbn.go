package models

import "strings"

// CleanISBN normalizes a raw ISBN cell from a reading-history export into a
// bare 13-digit ISBN-13, or returns the empty string when no valid ISBN is
// present. Goodreads wraps ISBNs in spreadsheet formula quoting (`="978..."`),
// and both export formats may carry hyphens or spaces.
func CleanISBN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "=")
	s = strings.Trim(s, `"`)

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	isbn := digits.String()
	if len(isbn) != 13 {
		return ""
	}
	if !strings.HasPrefix(isbn, "978") && !strings.HasPrefix(isbn, "979") {
		return ""
	}
	return isbn
}
