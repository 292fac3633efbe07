// Package authors handles normalization and splitting of author name strings
// from reading-history exports.
package authors

import "strings"

// Normalize canonicalizes an author name for use as a cache or equality key.
// It is never used for display. Normalizing an already-normalized key returns
// it unchanged.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// wordSeparators are multi-author separators that only count when surrounded
// by spaces, so names like "Anderson" are not split on "and".
var wordSeparators = []string{" and ", " with "}

// Split breaks a raw multi-author field into individual display names.
// Goodreads and StoryGraph both pack co-authors, translators and narrators
// into a single cell, e.g. "Jane Doe, John Smith (Translator) & Ann Lee".
// Input order is preserved; callers merge results into a set.
func Split(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := []string{raw}
	for _, sep := range []string{",", "&", "+", ";", "/"} {
		parts = splitAll(parts, sep, false)
	}
	for _, sep := range wordSeparators {
		parts = splitAll(parts, sep, true)
	}

	names := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(stripAnnotations(p))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func splitAll(parts []string, sep string, caseInsensitive bool) []string {
	var out []string
	for _, p := range parts {
		if caseInsensitive {
			out = append(out, splitFold(p, sep)...)
			continue
		}
		out = append(out, strings.Split(p, sep)...)
	}
	return out
}

// splitFold splits s on sep ignoring case, keeping the original text of each
// segment intact.
func splitFold(s, sep string) []string {
	lower := strings.ToLower(s)
	lowerSep := strings.ToLower(sep)

	var out []string
	for {
		i := strings.Index(lower, lowerSep)
		if i < 0 {
			out = append(out, s)
			return out
		}
		out = append(out, s[:i])
		s = s[i+len(sep):]
		lower = lower[i+len(lowerSep):]
	}
}

// stripAnnotations removes parenthesized roles such as "(Translator)" or
// "(Goodreads Author)".
func stripAnnotations(s string) string {
	for {
		open := strings.Index(s, "(")
		if open < 0 {
			return s
		}
		close := strings.Index(s[open:], ")")
		if close < 0 {
			return s[:open]
		}
		s = s[:open] + s[open+close+1:]
	}
}
