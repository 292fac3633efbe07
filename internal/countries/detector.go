package countries

import (
	"sort"
	"strings"
)

// DetectFromText scans free text (subject strings, place names, descriptions)
// for country mentions and returns the matching canonical country names,
// sorted and deduplicated. Matching is lower-cased substring containment over
// each country's name and keyword list; the first hit for a country stops
// scanning that country's remaining keywords. Pure and offline; substring
// false positives (e.g. a city name inside an unrelated word) are a known
// limitation of the heuristic.
func (v *Vocabulary) DetectFromText(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var matches []string
	for i := range v.records {
		rec := &v.records[i]
		if strings.Contains(lower, strings.ToLower(rec.Name)) {
			matches = append(matches, rec.Name)
			continue
		}
		for _, kw := range rec.Keywords {
			if strings.Contains(lower, kw) {
				matches = append(matches, rec.Name)
				break
			}
		}
	}

	sort.Strings(matches)
	return matches
}

// DetectNationality scans text known to be a biography or nationality blurb
// for demonym adjectives ("Colombian", "Japanese") and returns the matching
// canonical country names, sorted and deduplicated.
func (v *Vocabulary) DetectNationality(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var matches []string
	for i := range v.records {
		rec := &v.records[i]
		for _, d := range rec.Demonyms {
			if strings.Contains(lower, d) {
				matches = append(matches, rec.Name)
				break
			}
		}
	}

	sort.Strings(matches)
	return matches
}
