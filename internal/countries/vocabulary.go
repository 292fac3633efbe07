// Package countries holds the canonical country table and every lookup path
// the pipeline uses to turn free text, knowledge-graph labels or codes into
// ISO 3166-1 alpha-2 country codes.
package countries

import (
	"fmt"
	"strings"
)

// renderNameOverrides maps a country's canonical name to the admin name used
// by the map renderer's feature data, for the handful of countries where the
// two differ. Everything else renders under its canonical name.
var renderNameOverrides = map[string]string{
	"United States":            "United States of America",
	"Czech Republic":           "Czechia",
	"DR Congo":                 "Democratic Republic of the Congo",
	"Central African Republic": "Central African Rep.",
	"Equatorial Guinea":        "Eq. Guinea",
	"Bosnia and Herzegovina":   "Bosnia and Herz.",
	"North Macedonia":          "Macedonia",
	"Eswatini":                 "eSwatini",
	"South Sudan":              "S. Sudan",
}

// Vocabulary is the indexed country table. Built once via NewVocabulary and
// read-only afterwards, so it is safe for concurrent use.
type Vocabulary struct {
	records []CountryRecord

	byISO2  map[string]*CountryRecord
	byISO3  map[string]*CountryRecord
	byName  map[string]*CountryRecord
	byAlias map[string]*CountryRecord

	renderToCanonical map[string]string
}

// NewVocabulary indexes the static country table. Overlapping aliases or
// non-invertible render-name overrides are data-quality errors and fail the
// build rather than surfacing at lookup time.
func NewVocabulary() (*Vocabulary, error) {
	v := &Vocabulary{
		records:           table,
		byISO2:            make(map[string]*CountryRecord, len(table)),
		byISO3:            make(map[string]*CountryRecord, len(table)),
		byName:            make(map[string]*CountryRecord, len(table)),
		byAlias:           make(map[string]*CountryRecord),
		renderToCanonical: make(map[string]string, len(renderNameOverrides)),
	}

	for i := range v.records {
		rec := &v.records[i]

		iso2 := strings.ToLower(rec.ISO2)
		if _, exists := v.byISO2[iso2]; exists {
			return nil, fmt.Errorf("duplicate ISO2 code %q", rec.ISO2)
		}
		v.byISO2[iso2] = rec

		iso3 := strings.ToLower(rec.ISO3)
		if _, exists := v.byISO3[iso3]; exists {
			return nil, fmt.Errorf("duplicate ISO3 code %q", rec.ISO3)
		}
		v.byISO3[iso3] = rec

		name := strings.ToLower(rec.Name)
		if _, exists := v.byName[name]; exists {
			return nil, fmt.Errorf("duplicate country name %q", rec.Name)
		}
		v.byName[name] = rec

		for _, alias := range rec.Aliases {
			alias = strings.ToLower(alias)
			if other, exists := v.byAlias[alias]; exists {
				return nil, fmt.Errorf("alias %q claimed by both %s and %s", alias, other.ISO2, rec.ISO2)
			}
			if other, exists := v.byName[alias]; exists && other != rec {
				return nil, fmt.Errorf("alias %q of %s shadows country %s", alias, rec.ISO2, other.ISO2)
			}
			v.byAlias[alias] = rec
		}
	}

	for canonical, render := range renderNameOverrides {
		if _, ok := v.byName[strings.ToLower(canonical)]; !ok {
			return nil, fmt.Errorf("render-name override for unknown country %q", canonical)
		}
		if _, exists := v.renderToCanonical[render]; exists {
			return nil, fmt.Errorf("render name %q maps to multiple countries", render)
		}
		v.renderToCanonical[render] = canonical
	}

	return v, nil
}

// Records returns the full country list in table order.
func (v *Vocabulary) Records() []CountryRecord {
	return v.records
}

// Resolve looks a token up as an ISO2 code, an ISO3 code, a canonical name, or
// an alias, in that order. Matching is case-insensitive and exact; there is no
// fuzzy matching. Returns false when nothing matches.
func (v *Vocabulary) Resolve(token string) (*CountryRecord, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return nil, false
	}

	if len(t) == 2 {
		if rec, ok := v.byISO2[t]; ok {
			return rec, true
		}
	}
	if len(t) == 3 {
		if rec, ok := v.byISO3[t]; ok {
			return rec, true
		}
	}
	if rec, ok := v.byName[t]; ok {
		return rec, true
	}
	if rec, ok := v.byAlias[t]; ok {
		return rec, true
	}
	return nil, false
}

// ToISO2 resolves any country spelling to its ISO2 code, or "" when unknown.
func (v *Vocabulary) ToISO2(token string) string {
	if rec, ok := v.Resolve(token); ok {
		return rec.ISO2
	}
	return ""
}

// DisplayName resolves any country spelling to its canonical display name.
func (v *Vocabulary) DisplayName(token string) string {
	if rec, ok := v.Resolve(token); ok {
		return rec.Name
	}
	return ""
}

// Flag resolves any country spelling to its flag glyph, or "" when unknown.
func (v *Vocabulary) Flag(token string) string {
	if rec, ok := v.Resolve(token); ok {
		return rec.Flag
	}
	return ""
}

// CanonicalToRenderName translates a canonical country name to the name used
// by the map renderer's feature data. Identity for countries outside the
// override table.
func (v *Vocabulary) CanonicalToRenderName(name string) string {
	if render, ok := renderNameOverrides[name]; ok {
		return render
	}
	return name
}

// RenderNameToCanonical is the inverse of CanonicalToRenderName.
func (v *Vocabulary) RenderNameToCanonical(name string) string {
	if canonical, ok := v.renderToCanonical[name]; ok {
		return canonical
	}
	return name
}
