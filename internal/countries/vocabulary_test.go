package countries

import "testing"

func TestNewVocabulary(t *testing.T) {
	v, err := NewVocabulary()
	if err != nil {
		t.Fatalf("NewVocabulary failed: %v", err)
	}
	if len(v.Records()) == 0 {
		t.Fatal("expected non-empty country table")
	}
}

func TestResolve(t *testing.T) {
	v, err := NewVocabulary()
	if err != nil {
		t.Fatalf("NewVocabulary failed: %v", err)
	}

	tests := []struct {
		name     string
		token    string
		expected string // expected ISO2, "" for no match
	}{
		{name: "iso2", token: "FR", expected: "FR"},
		{name: "iso2 lowercase", token: "jp", expected: "JP"},
		{name: "iso3", token: "COL", expected: "CO"},
		{name: "canonical name", token: "Czech Republic", expected: "CZ"},
		{name: "canonical name case insensitive", token: "czech republic", expected: "CZ"},
		{name: "alias", token: "Czechia", expected: "CZ"},
		{name: "two letter alias falls through iso2", token: "UK", expected: "GB"},
		{name: "three letter alias falls through iso3", token: "UAE", expected: "AE"},
		{name: "historical alias", token: "Persia", expected: "IR"},
		{name: "whitespace trimmed", token: "  Japan  ", expected: "JP"},
		{name: "no fuzzy matching", token: "Frnace", expected: ""},
		{name: "unknown", token: "Atlantis", expected: ""},
		{name: "empty", token: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ToISO2(tt.token)
			if result != tt.expected {
				t.Errorf("ToISO2(%q) = %q, want %q", tt.token, result, tt.expected)
			}
		})
	}
}

func TestDisplayNameAndFlag(t *testing.T) {
	v, err := NewVocabulary()
	if err != nil {
		t.Fatalf("NewVocabulary failed: %v", err)
	}

	if name := v.DisplayName("CO"); name != "Colombia" {
		t.Errorf("DisplayName(CO) = %q, want Colombia", name)
	}
	if flag := v.Flag("Japan"); flag != "🇯🇵" {
		t.Errorf("Flag(Japan) = %q", flag)
	}
	if flag := v.Flag("nowhere"); flag != "" {
		t.Errorf("Flag(nowhere) = %q, want empty", flag)
	}
}

func TestRenderNameRoundTrip(t *testing.T) {
	v, err := NewVocabulary()
	if err != nil {
		t.Fatalf("NewVocabulary failed: %v", err)
	}

	// Every override entry must be invertible.
	for canonical := range renderNameOverrides {
		render := v.CanonicalToRenderName(canonical)
		if render == canonical {
			t.Errorf("override for %q did not change the name", canonical)
		}
		back := v.RenderNameToCanonical(render)
		if back != canonical {
			t.Errorf("round trip for %q: got %q via %q", canonical, back, render)
		}
	}

	// Identity for everything outside the table.
	for _, rec := range v.Records() {
		if _, overridden := renderNameOverrides[rec.Name]; overridden {
			continue
		}
		if render := v.CanonicalToRenderName(rec.Name); render != rec.Name {
			t.Errorf("CanonicalToRenderName(%q) = %q, want identity", rec.Name, render)
		}
		if back := v.RenderNameToCanonical(rec.Name); back != rec.Name {
			t.Errorf("RenderNameToCanonical(%q) = %q, want identity", rec.Name, back)
		}
	}
}

func TestTableQuality(t *testing.T) {
	v, err := NewVocabulary()
	if err != nil {
		t.Fatalf("NewVocabulary failed: %v", err)
	}

	for _, rec := range v.Records() {
		if len(rec.ISO2) != 2 {
			t.Errorf("%s: ISO2 %q is not two letters", rec.Name, rec.ISO2)
		}
		if len(rec.ISO3) != 3 {
			t.Errorf("%s: ISO3 %q is not three letters", rec.Name, rec.ISO3)
		}
		if rec.Flag == "" {
			t.Errorf("%s: missing flag glyph", rec.Name)
		}
		if len(rec.Demonyms) == 0 {
			t.Errorf("%s: missing demonyms", rec.Name)
		}
		// Every record must resolve back to itself through each spelling.
		for _, token := range []string{rec.ISO2, rec.ISO3, rec.Name} {
			if got := v.ToISO2(token); got != rec.ISO2 {
				t.Errorf("ToISO2(%q) = %q, want %q", token, got, rec.ISO2)
			}
		}
	}
}
