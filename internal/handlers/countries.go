package handlers

import (
	"net/http"
	"sort"
)

type countryMatch struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// HandleCountries runs offline country detection over the text query
// parameter, covering both place mentions and demonyms.
func (h *Handler) HandleCountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	text := r.URL.Query().Get("text")
	if text == "" {
		h.writeError(w, "Missing text parameter", http.StatusBadRequest)
		return
	}

	seen := make(map[string]bool)
	matches := []countryMatch{}
	for _, name := range append(h.vocab.DetectFromText(text), h.vocab.DetectNationality(text)...) {
		code := h.vocab.ToISO2(name)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		matches = append(matches, countryMatch{
			Code: code,
			Name: h.vocab.CanonicalToRenderName(name),
			Flag: h.vocab.Flag(code),
		})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Code < matches[j].Code })

	h.writeJSON(w, map[string]interface{}{"countries": matches})
}
