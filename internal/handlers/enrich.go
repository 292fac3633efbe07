package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/litmap-app/litmap/internal/models"
)

type enrichRequest struct {
	Books       []models.Book `json:"books"`
	SkipLookups bool          `json:"skip_lookups"`
}

// HandleEnrich runs the pipeline over the posted books and stores the result
// as a new run. With skip_lookups the books only get summarized, no external
// calls are made.
func (h *Handler) HandleEnrich(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req enrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Books) == 0 {
		h.writeError(w, "No books provided", http.StatusBadRequest)
		return
	}

	books := req.Books
	if !req.SkipLookups {
		books = h.enricher.Enrich(r.Context(), books)
	}

	run := &models.EnrichmentRun{
		ID:        fmt.Sprintf("run_%d", time.Now().UnixNano()),
		Books:     books,
		Summary:   h.enricher.Summarize(books),
		CreatedAt: time.Now(),
	}
	h.runStore.Set(run.ID, run)

	slog.Info("Enrichment run stored", "run_id", run.ID, "books", len(books), "skip_lookups", req.SkipLookups)
	h.writeJSON(w, run)
}
