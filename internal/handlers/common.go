package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/litmap-app/litmap/internal/countries"
	"github.com/litmap-app/litmap/internal/models"
	"github.com/litmap-app/litmap/internal/storage"
)

// Enricher runs the enrichment pipeline over a book list.
type Enricher interface {
	Enrich(ctx context.Context, books []models.Book) []models.Book
	Summarize(books []models.Book) models.Summary
}

type Handler struct {
	runStore *storage.RunStore
	enricher Enricher
	vocab    *countries.Vocabulary
}

func New(enricher Enricher, vocab *countries.Vocabulary) *Handler {
	return &Handler{
		runStore: storage.New(),
		enricher: enricher,
		vocab:    vocab,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Run helpers
func (h *Handler) getRunOrError(w http.ResponseWriter, runID string) (*models.EnrichmentRun, bool) {
	run, exists := h.runStore.Get(runID)
	if !exists {
		h.writeError(w, "Run not found", http.StatusNotFound)
		return nil, false
	}
	return run, true
}
