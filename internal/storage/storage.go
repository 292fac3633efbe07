package storage

import (
	"sync"

	"github.com/litmap-app/litmap/internal/models"
)

type RunStore struct {
	runs map[string]*models.EnrichmentRun
	mu   sync.RWMutex
}

func New() *RunStore {
	return &RunStore{
		runs: make(map[string]*models.EnrichmentRun),
	}
}

func (s *RunStore) Get(runID string) (*models.EnrichmentRun, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, exists := s.runs[runID]
	return run, exists
}

func (s *RunStore) Set(runID string, run *models.EnrichmentRun) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[runID] = run
}

func (s *RunStore) GetAll() map[string]*models.EnrichmentRun {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*models.EnrichmentRun, len(s.runs))
	for k, v := range s.runs {
		result[k] = v
	}
	return result
}

func (s *RunStore) Delete(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, runID)
}
