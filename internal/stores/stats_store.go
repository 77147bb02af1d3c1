// Package stores provides the persisted per-category performance stats.
// All backends keep the serialized category -> record mapping under the
// same fixed namespace; unreadable storage is treated as an empty mapping
// and never blocks test-taking.
package stores

import (
	"context"
	"sync"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
)

// Namespace is the fixed key the stats mapping is stored under.
const Namespace = "cdl-stats"

// StatsStore records completed-session scores per category.
type StatsStore interface {
	// Record folds one completed attempt into the category's record,
	// creating the record on first use.
	Record(ctx context.Context, categoryID string, percentage int, passed bool) error

	// All returns the full category -> record mapping for display.
	All(ctx context.Context) (map[string]models.StatsRecord, error)
}

// MemoryStore is the in-process StatsStore used in tests and as the
// fallback when no persistent backend is configured.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]models.StatsRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]models.StatsRecord)}
}

func (s *MemoryStore) Record(ctx context.Context, categoryID string, percentage int, passed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.records[categoryID]
	rec.Apply(percentage, passed)
	s.records[categoryID] = rec
	return nil
}

func (s *MemoryStore) All(ctx context.Context) (map[string]models.StatsRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.StatsRecord, len(s.records))
	for id, rec := range s.records {
		out[id] = rec
	}
	return out, nil
}
