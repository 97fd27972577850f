// Package web provides the HTTP API for the Mood Mirror analysis service.
package web

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ksandoval/mood-mirror/internal/db"
)

// ReportStore defines the interface for report persistence.
type ReportStore interface {
	Create(ctx context.Context, report *db.Report) error
	Get(ctx context.Context, id uuid.UUID) (*db.Report, error)
}

// MemoryReportStore keeps reports in memory (for development/testing).
type MemoryReportStore struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]db.Report
}

// NewMemoryReportStore creates a new in-memory report store.
func NewMemoryReportStore() *MemoryReportStore {
	return &MemoryReportStore{
		reports: make(map[uuid.UUID]db.Report),
	}
}

// Create stores a copy of the report.
func (s *MemoryReportStore) Create(_ context.Context, report *db.Report) error {
	s.mu.Lock()
	s.reports[report.ID] = *report
	s.mu.Unlock()
	return nil
}

// Get retrieves a report by ID.
func (s *MemoryReportStore) Get(_ context.Context, id uuid.UUID) (*db.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &report, nil
}

// Ensure both stores implement ReportStore.
var (
	_ ReportStore = (*MemoryReportStore)(nil)
	_ ReportStore = (*db.ReportRepository)(nil)
)
