// Package contract provides interfaces and shared utilities for the triage
// CLI's internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/triage/schema"
)

// ResultStore defines the interface for tracking evaluation runs and storing
// Hit@K curves. This allows mocking the store for testing.
type ResultStore interface {
	// BeginRun creates a new evaluation run and returns its unique ID
	BeginRun(startTime time.Time, predictionsPath string, configParams map[string]any) (int64, error)

	// EndRun updates the evaluation run with completion data
	EndRun(runID int64, endTime time.Time, totalReports int) error

	// RecordHitRates stores the full Hit@K curve for a run
	RecordHitRates(runID int64, results []schema.HitAtKResult) error

	// FetchRuns returns all recorded runs, newest first
	FetchRuns() ([]schema.EvalRunRecord, error)

	// FetchHitRates returns all recorded Hit@K rows
	FetchHitRates() ([]schema.HitRateRecord, error)

	// GetStatus returns status information about the results store
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection
	Close() error
}

// StoreManager defines the interface for managing the results store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetResultStore() ResultStore
}
