package evalstore

import (
	"time"

	"github.com/huangsam/triage/internal/contract"
	"github.com/huangsam/triage/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetResultStore implements the StoreManager interface.
func (m *MockStoreManager) GetResultStore() contract.ResultStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ResultStore)
	return store
}

// MockResultStore is a mock implementation of ResultStore for testing.
type MockResultStore struct {
	mock.Mock
}

var _ contract.ResultStore = &MockResultStore{} // Compile-time check

// BeginRun implements the ResultStore interface.
func (m *MockResultStore) BeginRun(startTime time.Time, predictionsPath string, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, predictionsPath, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the ResultStore interface.
func (m *MockResultStore) EndRun(runID int64, endTime time.Time, totalReports int) error {
	args := m.Called(runID, endTime, totalReports)
	return args.Error(0)
}

// RecordHitRates implements the ResultStore interface.
func (m *MockResultStore) RecordHitRates(runID int64, results []schema.HitAtKResult) error {
	args := m.Called(runID, results)
	return args.Error(0)
}

// FetchRuns implements the ResultStore interface.
func (m *MockResultStore) FetchRuns() ([]schema.EvalRunRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.EvalRunRecord)
	return records, args.Error(1)
}

// FetchHitRates implements the ResultStore interface.
func (m *MockResultStore) FetchHitRates() ([]schema.HitRateRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.HitRateRecord)
	return records, args.Error(1)
}

// GetStatus implements the ResultStore interface.
func (m *MockResultStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the ResultStore interface.
func (m *MockResultStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
