package evalstore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/triage/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStore opens a store backed by a throwaway SQLite file.
func newSQLiteStore(t *testing.T) (string, *ResultStoreImpl) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewResultStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return dbPath, store.(*ResultStoreImpl)
}

// TestResultStoreLifecycle tests the full run tracking flow on SQLite.
func TestResultStoreLifecycle(t *testing.T) {
	_, store := newSQLiteStore(t)

	start := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	runID, err := store.BeginRun(start, "preds.csv", map[string]any{"max_k": 10})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	curve := []schema.HitAtKResult{
		{K: 1, Hits: 4, Total: 10, HitRate: 0.4},
		{K: 2, Hits: 7, Total: 10, HitRate: 0.7},
	}
	require.NoError(t, store.RecordHitRates(runID, curve))
	require.NoError(t, store.EndRun(runID, start.Add(2*time.Second), 10))

	t.Run("fetch runs", func(t *testing.T) {
		runs, err := store.FetchRuns()
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, runID, runs[0].RunID)
		assert.Equal(t, "preds.csv", runs[0].PredictionsPath)
		assert.Equal(t, int32(10), runs[0].TotalReports)
		assert.True(t, runs[0].StartTime.Equal(start))
		require.NotNil(t, runs[0].EndTime)
		require.NotNil(t, runs[0].ConfigParams)
		assert.Contains(t, *runs[0].ConfigParams, "max_k")
	})

	t.Run("fetch hit rates", func(t *testing.T) {
		rates, err := store.FetchHitRates()
		require.NoError(t, err)
		require.Len(t, rates, 2)
		assert.Equal(t, int32(1), rates[0].K)
		assert.Equal(t, 0.7, rates[1].HitRate)
	})

	t.Run("status reflects data", func(t *testing.T) {
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.True(t, status.Connected)
		assert.Equal(t, 1, status.TotalRuns)
		assert.Equal(t, runID, status.LastRunID)
		assert.Equal(t, int64(2), status.TableSizes[hitRatesTable])
	})
}

// TestResultStoreNoneBackend tests that the no-op store swallows everything.
func TestResultStoreNoneBackend(t *testing.T) {
	store, err := NewResultStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(time.Now(), "preds.csv", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	require.NoError(t, store.RecordHitRates(runID, []schema.HitAtKResult{{K: 1}}))
	require.NoError(t, store.EndRun(runID, time.Now(), 0))

	runs, err := store.FetchRuns()
	require.NoError(t, err)
	assert.Nil(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

// TestResultStoreMultipleRuns tests ordering of fetched runs.
func TestResultStoreMultipleRuns(t *testing.T) {
	_, store := newSQLiteStore(t)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	first, err := store.BeginRun(base, "a.csv", nil)
	require.NoError(t, err)
	second, err := store.BeginRun(base.Add(time.Hour), "b.csv", nil)
	require.NoError(t, err)

	runs, err := store.FetchRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, second, runs[0].RunID)
	assert.Equal(t, first, runs[1].RunID)
}

// TestClearRuns tests SQLite file removal.
func TestClearRuns(t *testing.T) {
	dbPath, store := newSQLiteStore(t)
	require.NoError(t, store.Close())

	require.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))

	t.Run("missing file is fine", func(t *testing.T) {
		assert.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, ""))
	})

	t.Run("empty path rejected", func(t *testing.T) {
		assert.Error(t, ClearRuns(schema.SQLiteBackend, "", ""))
	})

	t.Run("none backend is a no-op", func(t *testing.T) {
		assert.NoError(t, ClearRuns(schema.NoneBackend, "", ""))
	})
}

// TestInitStores tests the global manager setup.
func TestInitStores(t *testing.T) {
	t.Run("idempotent setup", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test
		dbPath := filepath.Join(t.TempDir(), "runs.db")

		err1 := InitStores(schema.SQLiteBackend, dbPath)
		err2 := InitStores(schema.SQLiteBackend, dbPath)

		assert.NoError(t, err1, "First init should not fail")
		assert.NoError(t, err2, "Second init should not fail")
		assert.NotNil(t, Manager.GetResultStore(), "Result store should not be nil")

		CloseStores()
		CloseStores()
	})

	t.Run("none backend", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(schema.NoneBackend, "")
		assert.NoError(t, err)
		assert.NotNil(t, Manager.GetResultStore())

		CloseStores()
	})
}
