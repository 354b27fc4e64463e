package evalstore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/triage/internal/contract"
	"github.com/huangsam/triage/schema"
)

// ResultStoreManager holds the process-wide result store behind a lock so
// command handlers and the MCP server share one connection.
type ResultStoreManager struct {
	sync.RWMutex
	results contract.ResultStore
}

var _ contract.StoreManager = &ResultStoreManager{} // Compile-time check

// GetResultStore returns the configured result store.
func (m *ResultStoreManager) GetResultStore() contract.ResultStore {
	m.RLock()
	defer m.RUnlock()
	return m.results
}

// Global Manager instance for main logic.
var (
	Manager   = &ResultStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for run tracking.
func GetDBFilePath() string {
	return contract.GetResultsDBFilePath()
}

// InitStores initializes the global store manager.
// backend can be empty to skip initialization entirely.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		if backend == "" {
			return
		}

		store, err := NewResultStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize run tracking: %w", err)
			return
		}

		Manager.Lock()
		Manager.results = store
		Manager.Unlock()
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.results != nil {
			_ = Manager.results.Close()
		}
	})
}

// ClearRuns clears recorded runs for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the tracking tables.
// For NoneBackend, it does nothing.
func ClearRuns(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return dropRunTables("mysql", connStr)

	case schema.PostgreSQLBackend:
		return dropRunTables("pgx", connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported backend for clearing: %s", backend)
	}
}

// dropRunTables connects to the SQL database and drops the tracking tables.
func dropRunTables(driverName, connStr string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	for _, table := range []string{hitRatesTable, evalRunsTable} {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	return nil
}
