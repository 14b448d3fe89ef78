// Package datastore persists named datasets across runs.
package datastore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"
)

// datasetsTable is the name of the table for dataset storage.
const datasetsTable = "chartgeom_datasets"

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// StoreManagerImpl manages the DatasetStore instance.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointer during initialization
	datasets     contract.DatasetStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetDatasetStore returns the dataset store.
func (mgr *StoreManagerImpl) GetDatasetStore() contract.DatasetStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.datasets
}

// GetDBFilePath returns the path to the SQLite DB file for dataset storage.
func GetDBFilePath() string {
	return contract.GetStoreDBFilePath()
}

// InitStore initializes the global store manager. backend can be empty to
// disable persistence entirely.
func InitStore(backend schema.StoreBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		if backend == "" {
			return
		}
		store, err := NewDatasetStore(datasetsTable, backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize dataset store: %w", err)
			return
		}
		Manager.datasets = store
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStore should be called on application shutdown.
func CloseStore() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.datasets != nil {
			_ = Manager.datasets.Close()
		}
	})
}

// ClearStore removes all stored datasets for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearStore(backend schema.StoreBackend, dbFilePath, connStr string) error {
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
		return dropSQLTable("mysql", connStr, datasetsTable)

	case schema.PostgreSQLBackend:
		return dropSQLTable("pgx", connStr, datasetsTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// dropSQLTable connects to the SQL database and drops the table if it exists.
func dropSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
