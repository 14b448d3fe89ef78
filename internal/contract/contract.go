// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/openclinic/chartgeom/schema"
)

// DatasetSource defines how chart data enters the engine. Implementations
// parse files or fetch stored datasets; the geometry layer never does I/O
// itself, so this boundary keeps core pure and testable.
type DatasetSource interface {
	// Load reads and validates a dataset from ref (a file path or stored
	// dataset name, depending on the implementation).
	Load(ref string) (*schema.Dataset, error)
}

// StoreManager defines the interface for managing the dataset store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetDatasetStore() DatasetStore
}

// DatasetStore defines the interface for named-dataset persistence.
// Geometry is never stored; only the input series that dashboards
// re-render.
type DatasetStore interface {
	// Save upserts a dataset under its name.
	Save(ds *schema.Dataset) error

	// Load fetches a dataset by name.
	Load(name string) (*schema.Dataset, error)

	// List returns summaries of all stored datasets.
	List() ([]schema.DatasetInfo, error)

	// Delete removes a dataset by name.
	Delete(name string) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}
