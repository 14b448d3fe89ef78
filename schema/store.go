package schema

import "time"

// DatasetInfo summarizes one stored dataset without its payload.
type DatasetInfo struct {
	Name      string    `json:"name"`
	Kind      ChartKind `json:"kind"`
	PointLen  int       `json:"point_len"` // Number of observations in the payload
	SizeBytes int64     `json:"size_bytes"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreStatus reports health information about the dataset store.
type StoreStatus struct {
	Backend      StoreBackend `json:"backend"`
	Location     string       `json:"location"` // File path or redacted DSN
	DatasetCount int          `json:"dataset_count"`
	SizeBytes    int64        `json:"size_bytes"` // -1 when the backend cannot report it
}
