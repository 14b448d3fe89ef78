package datastore

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/openclinic/chartgeom/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name      string
		tableName string
		wantErr   bool
	}{
		{"valid simple", "datasets", false},
		{"valid with underscore", "chartgeom_datasets", false},
		{"valid leading underscore", "_datasets", false},
		{"valid with digits", "datasets2", false},
		{"empty", "", true},
		{"leading digit", "2datasets", true},
		{"semicolon injection", "datasets; DROP TABLE x", true},
		{"quoted", `datasets"`, true},
		{"hyphen", "chart-datasets", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.tableName)
			if tt.wantErr {
				assert.Error(t, err, "validateTableName should error for %q", tt.tableName)
			} else {
				assert.NoError(t, err, "validateTableName should not error for %q", tt.tableName)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	tests := []struct {
		name      string
		tableName string
		backend   schema.StoreBackend
		want      string
	}{
		{"sqlite", "chartgeom_datasets", schema.SQLiteBackend, `"chartgeom_datasets"`},
		{"mysql", "chartgeom_datasets", schema.MySQLBackend, "`chartgeom_datasets`"},
		{"postgresql", "chartgeom_datasets", schema.PostgreSQLBackend, `"chartgeom_datasets"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quoteTableName(tt.tableName, tt.backend)
			assert.Equal(t, tt.want, got, "quoteTableName(%q, %q)", tt.tableName, tt.backend)
		})
	}
}

func TestGetCreateTableQuery(t *testing.T) {
	tests := []struct {
		name     string
		backend  schema.StoreBackend
		contains string
	}{
		{"sqlite payload type", schema.SQLiteBackend, "payload BLOB NOT NULL"},
		{"mysql payload type", schema.MySQLBackend, "payload MEDIUMBLOB NOT NULL"},
		{"postgresql payload type", schema.PostgreSQLBackend, "payload BYTEA NOT NULL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := getCreateTableQuery(datasetsTable, tt.backend)
			assert.Contains(t, query, "CREATE TABLE IF NOT EXISTS")
			assert.Contains(t, query, tt.contains)
		})
	}
}

func TestGetUpsertQuery(t *testing.T) {
	tests := []struct {
		name     string
		backend  schema.StoreBackend
		contains string
	}{
		{"sqlite", schema.SQLiteBackend, "INSERT OR REPLACE INTO"},
		{"mysql", schema.MySQLBackend, "ON DUPLICATE KEY UPDATE"},
		{"postgresql", schema.PostgreSQLBackend, "ON CONFLICT (dataset_name) DO UPDATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &DatasetStoreImpl{tableName: datasetsTable, backend: tt.backend}
			assert.Contains(t, store.getUpsertQuery(), tt.contains)
		})
	}
}

func TestObservationCount(t *testing.T) {
	tests := []struct {
		name    string
		dataset schema.Dataset
		want    int
	}{
		{
			name: "categorical points",
			dataset: schema.Dataset{
				Points: []schema.DataPoint{{Label: "a", Value: 1}, {Label: "b", Value: 2}},
			},
			want: 2,
		},
		{
			name: "series group",
			dataset: schema.Dataset{
				Group: schema.SeriesGroup{
					Series: []schema.MultiSeries{
						{Name: "s1", Data: []float64{1, 2, 3}},
						{Name: "s2", Data: []float64{4, 5, 6}},
					},
				},
			},
			want: 6,
		},
		{
			name: "matrix cells",
			dataset: schema.Dataset{
				Matrix: [][]float64{{1, 2}, {3}},
			},
			want: 3,
		},
		{
			name:    "empty dataset",
			dataset: schema.Dataset{},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, observationCount(&tt.dataset))
		})
	}
}

func TestNoneBackendStore(t *testing.T) {
	store, err := NewDatasetStore(datasetsTable, schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Save is a silent no-op
	err = store.Save(&schema.Dataset{Name: "beds", Kind: schema.PieKind})
	assert.NoError(t, err)

	// Load never finds anything
	_, err = store.Load("beds")
	assert.Error(t, err)

	// List and Delete are no-ops
	infos, err := store.List()
	assert.NoError(t, err)
	assert.Empty(t, infos)
	assert.NoError(t, store.Delete("beds"))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.NoneBackend, status.Backend)
	assert.Zero(t, status.DatasetCount)
}

func TestNewDatasetStoreInvalidInputs(t *testing.T) {
	_, err := NewDatasetStore("bad name!", schema.SQLiteBackend, "")
	assert.Error(t, err)

	_, err = NewDatasetStore(datasetsTable, schema.StoreBackend("oracle"), "")
	assert.Error(t, err)
}

func TestSQLiteRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "datasets.db")

	store, err := NewDatasetStore(datasetsTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	original := &schema.Dataset{
		Name: "bed-occupancy",
		Kind: schema.PieKind,
		Points: []schema.DataPoint{
			{Label: "Occupied", Value: 60, Color: "#3b82f6"},
			{Label: "Available", Value: 40},
		},
	}
	require.NoError(t, store.Save(original))

	loaded, err := store.Load("bed-occupancy")
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	// Saving under the same name replaces the payload
	original.Points[0].Value = 70
	require.NoError(t, store.Save(original))

	loaded, err = store.Load("bed-occupancy")
	require.NoError(t, err)
	assert.Equal(t, 70.0, loaded.Points[0].Value)

	infos, err := store.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "bed-occupancy", infos[0].Name)
	assert.Equal(t, schema.PieKind, infos[0].Kind)
	assert.Equal(t, 2, infos[0].PointLen)
	assert.Positive(t, infos[0].SizeBytes)
	assert.False(t, infos[0].UpdatedAt.IsZero())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.Equal(t, dbPath, status.Location)
	assert.Equal(t, 1, status.DatasetCount)

	require.NoError(t, store.Delete("bed-occupancy"))
	_, err = store.Load("bed-occupancy")
	assert.Error(t, err)
}

func TestSQLiteSaveEmptyName(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "datasets.db")

	store, err := NewDatasetStore(datasetsTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	err = store.Save(&schema.Dataset{Kind: schema.PieKind})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be empty")
}

func TestSQLiteDeleteMissing(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "datasets.db")

	store, err := NewDatasetStore(datasetsTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	err = store.Delete("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteListOrdering(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "datasets.db")

	store, err := NewDatasetStore(datasetsTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, store.Save(&schema.Dataset{
			Name:   name,
			Kind:   schema.SparkKind,
			Points: []schema.DataPoint{{Label: "x", Value: 1}},
		}))
	}

	infos, err := store.List()
	require.NoError(t, err)
	require.Len(t, infos, 3)

	var names []string
	for _, info := range infos {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestClearStoreSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "datasets.db")

	store, err := NewDatasetStore(datasetsTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, ClearStore(schema.SQLiteBackend, dbPath, ""))
	// Clearing again is fine; the file is already gone
	require.NoError(t, ClearStore(schema.SQLiteBackend, dbPath, ""))

	err = ClearStore(schema.SQLiteBackend, "", "")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "cannot be empty"))
}

func TestClearStoreNone(t *testing.T) {
	assert.NoError(t, ClearStore(schema.NoneBackend, "", ""))
	assert.Error(t, ClearStore(schema.StoreBackend("oracle"), "", ""))
}
