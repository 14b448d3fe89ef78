package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/openclinic/chartgeom/internal/contract"
	"github.com/openclinic/chartgeom/schema"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver
)

// DatasetStoreImpl handles dataset persistence using various database backends.
type DatasetStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.StoreBackend
	driverName string
	connStr    string
}

var _ contract.DatasetStore = &DatasetStoreImpl{} // Compile-time check

// NewDatasetStore initializes and returns a new DatasetStore based on the backend type.
func NewDatasetStore(tableName string, backend schema.StoreBackend, connStr string) (contract.DatasetStore, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite3"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		connStr = dbPath

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled persistence
		return &DatasetStoreImpl{
			db:         nil,
			tableName:  tableName,
			backend:    backend,
			driverName: "",
			connStr:    connStr,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &DatasetStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// validateTableName checks that a table name is safe to interpolate into SQL.
func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	matched, err := regexp.MatchString(`^[a-zA-Z_][a-zA-Z0-9_]*$`, name)
	if err != nil {
		return fmt.Errorf("error validating table name: %w", err)
	}
	if !matched {
		return fmt.Errorf("invalid table name: %s (must match pattern ^[a-zA-Z_][a-zA-Z0-9_]*$)", name)
	}
	return nil
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.StoreBackend) string {
	switch backend {
	case schema.PostgreSQLBackend:
		return fmt.Sprintf("\"%s\"", name)
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite
		return fmt.Sprintf("\"%s\"", name)
	}
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(tableName string, backend schema.StoreBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				dataset_name VARCHAR(255) PRIMARY KEY,
				dataset_kind VARCHAR(50) NOT NULL,
				payload MEDIUMBLOB NOT NULL,
				point_len INT NOT NULL,
				size_bytes BIGINT NOT NULL,
				updated_at DATETIME(6) NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				dataset_name TEXT PRIMARY KEY,
				dataset_kind TEXT NOT NULL,
				payload BYTEA NOT NULL,
				point_len INTEGER NOT NULL,
				size_bytes BIGINT NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				dataset_name TEXT PRIMARY KEY,
				dataset_kind TEXT NOT NULL,
				payload BLOB NOT NULL,
				point_len INTEGER NOT NULL,
				size_bytes INTEGER NOT NULL,
				updated_at TEXT NOT NULL
			);
		`, quotedTableName)
	}
}

// observationCount returns the number of observations in whichever payload
// field the dataset carries.
func observationCount(ds *schema.Dataset) int {
	if len(ds.Points) > 0 {
		return len(ds.Points)
	}
	if n := ds.Group.Len(); n > 0 {
		return n * len(ds.Group.Series)
	}
	cells := 0
	for _, row := range ds.Matrix {
		cells += len(row)
	}
	return cells
}

// Save upserts a dataset under its name.
func (ds *DatasetStoreImpl) Save(dataset *schema.Dataset) error {
	// Skip for NoneBackend
	if ds.backend == schema.NoneBackend || ds.db == nil {
		return nil
	}
	if dataset.Name == "" {
		return fmt.Errorf("dataset name cannot be empty")
	}

	payload, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset %q: %w", dataset.Name, err)
	}

	query := ds.getUpsertQuery()
	_, err = ds.db.Exec(query, dataset.Name, string(dataset.Kind), payload,
		observationCount(dataset), int64(len(payload)), formatTime(time.Now(), ds.backend))
	if err != nil {
		return fmt.Errorf("failed to save dataset %q: %w", dataset.Name, err)
	}
	return nil
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ds *DatasetStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(ds.tableName, ds.backend)
	switch ds.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (dataset_name, dataset_kind, payload, point_len, size_bytes, updated_at) VALUES (?, ?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE dataset_kind = new.dataset_kind, payload = new.payload, point_len = new.point_len, size_bytes = new.size_bytes, updated_at = new.updated_at`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (dataset_name, dataset_kind, payload, point_len, size_bytes, updated_at) VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (dataset_name) DO UPDATE SET dataset_kind = EXCLUDED.dataset_kind, payload = EXCLUDED.payload, point_len = EXCLUDED.point_len, size_bytes = EXCLUDED.size_bytes, updated_at = EXCLUDED.updated_at`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (dataset_name, dataset_kind, payload, point_len, size_bytes, updated_at) VALUES (?, ?, ?, ?, ?, ?)`, quotedTableName)
	}
}

// Load fetches a dataset by name.
func (ds *DatasetStoreImpl) Load(name string) (*schema.Dataset, error) {
	// Return not found error for NoneBackend
	if ds.backend == schema.NoneBackend || ds.db == nil {
		return nil, sql.ErrNoRows
	}

	// Use backend-specific placeholder
	quotedTableName := quoteTableName(ds.tableName, ds.backend)
	placeholder := ds.getPlaceholder()
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE dataset_name = %s`, quotedTableName, placeholder)
	row := ds.db.QueryRow(query, name)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("dataset %q not found: %w", name, err)
		}
		return nil, fmt.Errorf("failed to load dataset %q: %w", name, err)
	}

	var dataset schema.Dataset
	if err := json.Unmarshal(payload, &dataset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset %q: %w", name, err)
	}
	return &dataset, nil
}

// List returns summaries of all stored datasets, ordered by name.
func (ds *DatasetStoreImpl) List() ([]schema.DatasetInfo, error) {
	// Skip for NoneBackend
	if ds.backend == schema.NoneBackend || ds.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(ds.tableName, ds.backend)
	query := fmt.Sprintf(`SELECT dataset_name, dataset_kind, point_len, size_bytes, updated_at FROM %s ORDER BY dataset_name`, quotedTableName)

	rows, err := ds.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query datasets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.DatasetInfo

	for rows.Next() {
		var info schema.DatasetInfo
		var kind string

		switch ds.backend {
		case schema.SQLiteBackend:
			var updatedAtStr string
			if err := rows.Scan(&info.Name, &kind, &info.PointLen, &info.SizeBytes, &updatedAtStr); err != nil {
				return nil, fmt.Errorf("failed to scan dataset info: %w", err)
			}
			updatedAt, err := time.Parse(time.RFC3339Nano, updatedAtStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse updated_at: %w", err)
			}
			info.UpdatedAt = updatedAt
		default: // MySQL and PostgreSQL store as native datetime
			if err := rows.Scan(&info.Name, &kind, &info.PointLen, &info.SizeBytes, &info.UpdatedAt); err != nil {
				return nil, fmt.Errorf("failed to scan dataset info: %w", err)
			}
		}

		info.Kind = schema.ChartKind(kind)
		results = append(results, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating datasets: %w", err)
	}

	return results, nil
}

// Delete removes a dataset by name.
func (ds *DatasetStoreImpl) Delete(name string) error {
	// Skip for NoneBackend
	if ds.backend == schema.NoneBackend || ds.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(ds.tableName, ds.backend)
	placeholder := ds.getPlaceholder()
	query := fmt.Sprintf(`DELETE FROM %s WHERE dataset_name = %s`, quotedTableName, placeholder)

	result, err := ds.db.Exec(query, name)
	if err != nil {
		return fmt.Errorf("failed to delete dataset %q: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("dataset %q not found", name)
	}
	return nil
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ds *DatasetStoreImpl) getPlaceholder() string {
	switch ds.backend {
	case schema.PostgreSQLBackend:
		return "$1"
	default: // SQLite and MySQL
		return "?"
	}
}

// Close closes the underlying DB connection.
func (ds *DatasetStoreImpl) Close() error {
	if ds.db != nil {
		return ds.db.Close()
	}
	return nil
}

// GetStatus returns status information about the dataset store.
func (ds *DatasetStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:  ds.backend,
		Location: ds.getLocation(),
	}

	if ds.backend == schema.NoneBackend || ds.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(ds.tableName, ds.backend)

	// Get total datasets
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	row := ds.db.QueryRow(countQuery)
	if err := row.Scan(&status.DatasetCount); err != nil {
		return status, fmt.Errorf("failed to get dataset count: %w", err)
	}

	// Estimate storage size per backend; fall back to the payload sum when
	// the engine cannot report it.
	switch ds.backend {
	case schema.SQLiteBackend:
		sizeQuery := "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()"
		row = ds.db.QueryRow(sizeQuery)
		if err := row.Scan(&status.SizeBytes); err != nil {
			status.SizeBytes = ds.payloadSizeSum(quotedTableName)
		}

	case schema.MySQLBackend:
		status.SizeBytes = ds.payloadSizeSum(quotedTableName)

		cfg, err := mysql.ParseDSN(ds.connStr)
		if err != nil || cfg.DBName == "" {
			break
		}
		sizeQuery := "SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?"
		row = ds.db.QueryRow(sizeQuery, cfg.DBName, ds.tableName)
		if err := row.Scan(&status.SizeBytes); err != nil {
			status.SizeBytes = ds.payloadSizeSum(quotedTableName)
		}

	case schema.PostgreSQLBackend:
		sizeQuery := "SELECT pg_total_relation_size($1)"
		row = ds.db.QueryRow(sizeQuery, ds.tableName)
		if err := row.Scan(&status.SizeBytes); err != nil {
			status.SizeBytes = ds.payloadSizeSum(quotedTableName)
		}
	}

	return status, nil
}

// payloadSizeSum sums stored payload sizes as a rough storage estimate.
func (ds *DatasetStoreImpl) payloadSizeSum(quotedTableName string) int64 {
	var sum sql.NullInt64
	query := fmt.Sprintf("SELECT SUM(size_bytes) FROM %s", quotedTableName)
	if err := ds.db.QueryRow(query).Scan(&sum); err != nil || !sum.Valid {
		return -1
	}
	return sum.Int64
}

// getLocation returns a display string for where the store lives. Passwords
// never appear in it.
func (ds *DatasetStoreImpl) getLocation() string {
	switch ds.backend {
	case schema.SQLiteBackend:
		return ds.connStr
	case schema.MySQLBackend:
		cfg, err := mysql.ParseDSN(ds.connStr)
		if err != nil {
			return "mysql"
		}
		return fmt.Sprintf("mysql://%s/%s", cfg.Addr, cfg.DBName)
	case schema.PostgreSQLBackend:
		return "postgresql"
	default:
		return ""
	}
}

// formatTime converts a time.Time to the appropriate value for the backend.
func formatTime(t time.Time, backend schema.StoreBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return t.UTC()
	}
}
