package citystore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"
	_ "github.com/go-sql-driver/mysql"   // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"   // PostgreSQL driver
	_ "modernc.org/sqlite"               // SQLite driver
)

// SnapshotStoreImpl handles durable city snapshot storage using various
// database backends.
type SnapshotStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.StoreBackend
	driverName string
	connStr    string
}

var _ contract.SnapshotStore = &SnapshotStoreImpl{} // Compile-time check

// NewSnapshotStore initializes and returns a new SnapshotStore based on the backend type.
func NewSnapshotStore(tableName string, backend schema.StoreBackend, connStr string) (contract.SnapshotStore, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
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
		return &SnapshotStoreImpl{
			db:        nil,
			tableName: tableName,
			backend:   backend,
			connStr:   connStr,
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
	query := getCreateSnapshotsQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &SnapshotStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// getCreateSnapshotsQuery returns the CREATE TABLE query for the given backend.
func getCreateSnapshotsQuery(tableName string, backend schema.StoreBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				city_id VARCHAR(255) PRIMARY KEY,
				city_doc BLOB NOT NULL,
				doc_version INT NOT NULL,
				fetched_at BIGINT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				city_id TEXT PRIMARY KEY,
				city_doc BYTEA NOT NULL,
				doc_version INTEGER NOT NULL,
				fetched_at BIGINT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				city_id TEXT PRIMARY KEY,
				city_doc BLOB NOT NULL,
				doc_version INTEGER NOT NULL,
				fetched_at INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// Get retrieves a city snapshot document by ID from the store.
func (ss *SnapshotStoreImpl) Get(id string) ([]byte, int, int64, error) {
	// Return not found error for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, 0, 0, sql.ErrNoRows
	}

	var value []byte
	var version int
	var ts int64

	// Use backend-specific placeholder
	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	placeholder := ss.getPlaceholder()
	query := fmt.Sprintf(`SELECT city_doc, doc_version, fetched_at FROM %s WHERE city_id = %s`, quotedTableName, placeholder)
	row := ss.db.QueryRow(query, id)

	if err := row.Scan(&value, &version, &ts); err != nil {
		return nil, 0, 0, err
	}
	return value, version, ts, nil
}

// Set inserts or replaces a city snapshot document in the store.
func (ss *SnapshotStoreImpl) Set(id string, value []byte, version int, timestamp int64) error {
	// Skip for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}

	// Use backend-specific UPSERT
	query := ss.getUpsertQuery()
	_, err := ss.db.Exec(query, id, value, version, timestamp)
	return err
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ss *SnapshotStoreImpl) getPlaceholder() string {
	switch ss.backend {
	case schema.PostgreSQLBackend:
		return "$1"
	default: // SQLite and MySQL
		return "?"
	}
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ss *SnapshotStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(ss.tableName, ss.backend)
	switch ss.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (city_id, city_doc, doc_version, fetched_at) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE city_doc = new.city_doc, doc_version = new.doc_version, fetched_at = new.fetched_at`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (city_id, city_doc, doc_version, fetched_at) VALUES ($1, $2, $3, $4)
			ON CONFLICT (city_id) DO UPDATE SET city_doc = EXCLUDED.city_doc, doc_version = EXCLUDED.doc_version, fetched_at = EXCLUDED.fetched_at`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (city_id, city_doc, doc_version, fetched_at) VALUES (?, ?, ?, ?)`, quotedTableName)
	}
}

// Close closes the underlying DB connection.
func (ss *SnapshotStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}

// GetStatus returns status information about the snapshot store.
func (ss *SnapshotStoreImpl) GetStatus() (schema.SnapshotStatus, error) {
	status := schema.SnapshotStatus{
		Backend:   ss.backend,
		Connected: ss.db != nil,
	}

	if ss.backend == schema.NoneBackend || ss.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(ss.tableName, ss.backend)

	// Get total cities
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	row := ss.db.QueryRow(countQuery)
	if err := row.Scan(&status.TotalCities); err != nil {
		return status, fmt.Errorf("failed to get total cities: %w", err)
	}

	if status.TotalCities == 0 {
		return status, nil
	}

	// Get newest snapshot time
	newestQuery := fmt.Sprintf("SELECT MAX(fetched_at) FROM %s", quotedTableName)
	row = ss.db.QueryRow(newestQuery)
	var newestTs int64
	if err := row.Scan(&newestTs); err != nil {
		return status, fmt.Errorf("failed to get newest snapshot time: %w", err)
	}
	status.NewestSnapshot = time.Unix(newestTs, 0)

	// Get oldest snapshot time
	oldestQuery := fmt.Sprintf("SELECT MIN(fetched_at) FROM %s", quotedTableName)
	row = ss.db.QueryRow(oldestQuery)
	var oldestTs int64
	if err := row.Scan(&oldestTs); err != nil {
		return status, fmt.Errorf("failed to get oldest snapshot time: %w", err)
	}
	status.OldestSnapshot = time.Unix(oldestTs, 0)

	return status, nil
}
