package citystore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cityscope/cityscope/internal/contract"
	"github.com/cityscope/cityscope/schema"
)

// Table names for run tracking.
const (
	rankingRunsTable = "cityscope_ranking_runs"
	cityScoresTable  = "cityscope_city_scores"
)

// RunStoreImpl implements the RunStore interface.
type RunStoreImpl struct {
	db         *sql.DB
	backend    schema.StoreBackend
	driverName string
}

var _ contract.RunStore = &RunStoreImpl{} // Compile-time check

// NewRunStore creates a new RunStore with the specified backend.
func NewRunStore(backend schema.StoreBackend, connStr string) (contract.RunStore, error) {
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
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled tracking
		return &RunStoreImpl{
			db:      nil,
			backend: backend,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Verify the database server is running and accessible", backend, err)
	}

	// Create the table schemas
	if err := createRunTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create run tables: %w", err)
	}

	return &RunStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// createRunTables creates the run tracking tables.
func createRunTables(db *sql.DB, backend schema.StoreBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{rankingRunsTable, getCreateRankingRunsQuery(backend)},
		{cityScoresTable, getCreateCityScoresQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	return nil
}

// getCreateRankingRunsQuery returns the CREATE TABLE query for cityscope_ranking_runs.
func getCreateRankingRunsQuery(backend schema.StoreBackend) string {
	quotedTableName := quoteTableName(rankingRunsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				started_at DATETIME(6) NOT NULL,
				ended_at DATETIME(6),
				total_cities INT,
				config_params TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				started_at TIMESTAMPTZ NOT NULL,
				ended_at TIMESTAMPTZ,
				total_cities INT,
				config_params TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				started_at TEXT NOT NULL,
				ended_at TEXT,
				total_cities INTEGER,
				config_params TEXT
			);
		`, quotedTableName)
	}
}

// getCreateCityScoresQuery returns the CREATE TABLE query for cityscope_city_scores.
func getCreateCityScoresQuery(backend schema.StoreBackend) string {
	quotedTableName := quoteTableName(cityScoresTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				city_id VARCHAR(255) NOT NULL,
				city_name VARCHAR(255) NOT NULL,
				state VARCHAR(8) NOT NULL,
				total_score DOUBLE NOT NULL,
				score_climate DOUBLE NOT NULL,
				score_cost DOUBLE NOT NULL,
				score_demographics DOUBLE NOT NULL,
				score_quality_of_life DOUBLE NOT NULL,
				score_culture DOUBLE NOT NULL,
				score_entertainment DOUBLE NOT NULL,
				included BOOLEAN NOT NULL,
				exclusion_reason VARCHAR(255),
				created_at DATETIME(6) NOT NULL,
				PRIMARY KEY (run_id, city_id)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL,
				city_id TEXT NOT NULL,
				city_name TEXT NOT NULL,
				state TEXT NOT NULL,
				total_score DOUBLE PRECISION NOT NULL,
				score_climate DOUBLE PRECISION NOT NULL,
				score_cost DOUBLE PRECISION NOT NULL,
				score_demographics DOUBLE PRECISION NOT NULL,
				score_quality_of_life DOUBLE PRECISION NOT NULL,
				score_culture DOUBLE PRECISION NOT NULL,
				score_entertainment DOUBLE PRECISION NOT NULL,
				included BOOLEAN NOT NULL,
				exclusion_reason TEXT,
				created_at TIMESTAMPTZ NOT NULL,
				PRIMARY KEY (run_id, city_id)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL,
				city_id TEXT NOT NULL,
				city_name TEXT NOT NULL,
				state TEXT NOT NULL,
				total_score REAL NOT NULL,
				score_climate REAL NOT NULL,
				score_cost REAL NOT NULL,
				score_demographics REAL NOT NULL,
				score_quality_of_life REAL NOT NULL,
				score_culture REAL NOT NULL,
				score_entertainment REAL NOT NULL,
				included INTEGER NOT NULL,
				exclusion_reason TEXT,
				created_at TEXT NOT NULL,
				PRIMARY KEY (run_id, city_id)
			);
		`, quotedTableName)
	}
}

// BeginRun creates a new ranking run and returns its unique ID.
func (rs *RunStoreImpl) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return 0, nil
	}

	// Serialize config params to JSON
	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	quotedTableName := quoteTableName(rankingRunsTable, rs.backend)

	var runID int64
	switch rs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (started_at, config_params) VALUES ($1, $2) RETURNING run_id`, quotedTableName)
		err = rs.db.QueryRow(query, startTime, string(configJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (started_at, config_params) VALUES (?, ?)`, quotedTableName)
		var result sql.Result
		result, err = rs.db.Exec(query, formatTime(startTime, rs.backend), string(configJSON))
		if err != nil {
			return 0, err
		}
		runID, err = result.LastInsertId()
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert ranking run: %w", err)
	}

	return runID, nil
}

// EndRun updates the ranking run with completion data.
func (rs *RunStoreImpl) EndRun(runID int64, endTime time.Time, totalCities int) error {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(rankingRunsTable, rs.backend)

	var query string
	var args []any
	switch rs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`UPDATE %s SET ended_at = $1, total_cities = $2 WHERE run_id = $3`, quotedTableName)
		args = []any{endTime, totalCities, runID}
	default: // SQLite and MySQL
		query = fmt.Sprintf(`UPDATE %s SET ended_at = ?, total_cities = ? WHERE run_id = ?`, quotedTableName)
		args = []any{formatTime(endTime, rs.backend), totalCities, runID}
	}

	if _, err := rs.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to update ranking run: %w", err)
	}

	return nil
}

// RecordCityScore stores the final scores for one city in a run.
func (rs *RunStoreImpl) RecordCityScore(runID int64, city schema.RankedCity) error {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(cityScoresTable, rs.backend)
	now := formatTime(time.Now(), rs.backend)

	var exclusion *string
	if city.ExclusionReason != "" {
		exclusion = &city.ExclusionReason
	}

	args := []any{
		runID, city.ID, city.Name, city.State, city.Total,
		city.Categories[schema.ClimateCategory],
		city.Categories[schema.CostCategory],
		city.Categories[schema.DemographicsCategory],
		city.Categories[schema.QualityOfLifeCategory],
		city.Categories[schema.CultureCategory],
		city.Categories[schema.EntertainmentCategory],
		city.Included, exclusion, now,
	}

	var query string
	switch rs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, city_id, city_name, state, total_score,
			                score_climate, score_cost, score_demographics,
			                score_quality_of_life, score_culture, score_entertainment,
			                included, exclusion_reason, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`, quotedTableName)
	default: // SQLite and MySQL
		query = fmt.Sprintf(`
			INSERT INTO %s (run_id, city_id, city_name, state, total_score,
			                score_climate, score_cost, score_demographics,
			                score_quality_of_life, score_culture, score_entertainment,
			                included, exclusion_reason, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, quotedTableName)
	}

	if _, err := rs.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to insert city score: %w", err)
	}

	return nil
}

// Close closes the underlying connection.
func (rs *RunStoreImpl) Close() error {
	if rs.db != nil {
		return rs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the run store.
func (rs *RunStoreImpl) GetStatus() (schema.RunStatus, error) {
	status := schema.RunStatus{
		Backend:   rs.backend,
		Connected: rs.db != nil,
	}

	if rs.backend == schema.NoneBackend || rs.db == nil {
		return status, nil
	}

	// Get total runs
	runsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(rankingRunsTable, rs.backend))
	row := rs.db.QueryRow(runsQuery)
	if err := row.Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		// Get last run info
		lastRunQuery := fmt.Sprintf("SELECT run_id, started_at FROM %s ORDER BY run_id DESC LIMIT 1", quoteTableName(rankingRunsTable, rs.backend))
		row = rs.db.QueryRow(lastRunQuery)

		switch rs.backend {
		case schema.SQLiteBackend:
			var lastRunID int64
			var lastRunTimeStr string
			if err := row.Scan(&lastRunID, &lastRunTimeStr); err != nil {
				return status, fmt.Errorf("failed to get last run info: %w", err)
			}
			status.LastRunID = lastRunID
			lastRunTime, err := time.Parse(time.RFC3339Nano, lastRunTimeStr)
			if err != nil {
				return status, fmt.Errorf("failed to parse last run time: %w", err)
			}
			status.LastRunTime = lastRunTime
		default: // MySQL and PostgreSQL store as native datetime
			if err := row.Scan(&status.LastRunID, &status.LastRunTime); err != nil {
				return status, fmt.Errorf("failed to get last run info: %w", err)
			}
		}

		// Get total cities rated across runs
		citiesQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(cityScoresTable, rs.backend))
		row = rs.db.QueryRow(citiesQuery)
		if err := row.Scan(&status.TotalCitiesRated); err != nil {
			return status, fmt.Errorf("failed to get total cities rated: %w", err)
		}
	}

	return status, nil
}

// GetAllRuns retrieves all ranking runs from the store.
func (rs *RunStoreImpl) GetAllRuns() ([]schema.RunRecord, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(rankingRunsTable, rs.backend)
	query := fmt.Sprintf("SELECT run_id, started_at, ended_at, total_cities, config_params FROM %s ORDER BY run_id", quotedTableName)

	rows, err := rs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranking runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RunRecord

	for rows.Next() {
		var record schema.RunRecord
		var totalCities sql.NullInt64

		switch rs.backend {
		case schema.SQLiteBackend:
			var startedAtStr string
			var endedAtStr *string
			if err := rows.Scan(&record.RunID, &startedAtStr, &endedAtStr, &totalCities, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan ranking run: %w", err)
			}
			startedAt, err := time.Parse(time.RFC3339Nano, startedAtStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse started_at: %w", err)
			}
			record.StartedAt = startedAt
			if endedAtStr != nil {
				endedAt, err := time.Parse(time.RFC3339Nano, *endedAtStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse ended_at: %w", err)
				}
				record.EndedAt = &endedAt
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.StartedAt, &record.EndedAt, &totalCities, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan ranking run: %w", err)
			}
		}

		if totalCities.Valid {
			record.TotalCities = int(totalCities.Int64)
		}
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ranking runs: %w", err)
	}

	return results, nil
}

// GetAllCityScores retrieves all per-city score rows from the store.
func (rs *RunStoreImpl) GetAllCityScores() ([]schema.CityScoreRecord, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil, nil
	}

	quotedTableName := quoteTableName(cityScoresTable, rs.backend)
	query := fmt.Sprintf(`SELECT run_id, city_id, city_name, state, total_score,
    score_climate, score_cost, score_demographics, score_quality_of_life,
    score_culture, score_entertainment, included, exclusion_reason, created_at
    FROM %s ORDER BY run_id, city_id`, quotedTableName)

	rows, err := rs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query city scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.CityScoreRecord

	for rows.Next() {
		var record schema.CityScoreRecord

		switch rs.backend {
		case schema.SQLiteBackend:
			var createdAtStr string
			if err := rows.Scan(&record.RunID, &record.CityID, &record.CityName, &record.State,
				&record.Total, &record.Climate, &record.Cost, &record.Demographics,
				&record.QualityOfLife, &record.Culture, &record.Entertainment,
				&record.Included, &record.ExclusionReason, &createdAtStr); err != nil {
				return nil, fmt.Errorf("failed to scan city score: %w", err)
			}
			createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse created_at: %w", err)
			}
			record.CreatedAt = createdAt
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.CityID, &record.CityName, &record.State,
				&record.Total, &record.Climate, &record.Cost, &record.Demographics,
				&record.QualityOfLife, &record.Culture, &record.Entertainment,
				&record.Included, &record.ExclusionReason, &record.CreatedAt); err != nil {
				return nil, fmt.Errorf("failed to scan city score: %w", err)
			}
		}

		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating city scores: %w", err)
	}

	return results, nil
}
