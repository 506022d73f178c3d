package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/streamlens/internal/model"
)

// dbFileName is the catalog database file name inside the data directory.
const dbFileName = "streamlens.db"

// CatalogDB provides SQLite-based storage for imported content records and
// saved report runs.
//
// Design decision: We use a single database file holding both the catalog
// and the run history rather than separate files. The catalog is small
// (thousands of rows) and keeping everything together simplifies backup and
// the history queries that join a run back to its dataset size.
type CatalogDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures CatalogDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a CatalogDB inside the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*CatalogDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (run 'streamlens import' first)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to prevent creating new files and
	// mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY during bulk imports.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cdb := &CatalogDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := cdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return cdb, nil
}

// Close closes the database connection.
func (cdb *CatalogDB) Close() error {
	return cdb.db.Close()
}

// Path returns the path of the underlying database file.
func (cdb *CatalogDB) Path() string {
	return cdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (cdb *CatalogDB) createTables() error {
	schema := `
	-- Contents mirror the source CSV column-for-column, keyed by show_id
	-- "cast" is quoted: it is a reserved word in SQLite
	CREATE TABLE IF NOT EXISTS contents (
		show_id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		director TEXT,
		"cast" TEXT,
		country TEXT,
		date_added TEXT,
		release_year INTEGER NOT NULL,
		rating TEXT,
		duration TEXT,
		listed_in TEXT,
		description TEXT,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_contents_type ON contents(type);
	CREATE INDEX IF NOT EXISTS idx_contents_year ON contents(release_year);

	-- Report runs store each executed report with its parameters and result
	CREATE TABLE IF NOT EXISTS report_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		report TEXT NOT NULL,
		params_json TEXT,
		result_json TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_report ON report_runs(report);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON report_runs(timestamp);
	`

	_, err := cdb.db.ExecContext(context.Background(), schema)
	return err
}

// ImportRecords upserts records into the catalog and returns the number of
// rows written. A record with an existing show_id replaces the stored row.
func (cdb *CatalogDB) ImportRecords(ctx context.Context, records []model.ContentRecord) (int, error) {
	tx, err := cdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
	INSERT INTO contents (show_id, type, title, director, "cast", country, date_added, release_year, rating, duration, listed_in, description)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(show_id) DO UPDATE SET
		type = excluded.type,
		title = excluded.title,
		director = excluded.director,
		"cast" = excluded."cast",
		country = excluded.country,
		date_added = excluded.date_added,
		release_year = excluded.release_year,
		rating = excluded.rating,
		duration = excluded.duration,
		listed_in = excluded.listed_in,
		description = excluded.description,
		imported_at = CURRENT_TIMESTAMP
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare import statement: %w", err)
	}
	defer stmt.Close() //nolint:errcheck // close error is irrelevant after exec

	count := 0
	for _, record := range records {
		if _, err := stmt.ExecContext(ctx,
			record.ID,
			record.Kind.String(),
			record.Title,
			record.Director,
			record.Cast,
			record.Countries,
			record.DateAdded,
			record.ReleaseYear,
			record.Rating,
			record.Duration,
			record.Genres,
			record.Description,
		); err != nil {
			return count, fmt.Errorf("failed to import record %s: %w", record.ID, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	return count, nil
}

// LoadRecords returns every catalog record in show_id order.
func (cdb *CatalogDB) LoadRecords(ctx context.Context) ([]model.ContentRecord, error) {
	query := `
	SELECT show_id, type, title, director, "cast", country, date_added, release_year, rating, duration, listed_in, description
	FROM contents
	ORDER BY show_id
	`

	rows, err := cdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	defer rows.Close()

	var records []model.ContentRecord
	for rows.Next() {
		var record model.ContentRecord
		var kind string

		if err := rows.Scan(
			&record.ID,
			&kind,
			&record.Title,
			&record.Director,
			&record.Cast,
			&record.Countries,
			&record.DateAdded,
			&record.ReleaseYear,
			&record.Rating,
			&record.Duration,
			&record.Genres,
			&record.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		parsed, err := model.ParseKind(kind)
		if err != nil {
			// Skip rows imported with a kind this version no longer knows
			continue
		}
		record.Kind = parsed
		records = append(records, record)
	}

	return records, rows.Err()
}

// CountRecords returns the number of catalog records.
func (cdb *CatalogDB) CountRecords(ctx context.Context) (int, error) {
	var count int
	if err := cdb.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contents").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// SaveReportRun stores one executed report with its parameters and result.
func (cdb *CatalogDB) SaveReportRun(ctx context.Context, name string, params any, table *model.ResultTable) error {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to serialize report parameters: %w", err)
	}

	resultJSON, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to serialize report result: %w", err)
	}

	query := `
	INSERT INTO report_runs (report, params_json, result_json, row_count)
	VALUES (?, ?, ?, ?)
	`

	if _, err := cdb.db.ExecContext(ctx, query,
		name,
		string(paramsJSON),
		string(resultJSON),
		table.Len(),
	); err != nil {
		return fmt.Errorf("failed to save report run: %w", err)
	}

	return nil
}

// ReportRunMetadata contains summary information about a saved report run.
// This is used for displaying run history without loading the full result.
type ReportRunMetadata struct {
	// ID is the unique identifier of the run in the database.
	ID int64

	// Report is the report name.
	Report string

	// RowCount is the number of rows the report produced.
	RowCount int

	// Timestamp is when the report was run.
	Timestamp time.Time
}

// ListReportNames returns the distinct report names with saved runs.
func (cdb *CatalogDB) ListReportNames(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT report FROM report_runs
	ORDER BY report
	`

	rows, err := cdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list report names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan report name: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// GetRunHistory retrieves run metadata, newest first. When report is empty
// the history covers every report.
func (cdb *CatalogDB) GetRunHistory(ctx context.Context, report string) ([]ReportRunMetadata, error) {
	query := `
	SELECT id, report, row_count, timestamp
	FROM report_runs
	WHERE 1=1
	`
	args := make([]any, 0, 1)

	if report != "" {
		query += " AND report = ?"
		args = append(args, report)
	}

	query += " ORDER BY timestamp DESC"

	rows, err := cdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get run history: %w", err)
	}
	defer rows.Close()

	var results []ReportRunMetadata
	for rows.Next() {
		var meta ReportRunMetadata
		var timestamp string

		if err := rows.Scan(&meta.ID, &meta.Report, &meta.RowCount, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan run metadata: %w", err)
		}

		meta.Timestamp = parseTimestamp(timestamp)
		results = append(results, meta)
	}

	return results, rows.Err()
}

// GetRunResult retrieves the stored result table of a run by its database ID.
// Returns nil without error when no run has that ID.
func (cdb *CatalogDB) GetRunResult(ctx context.Context, id int64) (*model.ResultTable, error) {
	query := `
	SELECT result_json FROM report_runs
	WHERE id = ?
	`

	var resultJSON string
	err := cdb.db.QueryRowContext(ctx, query, id).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run result: %w", err)
	}

	var table model.ResultTable
	if err := json.Unmarshal([]byte(resultJSON), &table); err != nil {
		return nil, fmt.Errorf("failed to parse run result: %w", err)
	}

	return &table, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
