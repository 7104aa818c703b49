package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"property-data-pipeline/internal/model"
)

var db *sql.DB

// InitDB opens the run registry and creates its tables if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			code_a TEXT,
			code_b TEXT,
			status TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS run_errors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			error_message TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS run_step_metrics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			seq INTEGER,
			step TEXT,
			rows_before INTEGER,
			rows_after INTEGER,
			columns_before INTEGER,
			columns_after INTEGER,
			note TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS output_files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			file_name TEXT,
			file_path TEXT,
			row_count INTEGER,
			file_size INTEGER,
			created_at DATETIME
		);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// SaveRun stores a new pipeline run.
func SaveRun(runID string, cfg model.RunConfig) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO runs (id, code_a, code_b, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, cfg.CodeA, cfg.CodeB, "pending", now, now)
	return err
}

// UpdateRunStatus updates a run's status.
func UpdateRunStatus(runID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SaveRunError records an error for a run.
func SaveRunError(runID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, err.Error(), now)
	return e
}

// SaveStepMetrics stores the ordered per-step metrics of a run.
func SaveStepMetrics(runID string, metrics []model.StepMetric) error {
	for i, m := range metrics {
		_, err := db.Exec(`INSERT INTO run_step_metrics
			(run_id, seq, step, rows_before, rows_after, columns_before, columns_after, note)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i, m.Step, m.RowsBefore, m.RowsAfter, m.ColumnsBefore, m.ColumnsAfter, m.Note)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetStepMetrics returns a run's step metrics in execution order.
func GetStepMetrics(runID string) ([]model.StepMetric, error) {
	rows, err := db.Query(`SELECT step, rows_before, rows_after, columns_before, columns_after, note
		FROM run_step_metrics WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []model.StepMetric
	for rows.Next() {
		var m model.StepMetric
		if err := rows.Scan(&m.Step, &m.RowsBefore, &m.RowsAfter, &m.ColumnsBefore, &m.ColumnsAfter, &m.Note); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// ListRuns returns all runs with basic info.
func ListRuns() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]interface{}
	for rows.Next() {
		var id, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]interface{}{
			"id":        id,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRun fetches a run's codes and status.
func GetRun(runID string) (map[string]interface{}, error) {
	var codeA, codeB, status string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT code_a, code_b, status, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&codeA, &codeB, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":        runID,
		"code_a":    codeA,
		"code_b":    codeB,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}

// GetRunErrors returns the error messages recorded for a run.
func GetRunErrors(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM run_errors WHERE run_id = ? ORDER BY created_at`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errs []map[string]interface{}
	for rows.Next() {
		var msg string
		var createdAt time.Time
		if err := rows.Scan(&msg, &createdAt); err != nil {
			return nil, err
		}
		errs = append(errs, map[string]interface{}{
			"message":   msg,
			"createdAt": createdAt,
		})
	}
	return errs, rows.Err()
}

// SaveOutputFile records a produced output file.
func SaveOutputFile(runID, fileName, filePath string, rowCount int, fileSize int64) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO output_files (run_id, file_name, file_path, row_count, file_size, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		runID, fileName, filePath, rowCount, fileSize, now)
	return err
}

// GetOutputFiles returns the output files recorded for a run.
func GetOutputFiles(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT file_name, file_path, row_count, file_size, created_at
		FROM output_files WHERE run_id = ? ORDER BY created_at`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []map[string]interface{}
	for rows.Next() {
		var name, path string
		var rowCount int
		var size int64
		var createdAt time.Time
		if err := rows.Scan(&name, &path, &rowCount, &size, &createdAt); err != nil {
			return nil, err
		}
		files = append(files, map[string]interface{}{
			"file_name":  name,
			"file_path":  path,
			"row_count":  rowCount,
			"file_size":  size,
			"created_at": createdAt,
		})
	}
	return files, rows.Err()
}
