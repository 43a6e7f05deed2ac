package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/delega-dev/delega/pkg/models"
)

// SaveRun inserts or updates a run record.
func (db *DB) SaveRun(rec *models.RunRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	var completedAt any
	if rec.CompletedAt != nil {
		completedAt = rec.CompletedAt.UTC()
	}

	_, err := db.conn.Exec(`
		INSERT INTO runs (id, goal, model, status, plan_json, result_json, error, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			plan_json = excluded.plan_json,
			result_json = excluded.result_json,
			error = excluded.error,
			completed_at = excluded.completed_at
	`, rec.ID, rec.Goal, rec.Model, string(rec.Status), rec.PlanJSON, rec.ResultJSON, rec.Error,
		rec.StartedAt.UTC(), completedAt)
	if err != nil {
		return fmt.Errorf("save run %s: %w", rec.ID, err)
	}

	return nil
}

// GetRun retrieves a run record by ID.
// Returns nil without error if no record exists.
func (db *DB) GetRun(id string) (*models.RunRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	row := db.conn.QueryRow(`
		SELECT id, goal, model, status, plan_json, result_json, error, started_at, completed_at
		FROM runs WHERE id = ?
	`, id)

	rec, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return rec, nil
}

// ListRuns returns up to limit run records, newest first.
// A non-positive limit returns all records.
func (db *DB) ListRuns(limit int) ([]*models.RunRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	query := `
		SELECT id, goal, model, status, plan_json, result_json, error, started_at, completed_at
		FROM runs ORDER BY started_at DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []*models.RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return records, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*models.RunRecord, error) {
	var rec models.RunRecord
	var status string
	var model, planJSON, resultJSON, runErr sql.NullString
	var startedAt time.Time
	var completedAt sql.NullTime

	if err := s.Scan(&rec.ID, &rec.Goal, &model, &status, &planJSON, &resultJSON, &runErr, &startedAt, &completedAt); err != nil {
		return nil, err
	}

	rec.Model = model.String
	rec.Status = models.RunStatus(status)
	rec.PlanJSON = planJSON.String
	rec.ResultJSON = resultJSON.String
	rec.Error = runErr.String
	rec.StartedAt = startedAt
	if completedAt.Valid {
		t := completedAt.Time
		rec.CompletedAt = &t
	}

	return &rec, nil
}
