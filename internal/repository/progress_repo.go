package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lingolab/internal/database"
	"lingolab/internal/models"
)

// ProgressRepository stores one saved payload per learner and slot
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Load returns the payload saved for learnerID in slot, or nil if none exists
func (r *ProgressRepository) Load(ctx context.Context, learnerID, slot string) ([]byte, error) {
	query := `SELECT payload FROM learner_progress WHERE learner_id = ? AND slot = ?`

	var payload string
	err := r.db.QueryRowContext(ctx, query, learnerID, slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

// Save overwrites the slot; the last writer wins
func (r *ProgressRepository) Save(ctx context.Context, learnerID, slot string, payload []byte, at time.Time) error {
	_, err := r.db.ExecContext(ctx, r.db.Dialect.UpsertProgressQuery(), learnerID, slot, string(payload), at.UTC())
	return err
}

// Delete removes a saved slot
func (r *ProgressRepository) Delete(ctx context.Context, learnerID, slot string) error {
	query := "DELETE FROM learner_progress WHERE learner_id = ? AND slot = ?"
	_, err := r.db.ExecContext(ctx, query, learnerID, slot)
	return err
}

// DeleteAll clears every saved record and reports how many were removed
func (r *ProgressRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM learner_progress")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// List returns every saved record, oldest first
func (r *ProgressRepository) List(ctx context.Context) ([]models.ProgressRecord, error) {
	query := `
		SELECT learner_id, slot, payload, updated_at
		FROM learner_progress
		ORDER BY updated_at, learner_id, slot
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.ProgressRecord{}
	for rows.Next() {
		var rec models.ProgressRecord
		if err := rows.Scan(&rec.LearnerID, &rec.Slot, &rec.Payload, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Import writes records in a single transaction
func (r *ProgressRepository) Import(ctx context.Context, records []models.ProgressRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, r.db.Dialect.RewriteQuery(r.db.Dialect.UpsertProgressQuery()))
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.LearnerID, rec.Slot, rec.Payload, rec.UpdatedAt.UTC()); err != nil {
			return fmt.Errorf("failed to import %s/%s: %w", rec.LearnerID, rec.Slot, err)
		}
	}
	return tx.Commit()
}
