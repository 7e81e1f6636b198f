package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

// PostgresJournal keeps the shift record of every confirmed mutation.
type PostgresJournal struct {
	DB *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{DB: db}
}

func (j *PostgresJournal) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pos_journal (
			id BIGSERIAL PRIMARY KEY,
			kind TEXT NOT NULL,
			reference TEXT NOT NULL,
			employee_id TEXT NOT NULL DEFAULT '',
			amount NUMERIC(12, 2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS pos_journal_created_at_idx ON pos_journal (created_at)",
	}

	for _, stmt := range statements {
		if _, err := j.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (j *PostgresJournal) Record(ctx context.Context, entry *domain.JournalEntry) error {
	return j.DB.QueryRowContext(ctx, `
		INSERT INTO pos_journal (kind, reference, employee_id, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, entry.Kind, entry.Reference, entry.EmployeeID, entry.Amount).
		Scan(&entry.ID, &entry.CreatedAt)
}

func (j *PostgresJournal) ListSince(ctx context.Context, since time.Time) ([]domain.JournalEntry, error) {
	rows, err := j.DB.QueryContext(ctx, `
		SELECT id, kind, reference, employee_id, amount, created_at
		FROM pos_journal
		WHERE created_at >= $1
		ORDER BY created_at DESC, id DESC
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var entry domain.JournalEntry
		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.Reference, &entry.EmployeeID, &entry.Amount, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
