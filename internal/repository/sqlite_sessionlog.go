package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pmakowski/twinsight/internal/domain"
)

// SQLiteSessionLogRepo implements SessionLogRepo using a SQLite database.
// The log is append-only: lifecycle operations record every node they touch
// so an ingest or prune can be audited and reversed by hand.
type SQLiteSessionLogRepo struct {
	db *sql.DB
}

// NewSQLiteSessionLogRepo creates a new SQLiteSessionLogRepo.
func NewSQLiteSessionLogRepo(db *sql.DB) *SQLiteSessionLogRepo {
	return &SQLiteSessionLogRepo{db: db}
}

func (r *SQLiteSessionLogRepo) Append(ctx context.Context, e *domain.SessionLogEntry) error {
	query := `INSERT INTO session_logs (id, op, detail, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Op),
		e.Detail,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending session log entry: %w", err)
	}
	return nil
}

func (r *SQLiteSessionLogRepo) ListByOp(ctx context.Context, op domain.SessionOp) ([]*domain.SessionLogEntry, error) {
	query := `SELECT id, op, detail, created_at FROM session_logs WHERE op = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, string(op))
	if err != nil {
		return nil, fmt.Errorf("listing session log by op: %w", err)
	}
	defer rows.Close()
	return collectLogEntries(rows)
}

func (r *SQLiteSessionLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.SessionLogEntry, error) {
	query := `SELECT id, op, detail, created_at FROM session_logs ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent session log: %w", err)
	}
	defer rows.Close()
	return collectLogEntries(rows)
}

func collectLogEntries(rows *sql.Rows) ([]*domain.SessionLogEntry, error) {
	var entries []*domain.SessionLogEntry
	for rows.Next() {
		var e domain.SessionLogEntry
		var opStr, createdAtStr string
		if err := rows.Scan(&e.ID, &opStr, &e.Detail, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning session log entry: %w", err)
		}
		e.Op = domain.SessionOp(opStr)
		created, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		e.CreatedAt = created
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session log: %w", err)
	}
	return entries, nil
}
