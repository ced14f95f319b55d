package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pmakowski/twinsight/internal/domain"
)

// evidenceColumns is the canonical SELECT column list for evidence_records.
const evidenceColumns = `id, node_id, captured_at, contribution, source, created_at`

// SQLiteEvidenceRepo implements EvidenceRepo using a SQLite database.
//
// evidence_records carries no foreign key to planned_nodes on purpose:
// upstream ingestion may run ahead of the planned schedule, and orphaned
// records must remain storable until the schedule catches up.
type SQLiteEvidenceRepo struct {
	db *sql.DB
}

// NewSQLiteEvidenceRepo creates a new SQLiteEvidenceRepo.
func NewSQLiteEvidenceRepo(db *sql.DB) *SQLiteEvidenceRepo {
	return &SQLiteEvidenceRepo{db: db}
}

func (r *SQLiteEvidenceRepo) Create(ctx context.Context, e *domain.EvidenceRecord) error {
	query := `INSERT INTO evidence_records (id, node_id, captured_at, contribution, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.NodeID,
		e.CapturedAt.UTC().Format(time.RFC3339),
		e.Contribution,
		e.Source,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting evidence record: %w", err)
	}
	return nil
}

func (r *SQLiteEvidenceRepo) Update(ctx context.Context, e *domain.EvidenceRecord) error {
	query := `UPDATE evidence_records SET node_id = ?, captured_at = ?, contribution = ?, source = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.NodeID,
		e.CapturedAt.UTC().Format(time.RFC3339),
		e.Contribution,
		e.Source,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating evidence record: %w", err)
	}
	return nil
}

func (r *SQLiteEvidenceRepo) GetByID(ctx context.Context, id string) (*domain.EvidenceRecord, error) {
	query := `SELECT ` + evidenceColumns + ` FROM evidence_records WHERE id = ?`
	return r.getOne(ctx, query, id)
}

func (r *SQLiteEvidenceRepo) GetByNodeAndSource(ctx context.Context, nodeID, source string) (*domain.EvidenceRecord, error) {
	query := `SELECT ` + evidenceColumns + ` FROM evidence_records WHERE node_id = ? AND source = ?`
	return r.getOne(ctx, query, nodeID, source)
}

func (r *SQLiteEvidenceRepo) getOne(ctx context.Context, query string, args ...any) (*domain.EvidenceRecord, error) {
	row := r.db.QueryRowContext(ctx, query, args...)
	e, err := scanEvidence(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("evidence record: %w", ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEvidenceRepo) ListAll(ctx context.Context) ([]*domain.EvidenceRecord, error) {
	query := `SELECT ` + evidenceColumns + ` FROM evidence_records ORDER BY captured_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing evidence records: %w", err)
	}
	defer rows.Close()
	return collectEvidence(rows)
}

func (r *SQLiteEvidenceRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.EvidenceRecord, error) {
	query := `SELECT ` + evidenceColumns + ` FROM evidence_records WHERE captured_at >= ? ORDER BY captured_at, id`
	rows, err := r.db.QueryContext(ctx, query, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing evidence records since %s: %w", since.Format(time.RFC3339), err)
	}
	defer rows.Close()
	return collectEvidence(rows)
}

func (r *SQLiteEvidenceRepo) ListByNode(ctx context.Context, nodeID string) ([]*domain.EvidenceRecord, error) {
	query := `SELECT ` + evidenceColumns + ` FROM evidence_records WHERE node_id = ? ORDER BY captured_at, id`
	rows, err := r.db.QueryContext(ctx, query, nodeID)
	if err != nil {
		return nil, fmt.Errorf("listing evidence records by node: %w", err)
	}
	defer rows.Close()
	return collectEvidence(rows)
}

func (r *SQLiteEvidenceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM evidence_records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting evidence record: %w", err)
	}
	return nil
}

func collectEvidence(rows *sql.Rows) ([]*domain.EvidenceRecord, error) {
	var records []*domain.EvidenceRecord
	for rows.Next() {
		e, err := scanEvidence(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evidence records: %w", err)
	}
	return records, nil
}

func scanEvidence(scan func(dest ...any) error) (*domain.EvidenceRecord, error) {
	var e domain.EvidenceRecord
	var capturedAtStr, createdAtStr string

	err := scan(&e.ID, &e.NodeID, &capturedAtStr, &e.Contribution, &e.Source, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning evidence record: %w", err)
	}

	if e.CapturedAt, err = time.Parse(time.RFC3339, capturedAtStr); err != nil {
		return nil, fmt.Errorf("parsing captured_at: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &e, nil
}
