package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pmakowski/twinsight/internal/domain"
)

const dateLayout = "2006-01-02"

// plannedNodeColumns is the canonical SELECT column list for planned_nodes.
const plannedNodeColumns = `id, parent_id, title, level, order_index,
		planned_start, planned_end, created_at, updated_at`

// SQLitePlannedNodeRepo implements PlannedNodeRepo using a SQLite database.
type SQLitePlannedNodeRepo struct {
	db *sql.DB
}

// NewSQLitePlannedNodeRepo creates a new SQLitePlannedNodeRepo.
func NewSQLitePlannedNodeRepo(db *sql.DB) *SQLitePlannedNodeRepo {
	return &SQLitePlannedNodeRepo{db: db}
}

func (r *SQLitePlannedNodeRepo) Create(ctx context.Context, n *domain.PlannedNode) error {
	query := `INSERT INTO planned_nodes (id, parent_id, title, level, order_index,
		planned_start, planned_end, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		nullableString(n.ParentID),
		n.Title,
		string(n.Level),
		n.OrderIndex,
		n.PlannedStart.Format(dateLayout),
		n.PlannedEnd.Format(dateLayout),
		n.CreatedAt.Format(time.RFC3339),
		n.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting planned node: %w", err)
	}
	return nil
}

func (r *SQLitePlannedNodeRepo) GetByID(ctx context.Context, id string) (*domain.PlannedNode, error) {
	query := `SELECT ` + plannedNodeColumns + ` FROM planned_nodes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	n, err := scanPlannedNode(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("planned node: %w", ErrNotFound)
		}
		return nil, err
	}
	return n, nil
}

func (r *SQLitePlannedNodeRepo) ListAll(ctx context.Context) ([]*domain.PlannedNode, error) {
	query := `SELECT ` + plannedNodeColumns + ` FROM planned_nodes ORDER BY level, order_index, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing planned nodes: %w", err)
	}
	defer rows.Close()
	return collectPlannedNodes(rows)
}

func (r *SQLitePlannedNodeRepo) ListByLevel(ctx context.Context, level domain.NodeLevel) ([]*domain.PlannedNode, error) {
	query := `SELECT ` + plannedNodeColumns + ` FROM planned_nodes WHERE level = ? ORDER BY order_index, id`
	rows, err := r.db.QueryContext(ctx, query, string(level))
	if err != nil {
		return nil, fmt.Errorf("listing planned nodes by level: %w", err)
	}
	defer rows.Close()
	return collectPlannedNodes(rows)
}

func (r *SQLitePlannedNodeRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM planned_nodes`); err != nil {
		return fmt.Errorf("clearing planned nodes: %w", err)
	}
	return nil
}

func (r *SQLitePlannedNodeRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM planned_nodes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting planned nodes: %w", err)
	}
	return count, nil
}

func collectPlannedNodes(rows *sql.Rows) ([]*domain.PlannedNode, error) {
	var nodes []*domain.PlannedNode
	for rows.Next() {
		n, err := scanPlannedNode(rows.Scan)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating planned nodes: %w", err)
	}
	return nodes, nil
}

func scanPlannedNode(scan func(dest ...any) error) (*domain.PlannedNode, error) {
	var n domain.PlannedNode
	var parentID sql.NullString
	var levelStr, startStr, endStr, createdAtStr, updatedAtStr string

	err := scan(&n.ID, &parentID, &n.Title, &levelStr, &n.OrderIndex,
		&startStr, &endStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning planned node: %w", err)
	}

	n.Level = domain.NodeLevel(levelStr)
	if parentID.Valid {
		n.ParentID = &parentID.String
	}

	if n.PlannedStart, err = time.Parse(dateLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing planned_start: %w", err)
	}
	if n.PlannedEnd, err = time.Parse(dateLayout, endStr); err != nil {
		return nil, fmt.Errorf("parsing planned_end: %w", err)
	}
	if n.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if n.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &n, nil
}
