package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pmakowski/twinsight/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type PlannedNodeRepo interface {
	Create(ctx context.Context, n *domain.PlannedNode) error
	GetByID(ctx context.Context, id string) (*domain.PlannedNode, error)
	ListAll(ctx context.Context) ([]*domain.PlannedNode, error)
	ListByLevel(ctx context.Context, level domain.NodeLevel) ([]*domain.PlannedNode, error)
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

type EvidenceRepo interface {
	Create(ctx context.Context, r *domain.EvidenceRecord) error
	Update(ctx context.Context, r *domain.EvidenceRecord) error
	GetByID(ctx context.Context, id string) (*domain.EvidenceRecord, error)
	// GetByNodeAndSource finds the record a prior ingest of the same scan
	// produced, the key the skip-if-exists rule is evaluated on.
	GetByNodeAndSource(ctx context.Context, nodeID, source string) (*domain.EvidenceRecord, error)
	ListAll(ctx context.Context) ([]*domain.EvidenceRecord, error)
	ListSince(ctx context.Context, since time.Time) ([]*domain.EvidenceRecord, error)
	ListByNode(ctx context.Context, nodeID string) ([]*domain.EvidenceRecord, error)
	Delete(ctx context.Context, id string) error
}

type SessionLogRepo interface {
	Append(ctx context.Context, e *domain.SessionLogEntry) error
	ListByOp(ctx context.Context, op domain.SessionOp) ([]*domain.SessionLogEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.SessionLogEntry, error)
}
