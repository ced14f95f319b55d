package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/pmakowski/twinsight/internal/domain"
)

// BaseDate anchors all fixture dates so tests can reason in day offsets.
var BaseDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

// Day returns BaseDate plus n days.
func Day(n int) time.Time {
	return BaseDate.AddDate(0, 0, n)
}

// DayPtr returns a pointer to Day(n).
func DayPtr(n int) *time.Time {
	d := Day(n)
	return &d
}

// NodeOption mutates a fixture planned node.
type NodeOption func(*domain.PlannedNode)

func WithTitle(title string) NodeOption {
	return func(n *domain.PlannedNode) {
		n.Title = title
	}
}

func WithOrderIndex(i int) NodeOption {
	return func(n *domain.PlannedNode) {
		n.OrderIndex = i
	}
}

// NewPlannedNode builds a planned node spanning [Day(startDay), Day(endDay)].
func NewPlannedNode(id string, level domain.NodeLevel, parentID *string, startDay, endDay int, opts ...NodeOption) domain.PlannedNode {
	now := time.Now().UTC()
	n := domain.PlannedNode{
		ID:           id,
		ParentID:     parentID,
		Title:        id,
		Level:        level,
		PlannedStart: Day(startDay),
		PlannedEnd:   Day(endDay),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// NewEvidence builds an evidence record captured on Day(day).
func NewEvidence(nodeID string, day int, contribution float64, source string) domain.EvidenceRecord {
	return domain.EvidenceRecord{
		ID:           uuid.New().String(),
		NodeID:       nodeID,
		CapturedAt:   Day(day),
		Contribution: contribution,
		Source:       source,
		CreatedAt:    time.Now().UTC(),
	}
}

// StrPtr is a shorthand for tests that need *string parent IDs.
func StrPtr(s string) *string {
	return &s
}

// SimpleSchedule returns a minimal three-level schedule:
//
//	act1 [0,10]
//	└── op1 [0,10]
//	    ├── task1 [0,5]
//	    └── task2 [5,10]
func SimpleSchedule() []domain.PlannedNode {
	return []domain.PlannedNode{
		NewPlannedNode("act1", domain.LevelActivity, nil, 0, 10),
		NewPlannedNode("op1", domain.LevelOperation, StrPtr("act1"), 0, 10),
		NewPlannedNode("task1", domain.LevelAction, StrPtr("op1"), 0, 5, WithOrderIndex(0)),
		NewPlannedNode("task2", domain.LevelAction, StrPtr("op1"), 5, 10, WithOrderIndex(1)),
	}
}
