package schedule

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pmakowski/twinsight/internal/domain"
)

// ErrMalformedSchedule is wrapped by every structural error found while
// building a schedule. Load-time errors are fatal: a hierarchy with inverted
// dates or dangling parents cannot be reasoned about.
var ErrMalformedSchedule = errors.New("malformed schedule")

// Schedule is an immutable snapshot of the planned hierarchy, stored as an
// arena: nodes live in a flat slice and reference children by index, so
// traversal and aggregation need no call-stack recursion.
type Schedule struct {
	nodes    []domain.PlannedNode
	children [][]int
	index    map[string]int
	roots    []int
}

// Build constructs a Schedule from a flat node set. It fails with an error
// wrapping ErrMalformedSchedule when a node's planned end precedes its start,
// a parent reference does not resolve, levels do not nest
// activity → operation → action, or IDs collide.
func Build(nodes []domain.PlannedNode) (*Schedule, error) {
	s := &Schedule{
		nodes:    make([]domain.PlannedNode, len(nodes)),
		children: make([][]int, len(nodes)),
		index:    make(map[string]int, len(nodes)),
	}
	copy(s.nodes, nodes)

	for i, n := range s.nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: node %d has empty id", ErrMalformedSchedule, i)
		}
		if _, dup := s.index[n.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node id %q", ErrMalformedSchedule, n.ID)
		}
		if !domain.ValidNodeLevels[string(n.Level)] {
			return nil, fmt.Errorf("%w: node %q has unknown level %q", ErrMalformedSchedule, n.ID, n.Level)
		}
		if n.PlannedEnd.Before(n.PlannedStart) {
			return nil, fmt.Errorf("%w: node %q planned end %s precedes start %s",
				ErrMalformedSchedule, n.ID, n.PlannedEnd.Format("2006-01-02"), n.PlannedStart.Format("2006-01-02"))
		}
		s.index[n.ID] = i
	}

	for i, n := range s.nodes {
		if n.ParentID == nil {
			if n.Level != domain.LevelActivity {
				return nil, fmt.Errorf("%w: %s node %q has no parent", ErrMalformedSchedule, n.Level, n.ID)
			}
			s.roots = append(s.roots, i)
			continue
		}
		pi, ok := s.index[*n.ParentID]
		if !ok {
			return nil, fmt.Errorf("%w: node %q references missing parent %q", ErrMalformedSchedule, n.ID, *n.ParentID)
		}
		parent := s.nodes[pi]
		if domain.ChildLevel(parent.Level) != n.Level {
			return nil, fmt.Errorf("%w: %s node %q cannot parent %s node %q",
				ErrMalformedSchedule, parent.Level, parent.ID, n.Level, n.ID)
		}
		s.children[pi] = append(s.children[pi], i)
	}

	byOrder := func(idx []int) {
		sort.SliceStable(idx, func(a, b int) bool {
			return s.nodes[idx[a]].OrderIndex < s.nodes[idx[b]].OrderIndex
		})
	}
	byOrder(s.roots)
	for i := range s.children {
		byOrder(s.children[i])
	}

	return s, nil
}

// Len returns the number of nodes in the schedule.
func (s *Schedule) Len() int { return len(s.nodes) }

// Node returns the node with the given id.
func (s *Schedule) Node(id string) (domain.PlannedNode, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.PlannedNode{}, false
	}
	return s.nodes[i], true
}

// Contains reports whether id belongs to the schedule.
func (s *Schedule) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Activities returns the top-level activities in declared order.
func (s *Schedule) Activities() []domain.PlannedNode {
	out := make([]domain.PlannedNode, 0, len(s.roots))
	for _, i := range s.roots {
		out = append(out, s.nodes[i])
	}
	return out
}

// Children returns the ordered children of the node with the given id.
func (s *Schedule) Children(id string) []domain.PlannedNode {
	i, ok := s.index[id]
	if !ok {
		return nil
	}
	out := make([]domain.PlannedNode, 0, len(s.children[i]))
	for _, ci := range s.children[i] {
		out = append(out, s.nodes[ci])
	}
	return out
}

// Traverse returns the full hierarchy in pre-order: each activity, then its
// operations, then each operation's actions. Every call yields a fresh
// slice, so iteration is restartable and finite.
func (s *Schedule) Traverse() []domain.PlannedNode {
	out := make([]domain.PlannedNode, 0, len(s.nodes))
	stack := make([]int, 0, len(s.nodes))
	for i := len(s.roots) - 1; i >= 0; i-- {
		stack = append(stack, s.roots[i])
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, s.nodes[top])
		kids := s.children[top]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return out
}

// PostOrder returns the hierarchy children-first, the order the aggregator
// folds in: every node appears after all of its descendants.
func (s *Schedule) PostOrder() []domain.PlannedNode {
	pre := s.Traverse()
	out := make([]domain.PlannedNode, 0, len(pre))
	// Reversing a pre-order walk that pushes children left-to-right yields a
	// valid post-order for aggregation (parents after children).
	for i := len(pre) - 1; i >= 0; i-- {
		out = append(out, pre[i])
	}
	return out
}
