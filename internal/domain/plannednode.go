package domain

import "time"

// PlannedNode is one entry of the as-planned hierarchy
// (activity → operation → action).
type PlannedNode struct {
	ID           string
	ParentID     *string
	Title        string
	Level        NodeLevel
	OrderIndex   int
	PlannedStart time.Time
	PlannedEnd   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PlannedDays returns the planned duration in whole days. A same-day node
// has a duration of zero.
func (n PlannedNode) PlannedDays() int {
	return DaysBetween(n.PlannedStart, n.PlannedEnd)
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed whole-day difference to − from, computed on
// calendar dates so partial days never skew the count.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}
