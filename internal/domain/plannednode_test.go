package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateOnly(t *testing.T) {
	noon := time.Date(2026, 3, 5, 12, 34, 56, 0, time.UTC)
	assert.Equal(t, date(2026, 3, 5), DateOnly(noon))
}

func TestDateOnly_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 02:00 on the 6th in UTC+9 is still the 5th in UTC.
	local := time.Date(2026, 3, 6, 2, 0, 0, 0, loc)
	assert.Equal(t, date(2026, 3, 5), DateOnly(local))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", date(2026, 3, 5), date(2026, 3, 5), 0},
		{"forward", date(2026, 3, 5), date(2026, 3, 8), 3},
		{"backward", date(2026, 3, 8), date(2026, 3, 5), -3},
		{"partial days ignored", time.Date(2026, 3, 5, 23, 0, 0, 0, time.UTC), time.Date(2026, 3, 6, 1, 0, 0, 0, time.UTC), 1},
		{"across months", date(2026, 2, 27), date(2026, 3, 2), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestPlannedDays(t *testing.T) {
	n := PlannedNode{PlannedStart: date(2026, 3, 1), PlannedEnd: date(2026, 3, 11)}
	assert.Equal(t, 10, n.PlannedDays())

	sameDay := PlannedNode{PlannedStart: date(2026, 3, 1), PlannedEnd: date(2026, 3, 1)}
	assert.Zero(t, sameDay.PlannedDays())
}

func TestAggregatedProgress_StartedAndComplete(t *testing.T) {
	var p AggregatedProgress
	assert.False(t, p.Started())
	assert.False(t, p.Complete())

	start := date(2026, 3, 2)
	p.ActualStart = &start
	p.Fraction = 0.5
	assert.True(t, p.Started())
	assert.False(t, p.Complete())

	p.Fraction = 1.0
	assert.True(t, p.Complete())
}

func TestChildLevel(t *testing.T) {
	assert.Equal(t, LevelOperation, ChildLevel(LevelActivity))
	assert.Equal(t, LevelAction, ChildLevel(LevelOperation))
	assert.Equal(t, NodeLevel(""), ChildLevel(LevelAction))
}
