package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmakowski/twinsight/internal/domain"
)

func TestLevelFlag_AcceptsLevels(t *testing.T) {
	tests := []struct {
		input string
		level domain.NodeLevel
		all   bool
	}{
		{"activity", domain.LevelActivity, false},
		{"operation", domain.LevelOperation, false},
		{"action", domain.LevelAction, false},
		{"ALL", "", true},
		{" action ", domain.LevelAction, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f levelFlag
			require.NoError(t, f.Set(tt.input))
			assert.True(t, f.set)
			assert.Equal(t, tt.all, f.all)
			if !tt.all {
				assert.Equal(t, tt.level, f.level)
			}
		})
	}
}

func TestLevelFlag_RejectsUnknown(t *testing.T) {
	var f levelFlag
	err := f.Set("building")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
	assert.False(t, f.set)
}

func TestLevelFlag_String(t *testing.T) {
	var f levelFlag
	require.NoError(t, f.Set("operation"))
	assert.Equal(t, "operation", f.String())

	var all levelFlag
	require.NoError(t, all.Set("all"))
	assert.Equal(t, "all", all.String())
}
