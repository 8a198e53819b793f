package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneFor(t *testing.T) {
	tests := []struct {
		start string
		role  string
	}{
		{"00:00", "High Octane"},
		{"02:30", "High Octane"},
		{"04:00", "Afterhours"},
		{"19:00", "Warm-up"},
		{"22:00", "Peak Time"}, // boundary: 22:00 opens peak time, not warm-up
		{"22:30", "Peak Time"},
		{"23:59", "Peak Time"},
		{"12:00", "Warm-up"}, // daytime gap falls back to warm-up
	}
	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			start, err := ParseClock(tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.role, ZoneFor(start).Role)
		})
	}
}
