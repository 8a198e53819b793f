package lineup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:05", want: 9*60 + 5},
		{in: "22:00", want: 22 * 60},
		{in: "23:59", want: 23*60 + 59},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "7:30", wantErr: true},  // not zero padded
		{in: "0730", wantErr: true},  // missing colon
		{in: "ab:cd", wantErr: true}, // not digits
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "00:00", Clock(0).String())
	assert.Equal(t, "07:05", Clock(7*60+5).String())
	assert.Equal(t, "23:59", Clock(23*60+59).String())
}

func TestClockAddWrapsMidnight(t *testing.T) {
	assert.Equal(t, Clock(0), Clock(23*60).Add(60))
	assert.Equal(t, Clock(30), Clock(23*60+30).Add(60))
	assert.Equal(t, Clock(23*60), Clock(0).Add(-60))
}

func TestClockJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Clock(22*60 + 15))
	require.NoError(t, err)
	assert.Equal(t, `"22:15"`, string(b))

	var c Clock
	require.NoError(t, json.Unmarshal([]byte(`"23:45"`), &c))
	assert.Equal(t, Clock(23*60+45), c)

	assert.Error(t, json.Unmarshal([]byte(`1425`), &c))
}
