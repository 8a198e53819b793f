package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clk parses a time literal in tests, failing the test on bad input.
func clk(t *testing.T, s string) Clock {
	t.Helper()
	c, err := ParseClock(s)
	require.NoError(t, err)
	return c
}

// seq builds a slot sequence from "HH:MM-HH:MM" range literals.
func seq(t *testing.T, ranges ...string) []Slot {
	t.Helper()
	slots := make([]Slot, len(ranges))
	for i, r := range ranges {
		require.Len(t, r, 11)
		slots[i] = Slot{Start: clk(t, r[:5]), End: clk(t, r[6:])}
	}
	return slots
}

func TestDefaultSequence(t *testing.T) {
	slots := DefaultSequence()
	require.Len(t, slots, 1)
	assert.Equal(t, "22:00 - 23:00", slots[0].TimeRange())
	assert.False(t, slots[0].Assigned())
	assert.Zero(t, slots[0].FeeCents)
}

func TestAppendSlotStartsAtLastEnd(t *testing.T) {
	slots := seq(t, "22:00-23:00")
	slots[0].DJID = 7
	slots[0].FeeCents = 10000

	got := AppendSlot(slots)
	require.Len(t, got, 2)
	assert.Equal(t, "23:00 - 00:00", got[1].TimeRange(), "append wraps past midnight")
	assert.False(t, got[1].Assigned())
	assert.Zero(t, got[1].FeeCents)
	assert.Equal(t, TotalCents(slots), TotalCents(got), "appending an unassigned slot never moves the total")
	assert.True(t, Contiguous(got))
}

func TestAppendSlotDoesNotMutateInput(t *testing.T) {
	slots := seq(t, "22:00-23:00")
	_ = AppendSlot(slots)
	require.Len(t, slots, 1)
}

func TestSetStartSyncsPreviousEnd(t *testing.T) {
	slots := seq(t, "22:00-23:00", "23:00-00:00")

	got := SetStart(slots, 1, clk(t, "23:30"))
	assert.Equal(t, clk(t, "23:30"), got[1].Start)
	assert.Equal(t, clk(t, "23:30"), got[0].End, "previous slot must end when this one begins")
	assert.True(t, Contiguous(got))
}

func TestSetStartPushesCollapsedEndForward(t *testing.T) {
	tests := []struct {
		name     string
		ranges   []string
		newStart string
		wantEnd  string
	}{
		{name: "start at end", ranges: []string{"20:00-21:00"}, newStart: "21:00", wantEnd: "22:00"},
		{name: "start past end", ranges: []string{"20:00-21:00"}, newStart: "22:30", wantEnd: "23:30"},
		{name: "push wraps midnight", ranges: []string{"20:00-21:00"}, newStart: "23:30", wantEnd: "00:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SetStart(seq(t, tt.ranges...), 0, clk(t, tt.newStart))
			assert.Equal(t, clk(t, tt.newStart), got[0].Start)
			assert.Equal(t, clk(t, tt.wantEnd), got[0].End)
		})
	}
}

func TestSetStartKeepsValidEnd(t *testing.T) {
	slots := seq(t, "20:00-23:00")
	got := SetStart(slots, 0, clk(t, "21:00"))
	assert.Equal(t, clk(t, "23:00"), got[0].End, "an end still after the new start is untouched")
}

func TestSetEndPropagatesOneHop(t *testing.T) {
	slots := seq(t, "22:00-23:00", "23:00-00:00", "00:00-01:00")

	got := SetEnd(slots, 0, clk(t, "23:30"))
	assert.Equal(t, clk(t, "23:30"), got[0].End)
	assert.Equal(t, clk(t, "23:30"), got[1].Start, "next slot starts when this one ends")
	assert.Equal(t, clk(t, "00:00"), got[1].End)
	assert.Equal(t, slots[2], got[2], "propagation is one hop, the slot after the neighbour is untouched")
}

func TestSetEndRejectsNonPositiveRange(t *testing.T) {
	slots := seq(t, "22:00-23:00", "23:00-00:00")
	slots[0].DJID = 3
	slots[0].ArtistAlias = "Mote"

	for _, end := range []string{"22:00", "21:30"} {
		got := SetEnd(slots, 0, clk(t, end))
		assert.Equal(t, slots, got, "end at or before start leaves the sequence byte-for-byte unchanged")
	}
}

func TestSetEndOnLastSlotHasNoNeighbour(t *testing.T) {
	slots := seq(t, "22:00-23:00")
	got := SetEnd(slots, 0, clk(t, "23:45"))
	require.Len(t, got, 1)
	assert.Equal(t, clk(t, "23:45"), got[0].End)
}

func TestRemoveSlot(t *testing.T) {
	t.Run("middle removal repairs the seam", func(t *testing.T) {
		slots := seq(t, "21:00-22:00", "22:00-23:00", "23:00-00:00")
		got := RemoveSlot(slots, 1)
		require.Len(t, got, 2)
		assert.Equal(t, clk(t, "22:00"), got[1].Start, "slot that slid up starts at the new predecessor's end")
		assert.Equal(t, clk(t, "00:00"), got[1].End)
		assert.True(t, Contiguous(got))
	})

	t.Run("first removal needs no repair", func(t *testing.T) {
		slots := seq(t, "21:00-22:00", "22:00-23:00")
		got := RemoveSlot(slots, 0)
		require.Len(t, got, 1)
		assert.Equal(t, "22:00 - 23:00", got[0].TimeRange())
	})

	t.Run("tail removal needs no repair", func(t *testing.T) {
		slots := seq(t, "21:00-22:00", "22:00-23:00")
		got := RemoveSlot(slots, 1)
		require.Len(t, got, 1)
		assert.Equal(t, "21:00 - 22:00", got[0].TimeRange())
	})

	t.Run("only slot is kept", func(t *testing.T) {
		slots := seq(t, "22:00-23:00")
		got := RemoveSlot(slots, 0)
		assert.Equal(t, slots, got)
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		slots := seq(t, "21:00-22:00", "22:00-23:00")
		assert.Equal(t, slots, RemoveSlot(slots, 5))
		assert.Equal(t, slots, RemoveSlot(slots, -1))
	})
}

func TestOutOfRangeEditsAreNoOps(t *testing.T) {
	slots := seq(t, "22:00-23:00")
	assert.Equal(t, slots, SetStart(slots, 3, clk(t, "10:00")))
	assert.Equal(t, slots, SetStart(slots, -1, clk(t, "10:00")))
	assert.Equal(t, slots, SetEnd(slots, 3, clk(t, "23:30")))
}

// TestEditScriptKeepsContiguity drives a longer editing session through
// the operations and verifies the contiguity invariant after every step,
// the way the builder exercises the sequence in practice.
func TestEditScriptKeepsContiguity(t *testing.T) {
	slots := DefaultSequence()

	step := func(name string, next []Slot) []Slot {
		t.Helper()
		assert.True(t, Contiguous(next), "sequence must stay contiguous after %s: %+v", name, next)
		return next
	}

	slots = step("append #1", AppendSlot(slots))         // 22-23, 23-00
	slots = step("append #2", AppendSlot(slots))         // 22-23, 23-00, 00-01
	slots = step("set_end 0", SetEnd(slots, 0, clk(t, "23:30")))
	slots = step("set_start 2", SetStart(slots, 2, clk(t, "00:15")))
	slots = step("remove middle", RemoveSlot(slots, 1))
	slots = step("set_start 0", SetStart(slots, 0, clk(t, "21:00")))
	slots = step("append #3", AppendSlot(slots))
	slots = step("remove first", RemoveSlot(slots, 0))

	require.NotEmpty(t, slots)
}
