package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalCents(t *testing.T) {
	slots := seq(t, "22:00-23:00", "23:00-00:00", "00:00-01:00")
	assert.Zero(t, TotalCents(slots), "fresh slots carry no fee")

	slots[0].DJID = 1
	slots[0].FeeCents = 25000
	slots[2].DJID = 2
	slots[2].FeeCents = 17550
	assert.Equal(t, uint32(42550), TotalCents(slots))
}

func TestBookedCount(t *testing.T) {
	slots := seq(t, "22:00-23:00", "23:00-00:00", "00:00-01:00")
	assert.Zero(t, BookedCount(slots))

	slots[1].DJID = 7
	assert.Equal(t, 1, BookedCount(slots))

	slots[0].DJID = 3
	slots[2].DJID = 9
	assert.Equal(t, 3, BookedCount(slots))
}
