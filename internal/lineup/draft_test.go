package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDetails() EventDetails {
	return EventDetails{
		Name:         "Warehouse Sessions",
		Location:     "The Armoury",
		Date:         "2026-09-12",
		TargetGenres: []string{"techno"},
	}
}

func TestNewDraftStartsWithDefaultSlot(t *testing.T) {
	d := NewDraft("draft-1", testDetails())

	require.Len(t, d.Slots, 1)
	assert.Equal(t, "22:00 - 23:00", d.Slots[0].TimeRange())
	assert.False(t, d.Slots[0].Assigned())
	assert.False(t, d.CreatedAt.IsZero())
}

func TestDraftAssignSnapshotsAliasAndFee(t *testing.T) {
	d := NewDraft("draft-1", testDetails())
	dj := DJ{ID: 4, Alias: "Mina Low", FeeCents: 15000}

	require.NoError(t, d.Assign(0, dj))
	assert.Equal(t, uint64(4), d.Slots[0].DJID)
	assert.Equal(t, "Mina Low", d.Slots[0].ArtistAlias)
	assert.Equal(t, uint32(15000), d.Slots[0].FeeCents)

	// The copied fee stays editable without touching the Vault rate.
	require.NoError(t, d.SetFee(0, 12000))
	assert.Equal(t, uint32(12000), d.Slots[0].FeeCents)
	assert.Equal(t, uint32(15000), dj.FeeCents)
}

func TestDraftAssignRejectsDoubleBooking(t *testing.T) {
	d := NewDraft("draft-1", testDetails())
	d.AppendSlot()
	dj := DJ{ID: 4, Alias: "Mina Low", FeeCents: 15000}

	require.NoError(t, d.Assign(0, dj))
	err := d.Assign(1, dj)
	require.ErrorIs(t, err, ErrAlreadyBooked)
	assert.False(t, d.Slots[1].Assigned(), "the failed assignment leaves the slot empty")
}

func TestDraftReassignSameSlot(t *testing.T) {
	d := NewDraft("draft-1", testDetails())

	require.NoError(t, d.Assign(0, DJ{ID: 4, Alias: "Mina Low", FeeCents: 15000}))
	require.NoError(t, d.Assign(0, DJ{ID: 7, Alias: "Solaris", FeeCents: 22000}))
	assert.Equal(t, uint64(7), d.Slots[0].DJID)
	assert.Equal(t, "Solaris", d.Slots[0].ArtistAlias)
	assert.Equal(t, uint32(22000), d.Slots[0].FeeCents)
}

func TestDraftClearResetsSlot(t *testing.T) {
	d := NewDraft("draft-1", testDetails())
	require.NoError(t, d.Assign(0, DJ{ID: 4, Alias: "Mina Low", FeeCents: 15000}))

	require.NoError(t, d.Clear(0))
	assert.False(t, d.Slots[0].Assigned())
	assert.Empty(t, d.Slots[0].ArtistAlias)
	assert.Zero(t, d.Slots[0].FeeCents)
	assert.Zero(t, d.TotalCents())
}

func TestDraftIndexErrors(t *testing.T) {
	d := NewDraft("draft-1", testDetails())

	assert.ErrorIs(t, d.Assign(5, DJ{ID: 1}), ErrSlotIndex)
	assert.ErrorIs(t, d.Clear(-1), ErrSlotIndex)
	assert.ErrorIs(t, d.SetFee(3, 1000), ErrSlotIndex)
	assert.ErrorIs(t, d.SetTargetBPM(3, 128), ErrSlotIndex)
}

func TestDraftFinalizeDropsUnassignedSlots(t *testing.T) {
	d := NewDraft("draft-1", testDetails())
	d.AppendSlot()
	d.AppendSlot()
	pool := []DJ{
		{ID: 4, Alias: "Mina Low", LegalName: "Mina Lowe", Genres: []string{"deep house"}, FeeCents: 15000, Phone: "0612345678", Instagram: "@minalow"},
	}
	require.NoError(t, d.Assign(1, pool[0]))

	p := d.Finalize(pool)
	require.Len(t, p.Lineup, 1)
	assert.Equal(t, 3, p.TotalSlotCount)
	assert.Equal(t, 1, p.BookedCount)

	entry := p.Lineup[0]
	assert.Equal(t, "23:00 - 00:00", entry.Time)
	assert.Equal(t, uint64(4), entry.DJID)
	assert.Equal(t, "Mina Low", entry.ArtistAlias)
	assert.Equal(t, "Mina Lowe", entry.LegalName)
	assert.Equal(t, []string{"deep house"}, entry.Genres)
	assert.Equal(t, "0612345678", entry.Phone)
	assert.Equal(t, "@minalow", entry.Instagram)
	assert.Equal(t, uint32(15000), entry.FeeCents)
}

// A DJ deleted from the Vault between assignment and finalize degrades to
// placeholder identity instead of failing the save.
func TestDraftFinalizeMissingDJGetsPlaceholders(t *testing.T) {
	d := NewDraft("draft-1", testDetails())
	require.NoError(t, d.Assign(0, DJ{ID: 99, Alias: "Ghost", FeeCents: 8000}))

	p := d.Finalize(nil)
	require.Len(t, p.Lineup, 1)
	assert.Equal(t, "Ghost", p.Lineup[0].ArtistAlias, "the slot snapshot still has the alias")
	assert.Equal(t, UnknownLegalName, p.Lineup[0].LegalName)
	assert.Empty(t, p.Lineup[0].Genres)
	assert.Equal(t, uint32(8000), p.Lineup[0].FeeCents)
}

func TestDraftFinalizeTotalsAndRetry(t *testing.T) {
	d := NewDraft("draft-1", testDetails())
	d.AppendSlot()
	require.NoError(t, d.Assign(0, DJ{ID: 1, Alias: "Alex Phase", FeeCents: 25000}))
	require.NoError(t, d.Assign(1, DJ{ID: 2, Alias: "Sarah Drift", FeeCents: 20000}))

	p := d.Finalize(nil)
	assert.Equal(t, uint32(45000), p.TotalFeeCents)
	assert.Equal(t, 2, p.BookedCount)

	// Finalize is read-only on the draft so a failed save can retry.
	again := d.Finalize(nil)
	assert.Equal(t, p, again)
	assert.Len(t, d.Slots, 2)
}
