package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixturePool is a small Vault spanning the tiers and tag shapes the
// ranking rules distinguish.
func fixturePool() []DJ {
	return []DJ{
		{ID: 1, Alias: "Alex Phase", Genres: []string{"techno"}, Vibes: []string{"peak time"}, Experience: ExperiencePro, FeeCents: 25000},
		{ID: 2, Alias: "Sarah Drift", Genres: []string{"house"}, Vibes: []string{"warm up"}, Experience: ExperienceRegular, FeeCents: 20000},
		{ID: 3, Alias: "DJ Pulse", Genres: []string{"drum & bass"}, Vibes: []string{"high energy"}, Experience: ExperiencePro, FeeCents: 30000},
		{ID: 4, Alias: "Mina Low", Genres: []string{"deep house", "house"}, Vibes: []string{"chill"}, Experience: ExperienceRegular, FeeCents: 15000},
		{ID: 5, Alias: "Mote", Genres: []string{"techno"}, Vibes: []string{"peak time"}, Experience: ExperienceBedroom, FeeCents: 40000},
		{ID: 6, Alias: "Solaris", Genres: []string{"trance", "techno"}, Vibes: []string{"high energy"}, Experience: ExperiencePro, FeeCents: 22000},
	}
}

func ids(djs []DJ) []uint64 {
	out := make([]uint64, len(djs))
	for i, d := range djs {
		out[i] = d.ID
	}
	return out
}

func TestSuggestEmptyPool(t *testing.T) {
	slots := seq(t, "22:00-23:00")
	assert.Empty(t, Suggest(nil, slots, []string{"techno"}, 0))
}

func TestSuggestOutOfRangeIndex(t *testing.T) {
	slots := seq(t, "22:00-23:00")
	assert.Empty(t, Suggest(fixturePool(), slots, []string{"techno"}, 1))
	assert.Empty(t, Suggest(fixturePool(), slots, []string{"techno"}, -1))
}

// With nothing booked yet, the first pick must match the event profile
// and bedroom-tier DJs are excluded.
func TestSuggestEmptyLineupGatesOnProfileAndTier(t *testing.T) {
	slots := seq(t, "12:00-13:00")

	got := Suggest(fixturePool(), slots, []string{"techno"}, 0)
	gotIDs := ids(got)

	assert.Contains(t, gotIDs, uint64(1), "pro techno DJ qualifies")
	assert.Contains(t, gotIDs, uint64(6), "pro with one techno tag qualifies")
	assert.NotContains(t, gotIDs, uint64(5), "bedroom techno DJ is not a first pick")
	assert.NotContains(t, gotIDs, uint64(2), "house DJ misses the target genres")
}

func TestSuggestNoQualifiersReturnsEmpty(t *testing.T) {
	slots := seq(t, "12:00-13:00")
	assert.Empty(t, Suggest(fixturePool(), slots, []string{"gabber"}, 0))
}

func TestSuggestExcludesBookedDJs(t *testing.T) {
	slots := seq(t, "22:00-23:00", "23:00-00:00")
	slots[0].DJID = 1 // Alex Phase already on the bill

	got := Suggest(fixturePool(), slots, []string{"techno"}, 1)
	assert.NotContains(t, ids(got), uint64(1), "a booked DJ never reappears as a candidate")
}

// Once the lineup has bookings, a DJ can qualify by matching the genres
// already present even when missing the event profile.
func TestSuggestConsistencyMatch(t *testing.T) {
	slots := seq(t, "12:00-13:00", "13:00-14:00")
	slots[0].DJID = 2 // Sarah Drift books "house" into the lineup

	got := Suggest(fixturePool(), slots, []string{"techno"}, 1)
	assert.Contains(t, ids(got), uint64(4), "Mina Low matches the booked house genre")
}

func TestSuggestVibeMatchByTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		ranges  []string
		wantID  uint64
		paradox uint64 // a DJ whose vibes fit the other window and must not qualify on vibes alone
	}{
		{
			name:    "small hours want peak or high vibes",
			ranges:  []string{"23:00-00:00", "00:30-01:30"},
			wantID:  3, // DJ Pulse: "high energy", genres miss everything
			paradox: 4, // Mina Low: "chill" is a warm-up vibe
		},
		{
			name:    "late evening wants warm or chill vibes",
			ranges:  []string{"19:00-20:00", "21:00-22:00"},
			wantID:  4, // Mina Low: "chill"
			paradox: 3, // DJ Pulse: "high energy" belongs to peak time
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := seq(t, tt.ranges...)
			slots[0].DJID = 1 // book Alex Phase so the lineup is non-empty; bookedGenres = {techno}

			// Target genres chosen so neither candidate gets a profile
			// match; only vibes can qualify them.
			got := Suggest(fixturePool(), slots, []string{"ambient"}, 1)
			gotIDs := ids(got)
			assert.Contains(t, gotIDs, tt.wantID)
			assert.NotContains(t, gotIDs, tt.paradox)
		})
	}
}

func TestSuggestNoVibeWindowOutsideClubHours(t *testing.T) {
	slots := seq(t, "12:00-13:00", "14:00-15:00")
	slots[0].DJID = 1 // lineup non-empty, bookedGenres = {techno}

	got := Suggest(fixturePool(), slots, []string{"ambient"}, 1)
	assert.NotContains(t, ids(got), uint64(3), "an afternoon slot grants no vibe-based match")
	assert.NotContains(t, ids(got), uint64(4))
}

// Qualifiers are ranked by target-genre overlap, strongest first, with
// pool order as the stable tie-break, and the list is capped at three.
func TestSuggestRankingAndCap(t *testing.T) {
	pool := []DJ{
		{ID: 10, Alias: "One", Genres: []string{"techno"}, Experience: ExperiencePro},
		{ID: 11, Alias: "Two", Genres: []string{"techno", "acid"}, Experience: ExperiencePro},
		{ID: 12, Alias: "Three", Genres: []string{"techno"}, Experience: ExperienceRegular},
		{ID: 13, Alias: "Four", Genres: []string{"techno", "acid", "electro"}, Experience: ExperiencePro},
		{ID: 14, Alias: "Five", Genres: []string{"acid"}, Experience: ExperiencePro},
	}
	slots := seq(t, "12:00-13:00")

	got := Suggest(pool, slots, []string{"techno", "acid", "electro"}, 0)
	require.Len(t, got, 3, "suggestions are capped at three")
	assert.Equal(t, []uint64{13, 11, 10}, ids(got), "overlap count descending, pool order on ties")
}

func TestSuggestDoesNotMutatePool(t *testing.T) {
	pool := fixturePool()
	slots := seq(t, "22:00-23:00")
	_ = Suggest(pool, slots, []string{"techno"}, 0)
	assert.Equal(t, fixturePool(), pool)
}
