package lineup

import (
	"sort"
	"strings"
)

// Experience tiers a DJ can hold. Bedroom DJs are excluded from the first
// pick of an otherwise empty lineup; they qualify normally once the lineup
// has some bookings to match against.
const (
	ExperienceBedroom = "bedroom"
	ExperienceRegular = "regular"
	ExperiencePro     = "pro"
)

// maxSuggestions caps how many candidates a single suggestion call
// returns.
const maxSuggestions = 3

// DJ is the engine's read-only view of a Vault profile: just the fields
// the ranking and the finalize snapshot need. Handlers map the full stored
// record into this shape before calling in.
type DJ struct {
	ID         uint64   `json:"id"`
	Alias      string   `json:"alias"`
	LegalName  string   `json:"name"`
	Genres     []string `json:"genres"`
	Vibes      []string `json:"vibes"`
	Experience string   `json:"experience"`
	FeeCents   uint32   `json:"fee_cents"`
	Phone      string   `json:"phone,omitempty"`
	Instagram  string   `json:"instagram,omitempty"`
}

// Suggest returns up to three unbooked DJs from the pool, best first, as
// candidates for the slot at slotIndex. The ranking is advisory: any DJ
// can still be assigned to any slot manually.
//
// A DJ qualifies when:
//   - nothing is booked yet: their genres intersect the event's target
//     genres and they are pro or regular tier; or
//   - something is booked: their genres intersect the target genres
//     (profile match), or intersect the genres already booked into the
//     lineup (consistency match), or their vibes fit the slot's time of
//     day (00-02h wants "peak"/"high" vibes, 20-23h wants
//     "warm"/"chill").
//
// Qualifiers are ordered by how many of their genres hit the target set,
// descending; ties keep pool order. DJs already booked anywhere in the
// draft never appear.
func Suggest(pool []DJ, slots []Slot, targetGenres []string, slotIndex int) []DJ {
	if len(pool) == 0 || slotIndex < 0 || slotIndex >= len(slots) {
		return nil
	}

	booked := make(map[uint64]bool)
	for _, s := range slots {
		if s.Assigned() {
			booked[s.DJID] = true
		}
	}

	// Union of genres across every DJ already booked in this draft.
	bookedGenres := make(map[string]bool)
	byID := make(map[uint64]DJ, len(pool))
	for _, dj := range pool {
		byID[dj.ID] = dj
	}
	for _, s := range slots {
		if dj, ok := byID[s.DJID]; ok {
			for _, g := range dj.Genres {
				bookedGenres[g] = true
			}
		}
	}

	target := make(map[string]bool, len(targetGenres))
	for _, g := range targetGenres {
		target[g] = true
	}

	hour := slots[slotIndex].Start.Hour()

	var candidates []DJ
	for _, dj := range pool {
		if booked[dj.ID] {
			continue
		}
		profileMatch := intersects(dj.Genres, target)
		if len(bookedGenres) == 0 {
			if profileMatch && (dj.Experience == ExperiencePro || dj.Experience == ExperienceRegular) {
				candidates = append(candidates, dj)
			}
			continue
		}
		if profileMatch || intersects(dj.Genres, bookedGenres) || vibeMatch(dj.Vibes, hour) {
			candidates = append(candidates, dj)
		}
	}

	// Strongest profile matches first; the stable sort keeps pool order
	// between candidates with the same overlap count.
	sort.SliceStable(candidates, func(a, b int) bool {
		return overlap(candidates[a].Genres, target) > overlap(candidates[b].Genres, target)
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return candidates
}

// intersects reports whether any tag is present in the set.
func intersects(tags []string, set map[string]bool) bool {
	for _, t := range tags {
		if set[t] {
			return true
		}
	}
	return false
}

// overlap counts how many tags are present in the set.
func overlap(tags []string, set map[string]bool) int {
	n := 0
	for _, t := range tags {
		if set[t] {
			n++
		}
	}
	return n
}

// vibeMatch applies the time-of-day heuristic: sets starting in the small
// hours want peak-energy vibes, late-evening sets want warm-up vibes, and
// anything outside both windows gets no vibe-based qualification.
func vibeMatch(vibes []string, hour int) bool {
	peak := hour >= 0 && hour <= 2
	warmup := hour >= 20 && hour <= 23
	if !peak && !warmup {
		return false
	}
	for _, v := range vibes {
		// Vibe tags are stored lowercased, so plain substring checks are
		// enough here.
		if peak && (strings.Contains(v, "peak") || strings.Contains(v, "high")) {
			return true
		}
		if warmup && (strings.Contains(v, "warm") || strings.Contains(v, "chill")) {
			return true
		}
	}
	return false
}
