package lineup

// This file implements the slot sequence operations. The sequence invariant
// is contiguity: slot[i].End == slot[i+1].Start for every adjacent pair, so
// the lineup has no gaps and no overlaps. Each edit disturbs at most one
// seam and repairs it locally; Contiguous can be used to verify the whole
// sequence after the fact.
//
// All operations are pure: they copy the input slice and return a new one,
// leaving the caller's sequence untouched. Invalid edits (an end at or
// before its start, removing the only slot, an out-of-range index) return
// the sequence unchanged rather than an error, mirroring a UI that simply
// refuses to apply the change.

// DefaultStart and DefaultEnd are the range given to the single slot a
// fresh draft starts with: a 22:00 - 23:00 opening set.
const (
	DefaultStart = Clock(22 * 60)
	DefaultEnd   = Clock(23 * 60)
)

// DefaultSequence returns the one unassigned slot every new draft begins
// with. A draft never has fewer than one slot.
func DefaultSequence() []Slot {
	return []Slot{{Start: DefaultStart, End: DefaultEnd}}
}

// clone copies the sequence so operations never mutate their input.
func clone(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// SetStart moves the start of slot i to the given time. Two repairs keep
// the sequence valid:
//
//  1. If the new start lands at or after the slot's current end, the end
//     is pushed forward to exactly one hour after the new start, wrapping
//     past midnight, so the range never collapses.
//  2. If the slot has a predecessor, the predecessor's end is rewritten to
//     the new start: the previous set must end exactly when this one
//     begins.
func SetStart(slots []Slot, i int, start Clock) []Slot {
	if i < 0 || i >= len(slots) {
		return slots
	}
	out := clone(slots)
	if start >= out[i].End {
		out[i].End = start.Add(defaultSlotMinutes)
	}
	out[i].Start = start
	if i > 0 {
		out[i-1].End = start
	}
	return out
}

// SetEnd moves the end of slot i to the given time. An end at or before
// the slot's current start is rejected and the sequence is returned
// unchanged. When the edit is applied and a following slot exists, that
// slot's start is forced to the new end. The propagation is deliberately
// one hop: only the immediate neighbour is touched, never the rest of the
// chain.
func SetEnd(slots []Slot, i int, end Clock) []Slot {
	if i < 0 || i >= len(slots) {
		return slots
	}
	if end <= slots[i].Start {
		return slots
	}
	out := clone(slots)
	out[i].End = end
	if i+1 < len(out) {
		out[i+1].Start = end
	}
	return out
}

// AppendSlot adds an unassigned one-hour slot to the end of the sequence,
// starting exactly where the current last slot ends and wrapping past
// midnight when necessary.
func AppendSlot(slots []Slot) []Slot {
	out := clone(slots)
	start := out[len(out)-1].End
	out = append(out, Slot{Start: start, End: start.Add(defaultSlotMinutes)})
	return out
}

// RemoveSlot deletes the slot at index i. Removing the only remaining slot
// is a no-op: a draft always keeps at least one slot. When a middle slot
// is removed, the slot that slid up into its position is re-anchored so
// its start equals the new predecessor's end, closing the single seam the
// deletion opened.
func RemoveSlot(slots []Slot, i int) []Slot {
	if len(slots) <= 1 || i < 0 || i >= len(slots) {
		return slots
	}
	out := make([]Slot, 0, len(slots)-1)
	out = append(out, slots[:i]...)
	out = append(out, slots[i+1:]...)
	if i > 0 && i < len(out) {
		out[i].Start = out[i-1].End
	}
	return out
}

// Contiguous reports whether every adjacent pair of slots shares its
// boundary instant. The editing operations maintain this locally; tests
// use this full pass to catch any drift.
func Contiguous(slots []Slot) bool {
	for i := 0; i+1 < len(slots); i++ {
		if slots[i].End != slots[i+1].Start {
			return false
		}
	}
	return true
}
