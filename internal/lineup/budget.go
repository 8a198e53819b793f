package lineup

// Budget figures are pure functions of the current slot sequence: nothing
// is cached, callers recompute on every read.

// TotalCents sums the fee across every slot, assigned or not. Unassigned
// slots carry a zero fee by construction, so appending a fresh slot never
// moves the total.
func TotalCents(slots []Slot) uint32 {
	var sum uint32
	for _, s := range slots {
		sum += s.FeeCents
	}
	return sum
}

// BookedCount returns how many slots have a DJ assigned.
func BookedCount(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if s.Assigned() {
			n++
		}
	}
	return n
}
