package lineup

// Slot is one scheduled performance window inside a draft lineup. A slot
// always has a time range; the DJ assignment, the alias/fee snapshot and
// the tempo hint are filled in as the user builds the lineup.
//
// Fields:
//  Start       – wall-clock start of the set.
//  End         – wall-clock end of the set. May be numerically before
//                Start when the set wraps past midnight into the next day
//                (e.g. 23:00 - 00:00).
//  DJID        – identifier of the assigned DJ; zero means unassigned.
//  ArtistAlias – the DJ's stage alias captured at assignment time. It
//                survives later edits or deletion of the DJ record.
//  FeeCents    – the fee captured at assignment time, in cents. It starts
//                as a copy of the DJ's standard rate and can be negotiated
//                per slot without touching the DJ record.
//  TargetBPM   – optional beats-per-minute hint for the slot; zero means
//                no hint.
type Slot struct {
	Start       Clock  `json:"start"`
	End         Clock  `json:"end"`
	DJID        uint64 `json:"dj_id"`
	ArtistAlias string `json:"artist_alias"`
	FeeCents    uint32 `json:"fee_cents"`
	TargetBPM   int    `json:"target_bpm"`
}

// Assigned reports whether a DJ has been booked into this slot.
func (s Slot) Assigned() bool {
	return s.DJID != 0
}

// TimeRange renders the slot's range in the "HH:MM - HH:MM" form used by
// stored lineup rows.
func (s Slot) TimeRange() string {
	return s.Start.String() + " - " + s.End.String()
}
