package lineup

import (
	"errors"
	"time"
)

// Sentinel errors for draft edits. Handlers translate these into HTTP
// statuses the same way repository sentinels are translated.
var (
	// ErrSlotIndex is returned when an operation names a slot that does
	// not exist in the draft.
	ErrSlotIndex = errors.New("slot index out of range")
	// ErrAlreadyBooked is returned when an assignment would put the same
	// DJ into two slots of one draft.
	ErrAlreadyBooked = errors.New("dj already booked in this lineup")
)

// Placeholders used in finalize snapshots when the referenced DJ record no
// longer exists in the Vault. Snapshotting degrades, it never fails.
const (
	UnknownAlias     = "Unknown"
	UnknownLegalName = "Legal Name Not Listed"
)

// EventDetails is the event-level metadata gathered in the first step of
// the builder: what the night is, where and when it happens, and the
// genre direction suggestions are biased towards.
type EventDetails struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Date          string   `json:"date"`
	Description   string   `json:"description"`
	TargetGenres  []string `json:"target_genres"`
	EntryFeeCents uint32   `json:"entry_fee_cents"`
}

// Draft is the complete in-progress state of one event being built: the
// metadata plus the slot sequence. A draft belongs to exactly one editing
// session; it is mutated only through the methods below and is either
// discarded or handed to persistence as a finalize payload.
type Draft struct {
	ID        string       `json:"id"`
	Details   EventDetails `json:"details"`
	Slots     []Slot       `json:"slots"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewDraft creates a draft with the default single slot. The caller
// supplies the session identifier.
func NewDraft(id string, details EventDetails) *Draft {
	return &Draft{
		ID:        id,
		Details:   details,
		Slots:     DefaultSequence(),
		CreatedAt: time.Now().UTC(),
	}
}

// SetStart applies the sequence operation of the same name to the draft.
func (d *Draft) SetStart(i int, start Clock) {
	d.Slots = SetStart(d.Slots, i, start)
}

// SetEnd applies the sequence operation of the same name to the draft.
// Invalid edits leave the sequence untouched.
func (d *Draft) SetEnd(i int, end Clock) {
	d.Slots = SetEnd(d.Slots, i, end)
}

// AppendSlot adds a fresh slot after the current last one.
func (d *Draft) AppendSlot() {
	d.Slots = AppendSlot(d.Slots)
}

// RemoveSlot deletes the slot at i; removing the last remaining slot is a
// no-op.
func (d *Draft) RemoveSlot(i int) {
	d.Slots = RemoveSlot(d.Slots, i)
}

// Assign books a DJ into the slot at i, snapshotting the alias and copying
// the DJ's standard rate into the slot fee. The fee remains editable per
// slot afterwards. A DJ already booked elsewhere in the draft is rejected
// so one event never books the same DJ twice.
func (d *Draft) Assign(i int, dj DJ) error {
	if i < 0 || i >= len(d.Slots) {
		return ErrSlotIndex
	}
	for j, s := range d.Slots {
		if j != i && s.DJID == dj.ID {
			return ErrAlreadyBooked
		}
	}
	d.Slots[i].DJID = dj.ID
	d.Slots[i].ArtistAlias = dj.Alias
	d.Slots[i].FeeCents = dj.FeeCents
	return nil
}

// Clear unbooks the slot at i, resetting snapshot and fee.
func (d *Draft) Clear(i int) error {
	if i < 0 || i >= len(d.Slots) {
		return ErrSlotIndex
	}
	d.Slots[i].DJID = 0
	d.Slots[i].ArtistAlias = ""
	d.Slots[i].FeeCents = 0
	return nil
}

// SetFee overrides the negotiated fee for the slot at i.
func (d *Draft) SetFee(i int, cents uint32) error {
	if i < 0 || i >= len(d.Slots) {
		return ErrSlotIndex
	}
	d.Slots[i].FeeCents = cents
	return nil
}

// SetTargetBPM records a tempo hint on the slot at i; zero clears it.
func (d *Draft) SetTargetBPM(i int, bpm int) error {
	if i < 0 || i >= len(d.Slots) {
		return ErrSlotIndex
	}
	d.Slots[i].TargetBPM = bpm
	return nil
}

// Suggestions ranks unbooked pool DJs as candidates for the slot at i.
func (d *Draft) Suggestions(pool []DJ, i int) []DJ {
	return Suggest(pool, d.Slots, d.Details.TargetGenres, i)
}

// TotalCents is the running artist spend across all slots.
func (d *Draft) TotalCents() uint32 {
	return TotalCents(d.Slots)
}

// LineupEntry is one assigned slot enriched for persistence: alongside the
// slot's own time and fee it snapshots the DJ's identity and contact
// details at the moment of finalization. These fields are historical and
// stay fixed no matter what later happens to the DJ record.
type LineupEntry struct {
	Time        string   `json:"time"`
	DJID        uint64   `json:"dj_id"`
	FeeCents    uint32   `json:"fee_cents"`
	ArtistAlias string   `json:"artist_alias"`
	LegalName   string   `json:"name"`
	Genres      []string `json:"genres"`
	Phone       string   `json:"phone"`
	Instagram   string   `json:"instagram"`
	TargetBPM   int      `json:"target_bpm,omitempty"`
}

// FinalizePayload is what the draft hands to persistence as a single
// create operation: the event metadata, the enriched lineup (unassigned
// slots dropped) and the final artist spend.
type FinalizePayload struct {
	Details        EventDetails  `json:"details"`
	Lineup         []LineupEntry `json:"dj_lineup"`
	TotalFeeCents  uint32        `json:"total_fee_cents"`
	BookedCount    int           `json:"booked_count"`
	TotalSlotCount int           `json:"total_slot_count"`
}

// Finalize assembles the persistence payload from the draft and the
// current DJ pool. Slots without an assignment are dropped. For each kept
// slot the DJ's current record supplies the legal name, genre list and
// contact details; when the record is gone the entry degrades to the
// placeholder identity instead of failing. The draft itself is left
// untouched so a failed save can be retried.
func (d *Draft) Finalize(pool []DJ) FinalizePayload {
	byID := make(map[uint64]DJ, len(pool))
	for _, dj := range pool {
		byID[dj.ID] = dj
	}

	var entries []LineupEntry
	for _, s := range d.Slots {
		if !s.Assigned() {
			continue
		}
		entry := LineupEntry{
			Time:        s.TimeRange(),
			DJID:        s.DJID,
			FeeCents:    s.FeeCents,
			ArtistAlias: UnknownAlias,
			LegalName:   UnknownLegalName,
			Genres:      []string{},
			TargetBPM:   s.TargetBPM,
		}
		if s.ArtistAlias != "" {
			entry.ArtistAlias = s.ArtistAlias
		}
		if dj, ok := byID[s.DJID]; ok {
			if dj.Alias != "" {
				entry.ArtistAlias = dj.Alias
			}
			if dj.LegalName != "" {
				entry.LegalName = dj.LegalName
			}
			if len(dj.Genres) > 0 {
				entry.Genres = dj.Genres
			}
			entry.Phone = dj.Phone
			entry.Instagram = dj.Instagram
		}
		entries = append(entries, entry)
	}

	return FinalizePayload{
		Details:        d.Details,
		Lineup:         entries,
		TotalFeeCents:  TotalCents(d.Slots),
		BookedCount:    BookedCount(d.Slots),
		TotalSlotCount: len(d.Slots),
	}
}
