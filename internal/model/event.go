package model

// Event is a confirmed night: the metadata the coordinator entered plus
// the lineup snapshot captured when the draft was finalized. Lineup rows
// are historical records; they keep the alias, legal name, genres and fee
// each DJ had at confirmation time regardless of later Vault edits.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – event name.
//  Description   – free-text description.
//  Date          – event date ("YYYY-MM-DD").
//  Location      – venue or address text.
//  Status        – draft, confirmed or cancelled.
//  EventStatus   – display phase of the event (e.g. "Upcoming").
//  CoordinatorID – who built the event.
//  EntryFeeCents – door charge in cents.
//  TotalFeeCents – total artist spend across the lineup in cents.
//  Lineup        – ordered performance slots, chronological.
//  CreatedAt     – creation timestamp in DB format.
type Event struct {
	ID            uint64       `json:"id"`              // events.id
	Name          string       `json:"name"`            // events.name
	Description   string       `json:"description"`     // events.description
	Date          string       `json:"date"`            // events.date
	Location      string       `json:"location"`        // events.location
	Status        string       `json:"status"`          // events.status
	EventStatus   string       `json:"event_status"`    // events.event_status
	CoordinatorID string       `json:"coordinator_id"`  // events.coordinator_id
	EntryFeeCents uint32       `json:"entry_fee_cents"` // events.entry_fee_cents
	TotalFeeCents uint32       `json:"total_fee_cents"` // events.total_fee_cents
	Lineup        []LineupSlot `json:"dj_lineup"`       // event_lineup rows, ordered by position
	CreatedAt     string       `json:"created_at"`      // events.created_at
}

// Allowed values for Event.Status.
const (
	EventDraft     = "draft"
	EventConfirmed = "confirmed"
	EventCancelled = "cancelled"
)

// LineupSlot is one stored performance slot of a confirmed event. All DJ
// fields are snapshots taken at finalize time; DJID may reference a Vault
// profile that has since been deleted.
//
// Fields:
//  Position    – zero-based chronological position in the lineup.
//  Time        – the slot's range as "HH:MM - HH:MM".
//  DJID        – Vault profile id at booking time (0 when unknown).
//  ArtistAlias – stage alias snapshot.
//  LegalName   – legal name snapshot.
//  Genres      – genre tag snapshot.
//  Phone       – contact number snapshot.
//  Instagram   – IG link snapshot.
//  FeeCents    – the negotiated fee for this set in cents.
//  TargetBPM   – tempo hint recorded on the slot (0 when unset).
type LineupSlot struct {
	Position    int      `json:"position"`      // event_lineup.position
	Time        string   `json:"time"`          // event_lineup.time
	DJID        uint64   `json:"dj_id"`         // event_lineup.dj_id
	ArtistAlias string   `json:"artist_alias"`  // event_lineup.artist_alias
	LegalName   string   `json:"name"`          // event_lineup.legal_name
	Genres      []string `json:"genres"`        // event_lineup.genres (JSON column)
	Phone       string   `json:"phone"`         // event_lineup.phone
	Instagram   string   `json:"instagram"`     // event_lineup.instagram
	FeeCents    uint32   `json:"fee_cents"`     // event_lineup.fee_cents
	TargetBPM   int      `json:"target_bpm"`    // event_lineup.target_bpm
}
