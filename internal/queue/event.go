// Package queue defines message payloads exchanged over the message broker.
package queue

// EventConfirmedMessage is published when a lineup draft is finalized and
// stored. It carries enough information for downstream consumers to log,
// notify booked artists, or trigger settlement without querying the
// primary database.
type EventConfirmedMessage struct {
	EventID       uint64   `json:"event_id"`
	Name          string   `json:"name"`
	Date          string   `json:"date"`
	Location      string   `json:"location"`
	CoordinatorID string   `json:"coordinator_id"`
	Artists       []string `json:"artists"`
	SlotTimes     []string `json:"slot_times"`
	BookedCount   int      `json:"booked_count"`
	TotalFeeCents uint32   `json:"total_fee_cents"`
	ConfirmedAt   string   `json:"confirmed_at"`
}
