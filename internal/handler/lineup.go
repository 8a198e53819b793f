package handler // handler package contains the draft lineup builder endpoints

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/grooveops/server/internal/lineup"
	"github.com/grooveops/server/internal/model"
	"github.com/grooveops/server/internal/queue"
	"github.com/grooveops/server/internal/repository"
)

// defaultCoordinatorID is recorded on finalized events when the request
// does not name a coordinator.
const defaultCoordinatorID = "system_admin"

// DJSource supplies the DJ pool the lineup engine ranks candidates from.
// *repository.DJRepo satisfies it; tests substitute a fixture pool.
type DJSource interface {
	GetAll(ctx context.Context) ([]model.DJ, error)
}

// EventStore persists a finalized draft as one event record.
// *repository.EventRepo satisfies it.
type EventStore interface {
	Create(ctx context.Context, e *model.Event) error
}

// PublishFunc sends an event-confirmed message to the broker. It may be
// nil, in which case finalize skips publishing.
type PublishFunc func(ctx context.Context, msg queue.EventConfirmedMessage) error

// LineupHandler serves the draft editing session: slot time edits,
// assignments, suggestions, budget readouts and finalization. All lineup
// rules live in the lineup package; this handler only maps HTTP requests
// onto engine operations.
type LineupHandler struct {
	Drafts  *lineup.Registry // Drafts holds every in-progress editing session
	Vault   DJSource         // Vault supplies the DJ pool
	Events  EventStore       // Events stores finalized drafts
	Publish PublishFunc      // Publish announces confirmed events (optional)
}

// NewLineupHandler constructs a LineupHandler and panics when a required
// dependency is nil. Publish is optional.
func NewLineupHandler(drafts *lineup.Registry, vault DJSource, events EventStore, publish PublishFunc) *LineupHandler {
	if drafts == nil || vault == nil || events == nil {
		panic("nil dependency passed to NewLineupHandler")
	}
	return &LineupHandler{Drafts: drafts, Vault: vault, Events: events, Publish: publish}
}

// slotView is a slot as rendered to the client: the engine fields plus
// the display range and the energy-arc guidance for its start time.
type slotView struct {
	Index       int               `json:"index"`
	Time        string            `json:"time"`
	Start       string            `json:"start"`
	End         string            `json:"end"`
	DJID        uint64            `json:"dj_id"`
	ArtistAlias string            `json:"artist_alias,omitempty"`
	FeeCents    uint32            `json:"fee_cents"`
	TargetBPM   int               `json:"target_bpm,omitempty"`
	Energy      lineup.EnergyZone `json:"energy"`
}

// draftView is the full editing-session state returned by every draft
// endpoint, with the derived budget figures recomputed on each render.
type draftView struct {
	ID            string              `json:"id"`
	Details       lineup.EventDetails `json:"details"`
	Slots         []slotView          `json:"slots"`
	TotalFeeCents uint32              `json:"total_fee_cents"`
	BookedCount   int                 `json:"booked_count"`
	SlotCount     int                 `json:"slot_count"`
	CreatedAt     time.Time           `json:"created_at"`
}

// viewOf renders a draft copy into its response shape.
func viewOf(d lineup.Draft) draftView {
	slots := make([]slotView, len(d.Slots))
	for i, s := range d.Slots {
		slots[i] = slotView{
			Index:       i,
			Time:        s.TimeRange(),
			Start:       s.Start.String(),
			End:         s.End.String(),
			DJID:        s.DJID,
			ArtistAlias: s.ArtistAlias,
			FeeCents:    s.FeeCents,
			TargetBPM:   s.TargetBPM,
			Energy:      lineup.ZoneFor(s.Start),
		}
	}
	return draftView{
		ID:            d.ID,
		Details:       d.Details,
		Slots:         slots,
		TotalFeeCents: d.TotalCents(),
		BookedCount:   lineup.BookedCount(d.Slots),
		SlotCount:     len(d.Slots),
		CreatedAt:     d.CreatedAt,
	}
}

// detailsBody is the JSON shape for event metadata on draft creation and
// detail updates. Target genres accept arrays or comma-separated strings.
type detailsBody struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	TargetGenres  tagList `json:"target_genres"`
	EntryFeeCents uint32  `json:"entry_fee_cents"`
}

func (b detailsBody) toDetails() lineup.EventDetails {
	return lineup.EventDetails{
		Name:          b.Name,
		Location:      b.Location,
		Date:          b.Date,
		Description:   b.Description,
		TargetGenres:  b.TargetGenres,
		EntryFeeCents: b.EntryFeeCents,
	}
}

// CreateDraft handles POST /v1/drafts, starting a new editing session
// with the default single slot. The body is optional; details can also be
// filled in later via UpdateDetails.
func (h *LineupHandler) CreateDraft(c echo.Context) error {
	var body detailsBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	d := h.Drafts.Create(body.toDetails())
	return c.JSON(http.StatusCreated, viewOf(d))
}

// GetDraft handles GET /v1/drafts/:id.
func (h *LineupHandler) GetDraft(c echo.Context) error {
	d, ok := h.Drafts.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "draft not found"})
	}
	return c.JSON(http.StatusOK, viewOf(d))
}

// UpdateDetails handles PUT /v1/drafts/:id/details, replacing the event
// metadata of the draft.
func (h *LineupHandler) UpdateDetails(c echo.Context) error {
	var body detailsBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	d, ok, _ := h.Drafts.Update(c.Param("id"), func(d *lineup.Draft) error {
		d.Details = body.toDetails()
		return nil
	})
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "draft not found"})
	}
	return c.JSON(http.StatusOK, viewOf(d))
}

// AppendSlot handles POST /v1/drafts/:id/slots, adding a one-hour slot
// after the current last one.
func (h *LineupHandler) AppendSlot(c echo.Context) error {
	d, ok, _ := h.Drafts.Update(c.Param("id"), func(d *lineup.Draft) error {
		d.AppendSlot()
		return nil
	})
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "draft not found"})
	}
	return c.JSON(http.StatusCreated, viewOf(d))
}

// RemoveSlot handles DELETE /v1/drafts/:id/slots/:index. Removing the
// last remaining slot is silently ignored, matching the engine rule that
// a draft always keeps one slot.
func (h *LineupHandler) RemoveSlot(c echo.Context) error {
	idx, ok := pathIndex(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid slot index"})
	}
	d, found, _ := h.Drafts.Update(c.Param("id"), func(d *lineup.Draft) error {
		d.RemoveSlot(idx)
		return nil
	})
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "draft not found"})
	}
	return c.JSON(http.StatusOK, viewOf(d))
}

// UpdateSlotTime handles PATCH /v1/drafts/:id/slots/:index/time. The body
// carries "start" and/or "end" as "HH:MM" strings; when both are present
// the start edit is applied first. Edits the engine rejects (an end at or
// before the start) leave the sequence unchanged and still return 200
// with the current state, mirroring a form that simply refuses the input.
func (h *LineupHandler) UpdateSlotTime(c echo.Context) error {
	idx, ok := pathIndex(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid slot index"})
	}
	var body struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.Start == "" && body.End == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "start or end is required"})
	}
	var start, end lineup.Clock
	var err error
	if body.Start != "" {
		if start, err = lineup.ParseClock(body.Start); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start time, want HH:MM"})
		}
	}
	if body.End != "" {
		if end, err = lineup.ParseClock(body.End); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid end time, want HH:MM"})
		}
	}
	d, found, err := h.Drafts.Update(c.Param("id"), func(d *lineup.Draft) error {
		if idx >= len(d.Slots) {
			return lineup.ErrSlotIndex
		}
		if body.Start != "" {
			d.SetStart(idx, start)
		}
		if body.End != "" {
			d.SetEnd(idx, end)
		}
		return nil
	})
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "draft not found"})
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "slot index out of range"})
	}
	return c.JSON(http.StatusOK, viewOf(d))
}

// UpdateAssignment handles PUT /v1/drafts/:id/slots/:index/assignment.
// A non-zero dj_id books that DJ into the slot, snapshotting alias and
// standard fee; dj_id 0 clears the slot. Booking a DJ who already holds
// another slot in the draft is rejected with 409.
func (h *LineupHandler) UpdateAssignment(c echo.Context) error {
	idx, ok := pathIndex(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid slot index"})
	}
	var body struct {
		DJID uint64 `json:"dj_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	var dj lineup.DJ
	if body.DJID != 0 {
		record, err := h.djByID(c.Request().Context(), body.DJID)
		if err != nil {
			if errors.Is(err, repository.ErrDJNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "dj not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not fetch dj"})
		}
		dj = record
	}

	d, found, err := h.Drafts.Update(c.Param("id"), func(d *lineup.Draft) error {
		if body.DJID == 0 {
			return d.Clear(idx)
		}
		return d.Assign(idx, dj)
	})
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "draft not found"})
	}
	switch {
	case err == nil:
	case errors.Is(err, lineup.ErrSlotIndex):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "slot index out of range"})
	case errors.Is(err, lineup.ErrAlreadyBooked):
		return c.JSON(http.StatusConflict, map[string]string{"error": "dj already booked in this lineup"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update assignment"})
	}
	return c.JSON(http.StatusOK, viewOf(d))
}

// UpdateSlotFee handles PATCH /v1/drafts/:id/slots/:index/fee, overriding
// the negotiated fee for one slot.
func (h *LineupHandler) UpdateSlotFee(c echo.Context) error {
	idx, ok := pathIndex(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid slot index"})
	}
	var body struct {
		FeeCents uint32 `json:"fee_cents"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	d, found, err := h.Drafts.Update(c.Param("id"), func(d *lineup.Draft) error {
		return d.SetFee(idx, body.FeeCents)
	})
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "draft not found"})
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "slot index out of range"})
	}
	return c.JSON(http.StatusOK, viewOf(d))
}

// UpdateSlotBPM handles PATCH /v1/drafts/:id/slots/:index/bpm, recording
// a tempo hint on the slot; zero clears it.
func (h *LineupHandler) UpdateSlotBPM(c echo.Context) error {
	idx, ok := pathIndex(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid slot index"})
	}
	var body struct {
		TargetBPM int `json:"target_bpm"`
	}
	if err := c.Bind(&body); err != nil || body.TargetBPM < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	d, found, err := h.Drafts.Update(c.Param("id"), func(d *lineup.Draft) error {
		return d.SetTargetBPM(idx, body.TargetBPM)
	})
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "draft not found"})
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "slot index out of range"})
	}
	return c.JSON(http.StatusOK, viewOf(d))
}

// GetSuggestions handles GET /v1/drafts/:id/slots/:index/suggestions. It
// returns up to three unbooked candidates ranked by the engine, along
// with the slot's energy-arc guidance. An empty list is a normal outcome:
// the UI must allow manual assignment regardless.
func (h *LineupHandler) GetSuggestions(c echo.Context) error {
	idx, ok := pathIndex(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid slot index"})
	}
	d, found := h.Drafts.Get(c.Param("id"))
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "draft not found"})
	}
	if idx >= len(d.Slots) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "slot index out of range"})
	}
	pool, err := h.pool(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not fetch djs"})
	}
	suggestions := d.Suggestions(pool, idx)
	if suggestions == nil {
		suggestions = []lineup.DJ{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"suggestions": suggestions,
		"energy":      lineup.ZoneFor(d.Slots[idx].Start),
	})
}

// Finalize handles POST /v1/drafts/:id/finalize. The draft is assembled
// into its persistence payload (unassigned slots dropped, DJ identities
// snapshotted), stored as one confirmed event, announced on the broker
// and discarded. When the store fails, the draft is kept so the caller
// can retry.
func (h *LineupHandler) Finalize(c echo.Context) error {
	var body struct {
		CoordinatorID string `json:"coordinator_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	coordinator := body.CoordinatorID
	if coordinator == "" {
		coordinator = defaultCoordinatorID
	}

	d, found := h.Drafts.Get(c.Param("id"))
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "draft not found"})
	}
	pool, err := h.pool(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not fetch djs"})
	}

	payload := d.Finalize(pool)
	event := eventFromPayload(payload, coordinator)
	if err := h.Events.Create(c.Request().Context(), &event); err != nil {
		// The draft stays registered; the client may retry the save.
		log.Printf("finalize: event create failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "could not save event, draft preserved"})
	}

	if h.Publish != nil {
		msg := confirmedMessage(event, payload)
		// Publishing is best-effort; the event is already stored.
		if err := h.Publish(c.Request().Context(), msg); err != nil {
			log.Printf("finalize: publish event.confirmed failed: %v", err)
		}
	}

	h.Drafts.Delete(d.ID)
	return c.JSON(http.StatusCreated, event)
}

// pool loads the Vault and maps it into the engine's DJ view.
func (h *LineupHandler) pool(ctx context.Context) ([]lineup.DJ, error) {
	records, err := h.Vault.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	pool := make([]lineup.DJ, len(records))
	for i, r := range records {
		pool[i] = poolDJ(r)
	}
	return pool, nil
}

// djByID finds one Vault profile through the same pool load used
// everywhere else, so DJSource stays a single-method dependency.
func (h *LineupHandler) djByID(ctx context.Context, id uint64) (lineup.DJ, error) {
	pool, err := h.pool(ctx)
	if err != nil {
		return lineup.DJ{}, err
	}
	for _, dj := range pool {
		if dj.ID == id {
			return dj, nil
		}
	}
	return lineup.DJ{}, repository.ErrDJNotFound
}

// poolDJ maps a stored profile onto the engine's read-only view.
func poolDJ(r model.DJ) lineup.DJ {
	return lineup.DJ{
		ID:         r.ID,
		Alias:      r.Alias,
		LegalName:  r.LegalName(),
		Genres:     r.Genres,
		Vibes:      r.Vibes,
		Experience: r.Experience,
		FeeCents:   r.FeeCents,
		Phone:      r.ContactNumber,
		Instagram:  r.IGLink,
	}
}

// eventFromPayload converts the engine's finalize payload into the stored
// event shape.
func eventFromPayload(p lineup.FinalizePayload, coordinator string) model.Event {
	lineupRows := make([]model.LineupSlot, len(p.Lineup))
	for i, e := range p.Lineup {
		lineupRows[i] = model.LineupSlot{
			Position:    i,
			Time:        e.Time,
			DJID:        e.DJID,
			ArtistAlias: e.ArtistAlias,
			LegalName:   e.LegalName,
			Genres:      e.Genres,
			Phone:       e.Phone,
			Instagram:   e.Instagram,
			FeeCents:    e.FeeCents,
			TargetBPM:   e.TargetBPM,
		}
	}
	return model.Event{
		Name:          p.Details.Name,
		Description:   p.Details.Description,
		Date:          p.Details.Date,
		Location:      p.Details.Location,
		Status:        model.EventConfirmed,
		EventStatus:   "Upcoming",
		CoordinatorID: coordinator,
		EntryFeeCents: p.Details.EntryFeeCents,
		TotalFeeCents: p.TotalFeeCents,
		Lineup:        lineupRows,
	}
}

// confirmedMessage builds the broker payload for a stored event.
func confirmedMessage(e model.Event, p lineup.FinalizePayload) queue.EventConfirmedMessage {
	artists := make([]string, len(p.Lineup))
	times := make([]string, len(p.Lineup))
	for i, entry := range p.Lineup {
		artists[i] = entry.ArtistAlias
		times[i] = entry.Time
	}
	return queue.EventConfirmedMessage{
		EventID:       e.ID,
		Name:          e.Name,
		Date:          e.Date,
		Location:      e.Location,
		CoordinatorID: e.CoordinatorID,
		Artists:       artists,
		SlotTimes:     times,
		BookedCount:   p.BookedCount,
		TotalFeeCents: p.TotalFeeCents,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}
