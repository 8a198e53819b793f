package handler // handler package contains event read/delete handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grooveops/server/internal/model"
	"github.com/grooveops/server/internal/repository"
)

// EventHandler serves stored events. Events are created exclusively
// through draft finalization (see LineupHandler); this handler covers
// browsing, status changes and deletion.
type EventHandler struct {
	EventRepo *repository.EventRepo // EventRepo provides event persistence
}

// NewEventHandler constructs an EventHandler and panics if the repository
// is nil.
func NewEventHandler(eventRepo *repository.EventRepo) *EventHandler {
	if eventRepo == nil {
		panic("nil repository passed to NewEventHandler")
	}
	return &EventHandler{EventRepo: eventRepo}
}

// GetEvents handles GET /v1/events and returns every event ordered by
// date, each with its stored lineup.
func (h *EventHandler) GetEvents(c echo.Context) error {
	events, err := h.EventRepo.GetAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not fetch events"})
	}
	return c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /v1/events/:id and returns one event with its
// lineup.
func (h *EventHandler) GetEvent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event id"})
	}
	event, err := h.EventRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not fetch event"})
	}
	return c.JSON(http.StatusOK, event)
}

// UpdateEventStatus handles PATCH /v1/events/:id/status, moving an event
// between draft, confirmed and cancelled.
func (h *EventHandler) UpdateEventStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	status := strings.TrimSpace(body.Status)
	switch status {
	case model.EventDraft, model.EventConfirmed, model.EventCancelled:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "status must be draft, confirmed or cancelled"})
	}
	err := h.EventRepo.UpdateStatus(c.Request().Context(), id, status)
	switch {
	case err == nil, errors.Is(err, repository.ErrNoChange):
		// Setting the status it already has is accepted silently.
	case errors.Is(err, repository.ErrEventNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "event not found"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update event"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": status})
}

// DeleteEvent handles DELETE /v1/events/:id, removing the event and its
// lineup rows.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event id"})
	}
	if err := h.EventRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete event"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "event deleted successfully"})
}
