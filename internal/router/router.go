package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/grooveops/server/internal/handler" // import the handlers that implement request logic
)

// RegisterRoutes registers routes that do not belong to a resource group
// on the provided Echo instance. Currently it exposes only a health
// check, used by load balancers and monitoring systems to verify that
// the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterVault registers the DJ profile CRUD under /v1/djs. The Vault is
// the roster every lineup draws from; all routes are unauthenticated (the
// tool is single-operator by design). The cache middleware is applied at
// group level so draft sessions, which are mutable, stay uncached.
func RegisterVault(e *echo.Echo, v *handler.VaultHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/djs")
	g.Use(cache)
	// Register a new profile in the Vault.
	g.POST("", v.CreateDJ)
	// List every profile, newest first.
	g.GET("", v.GetDJs)
	// Fetch a single profile by id.
	g.GET("/:id", v.GetDJ)
	// Rewrite a profile in full.
	g.PUT("/:id", v.UpdateDJ)
	// Remove a profile. Stored lineups keep their snapshots.
	g.DELETE("/:id", v.DeleteDJ)
}

// RegisterEvents registers the stored-event browse and management routes
// under /v1/events. Events are only ever created by finalizing a draft,
// so there is no POST here.
func RegisterEvents(e *echo.Echo, ev *handler.EventHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/events")
	g.Use(cache)
	// List every event with its lineup, ordered by date.
	g.GET("", ev.GetEvents)
	// Fetch one event with its lineup.
	g.GET("/:id", ev.GetEvent)
	// Move an event between draft/confirmed/cancelled.
	g.PATCH("/:id/status", ev.UpdateEventStatus)
	// Delete an event together with its lineup rows.
	g.DELETE("/:id", ev.DeleteEvent)
}

// RegisterDrafts registers the lineup builder session routes under
// /v1/drafts. Each draft is one in-memory editing session; every slot
// operation returns the full updated draft so the client never has to
// reconstruct state.
func RegisterDrafts(e *echo.Echo, l *handler.LineupHandler) {
	g := e.Group("/v1/drafts")
	// Start a new draft with the default single slot.
	g.POST("", l.CreateDraft)
	// Read the current state of a draft.
	g.GET("/:id", l.GetDraft)
	// Replace the event metadata of a draft.
	g.PUT("/:id/details", l.UpdateDetails)
	// Append a one-hour slot after the current last one.
	g.POST("/:id/slots", l.AppendSlot)
	// Remove a slot; the seam it leaves is repaired locally.
	g.DELETE("/:id/slots/:index", l.RemoveSlot)
	// Edit a slot's start and/or end time.
	g.PATCH("/:id/slots/:index/time", l.UpdateSlotTime)
	// Book a DJ into a slot or clear the assignment.
	g.PUT("/:id/slots/:index/assignment", l.UpdateAssignment)
	// Override the negotiated fee for a slot.
	g.PATCH("/:id/slots/:index/fee", l.UpdateSlotFee)
	// Record a tempo hint on a slot.
	g.PATCH("/:id/slots/:index/bpm", l.UpdateSlotBPM)
	// Rank candidate DJs for a slot.
	g.GET("/:id/slots/:index/suggestions", l.GetSuggestions)
	// Store the draft as a confirmed event and discard it.
	g.POST("/:id/finalize", l.Finalize)
}
