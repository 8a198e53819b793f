// Package repository contains the data access layer. Sentinel errors are
// defined here so handlers can map storage failures onto HTTP statuses
// without inspecting driver-specific error strings themselves.
package repository

import "errors"

// ErrDJNotFound is returned when a Vault profile lookup matches no row.
// Handlers should translate this into an HTTP 404 response.
var ErrDJNotFound = errors.New("dj not found")

// ErrEventNotFound is returned when an event lookup matches no row.
// Handlers should translate this into an HTTP 404 response.
var ErrEventNotFound = errors.New("event not found")

// ErrEmailExists is returned when creating or updating a DJ would reuse an
// email already registered in the Vault. Handlers should translate this
// into an HTTP 400 response with a descriptive message.
var ErrEmailExists = errors.New("email already registered")

// ErrNoChange is returned when an UPDATE matched a row but every field was
// already equal to the submitted values.
var ErrNoChange = errors.New("no change")
