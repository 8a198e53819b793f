package lineup

import (
	"sync"

	"github.com/google/uuid"
)

// Registry holds the drafts currently being edited, keyed by session id.
// Drafts live only in memory: navigating away and never finalizing simply
// leaves a draft to be dropped with the process. Each draft is edited by a
// single user, but the HTTP server itself is concurrent, so the registry
// serializes all access.
type Registry struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewRegistry returns an empty draft registry.
func NewRegistry() *Registry {
	return &Registry{drafts: make(map[string]*Draft)}
}

// snapshot returns a copy of the draft whose slices are detached from the
// live draft, so callers can hold it across later edits.
func snapshot(d *Draft) Draft {
	out := *d
	out.Slots = clone(d.Slots)
	out.Details.TargetGenres = append([]string(nil), d.Details.TargetGenres...)
	return out
}

// Create starts a new draft with the given event details and the default
// single slot, registers it under a fresh id and returns a copy.
func (r *Registry) Create(details EventDetails) Draft {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := NewDraft(uuid.NewString(), details)
	r.drafts[d.ID] = d
	return snapshot(d)
}

// Get returns a copy of the draft with the given id, or false when no such
// draft exists.
func (r *Registry) Get(id string) (Draft, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[id]
	if !ok {
		return Draft{}, false
	}
	return snapshot(d), true
}

// Update applies fn to the draft with the given id while holding the
// registry lock, then returns a copy of the updated draft. It returns
// false when the draft does not exist; any error from fn is passed
// through with the draft left as fn last saw it.
func (r *Registry) Update(id string, fn func(*Draft) error) (Draft, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[id]
	if !ok {
		return Draft{}, false, nil
	}
	if err := fn(d); err != nil {
		return snapshot(d), true, err
	}
	return snapshot(d), true, nil
}

// Delete discards the draft with the given id. Deleting an unknown id is
// harmless.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id)
}
