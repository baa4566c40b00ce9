package services

import "patri/internal/domain"

// Tracker owns the session's batch records. It replaces the module-level
// maps the workflow used to share: one instance per session, passed
// explicitly to the debouncer, serializer, and stepper, and touched only
// from loop tasks.
type Tracker struct {
	batches   map[string]*domain.Batch
	committed map[string]bool
}

// NewTracker creates an empty batch tracker
func NewTracker() *Tracker {
	return &Tracker{
		batches:   make(map[string]*domain.Batch),
		committed: make(map[string]bool),
	}
}

// Get returns the tracked batch with the given id
func (t *Tracker) Get(id string) (*domain.Batch, bool) {
	b, ok := t.batches[id]
	return b, ok
}

// Put starts tracking a batch
func (t *Tracker) Put(b *domain.Batch) {
	t.batches[b.ID] = b
}

// Remove stops tracking a batch
func (t *Tracker) Remove(id string) {
	delete(t.batches, id)
}

// MarkCommitted records that a batch finished its commit step
func (t *Tracker) MarkCommitted(id string) {
	t.committed[id] = true
}

// Committed reports whether a batch already committed, so duplicate
// completion signals stay no-ops
func (t *Tracker) Committed(id string) bool {
	return t.committed[id]
}

// Reset drops all tracked batches and commit markers. Called when the
// session leaves evidence collection.
func (t *Tracker) Reset() {
	t.batches = make(map[string]*domain.Batch)
	t.committed = make(map[string]bool)
}
