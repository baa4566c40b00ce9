package ports

import "patri/internal/domain"

// SessionStore persists the session snapshot. Load must return a corrected
// default snapshot (and persist it) when the backing file is missing,
// corrupted, or violates the state/case-id invariant, and must drop any
// persisted dialog or processing markers, since the batch registry behind
// them does not survive a restart. Save must be atomic: write to a temp
// file, then rename.
type SessionStore interface {
	Load() (domain.Snapshot, error)
	Save(snapshot domain.Snapshot) error
}
