package services

import (
	"fmt"
	"sync"
	"time"

	"patri/internal/domain"
	"patri/internal/ports"
	"patri/logging"
)

// Machine is the session state machine. All mutation happens on the event
// loop; the mutex only guards read-only diagnostic access from other
// goroutines (CLI status, health checks).
type Machine struct {
	mu    sync.RWMutex
	snap  domain.Snapshot
	store ports.SessionStore
}

// NewMachine loads the persisted snapshot and wraps it in a state machine
func NewMachine(store ports.SessionStore) (*Machine, error) {
	snap, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	logging.Logger.Info("Session loaded", "state", snap.State, "case_id", snap.ActiveCaseID)
	return &Machine{snap: snap, store: store}, nil
}

// State returns the current session state
func (m *Machine) State() domain.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap.State
}

// ActiveCase returns the active case id, or "" when no case is active
func (m *Machine) ActiveCase() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap.ActiveCaseID
}

// Snapshot returns a copy of the current session snapshot
func (m *Machine) Snapshot() domain.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := m.snap
	if snap.Processing.Queue != nil {
		snap.Processing.Queue = append([]string(nil), snap.Processing.Queue...)
	}
	if snap.Dialog != nil {
		dialog := *snap.Dialog
		snap.Dialog = &dialog
	}
	return snap
}

// Transition validates and executes a state change. The in-memory state is
// only updated after the snapshot persists; on a store failure the prior
// state stands and a *domain.PersistenceError is returned.
func (m *Machine) Transition(to domain.SessionState, caseID string) error {
	cur := m.Snapshot()

	if to == domain.StateCollecting && caseID == "" {
		return fmt.Errorf("%w: %s requires an active case id", domain.ErrInvalidTransition, to)
	}
	if to != domain.StateCollecting && caseID != "" {
		logging.Logger.Warn("Clearing case id for non-collecting state", "state", to, "case_id", caseID)
		caseID = ""
	}
	if !domain.CanTransition(cur.State, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, cur.State, to)
	}

	next := cur
	next.State = to
	next.ActiveCaseID = caseID
	if to == domain.StateIdle {
		// Metadata does not survive a return to idle
		next.Dialog = nil
		next.Processing = domain.ProcessingState{}
	}

	if err := m.persist(next, "transition"); err != nil {
		return err
	}
	m.swap(next)
	logging.Logger.Info("State transitioned",
		"from", cur.State, "to", to,
		"old_case", cur.ActiveCaseID, "new_case", caseID)
	return nil
}

// ForceIdle resets the session to the default idle snapshot, bypassing the
// legal-transition table. Used by the dispatcher's self-heal and by
// last-resort error recovery.
func (m *Machine) ForceIdle() error {
	next := domain.DefaultSnapshot()
	if err := m.persist(next, "force idle"); err != nil {
		return err
	}
	m.swap(next)
	logging.Logger.Warn("Session force-reset to idle")
	return nil
}

// SetDialog records (or clears, with nil) the description sub-dialog.
// The in-memory value is updated even if the write fails: the sub-dialog
// guard must stay coherent on the loop, and the persisted copy only matters
// for restart recovery.
func (m *Machine) SetDialog(dialog *domain.AwaitingDescription) error {
	next := m.Snapshot()
	next.Dialog = dialog
	err := m.persist(next, "set dialog")
	m.swap(next)
	return err
}

// SetProcessing records the serializer's flag and queue. Like SetDialog,
// memory wins over the store: a failed write must not fork the single-flight
// guard.
func (m *Machine) SetProcessing(p domain.ProcessingState) error {
	next := m.Snapshot()
	next.Processing = p
	err := m.persist(next, "set processing")
	m.swap(next)
	return err
}

func (m *Machine) persist(next domain.Snapshot, op string) error {
	next.UpdatedAt = time.Now().UTC()
	if err := m.store.Save(next); err != nil {
		logging.Logger.Error("Failed to persist session", "op", op, "error", err)
		return &domain.PersistenceError{Op: op, Err: err}
	}
	return nil
}

func (m *Machine) swap(next domain.Snapshot) {
	m.mu.Lock()
	m.snap = next
	m.mu.Unlock()
}
