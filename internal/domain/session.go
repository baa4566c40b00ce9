package domain

import "time"

// SessionState represents the mode of the intake session
type SessionState string

const (
	StateIdle           SessionState = "idle"
	StateWaitingForCase SessionState = "waiting_for_case"
	StateCollecting     SessionState = "collecting"
)

// validTransitions is the legal-transition table. Self-transitions are not
// listed and are therefore rejected.
var validTransitions = map[SessionState][]SessionState{
	StateIdle:           {StateWaitingForCase},
	StateWaitingForCase: {StateCollecting, StateIdle},
	StateCollecting:     {StateIdle},
}

// Valid reports whether s is a known session state
func (s SessionState) Valid() bool {
	switch s {
	case StateIdle, StateWaitingForCase, StateCollecting:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is in the legal-transition table
func CanTransition(from, to SessionState) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AwaitingDescription is the sub-dialog record set while the stepper waits
// for a per-photo description. A nil value means no sub-dialog is active.
type AwaitingDescription struct {
	BatchID    string `json:"batch_id"`
	EvidenceID string `json:"evidence_id"`
	Index      int    `json:"index"`
}

// ProcessingState is the batch serializer's persisted view: the single-flight
// flag, the batch currently being finalized, and the FIFO queue of ready
// batches waiting behind it.
type ProcessingState struct {
	Active         bool     `json:"active"`
	CurrentBatchID string   `json:"current_batch_id,omitempty"`
	Queue          []string `json:"queue,omitempty"`
}

// Queued reports whether batchID is already in the pending queue
func (p ProcessingState) Queued(batchID string) bool {
	for _, id := range p.Queue {
		if id == batchID {
			return true
		}
	}
	return false
}

// Snapshot is the persisted session record
type Snapshot struct {
	ActiveCaseID string               `json:"active_case_id,omitempty"`
	Dialog       *AwaitingDescription `json:"dialog,omitempty"`
	Processing   ProcessingState      `json:"processing"`
	State        SessionState         `json:"state"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// DefaultSnapshot returns the snapshot a fresh or repaired session starts from
func DefaultSnapshot() Snapshot {
	return Snapshot{State: StateIdle}
}

// Consistent reports whether the state/case-id invariant holds:
// collecting implies a case id, everything else implies none.
func (s Snapshot) Consistent() bool {
	if s.State == StateCollecting {
		return s.ActiveCaseID != ""
	}
	return s.ActiveCaseID == ""
}
