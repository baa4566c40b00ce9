package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_LegalMoves(t *testing.T) {
	tests := []struct {
		name string
		from SessionState
		to   SessionState
	}{
		{"idle to waiting", StateIdle, StateWaitingForCase},
		{"waiting to collecting", StateWaitingForCase, StateCollecting},
		{"waiting back to idle", StateWaitingForCase, StateIdle},
		{"collecting to idle", StateCollecting, StateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanTransition_IllegalMoves(t *testing.T) {
	tests := []struct {
		name string
		from SessionState
		to   SessionState
	}{
		{"idle straight to collecting", StateIdle, StateCollecting},
		{"collecting back to waiting", StateCollecting, StateWaitingForCase},
		{"idle to idle", StateIdle, StateIdle},
		{"collecting to collecting", StateCollecting, StateCollecting},
		{"unknown source", SessionState("bogus"), StateIdle},
		{"unknown target", StateIdle, SessionState("bogus")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, CanTransition(tt.from, tt.to))
		})
	}
}

func TestSessionState_Valid(t *testing.T) {
	assert.True(t, StateIdle.Valid())
	assert.True(t, StateWaitingForCase.Valid())
	assert.True(t, StateCollecting.Valid())
	assert.False(t, SessionState("").Valid())
	assert.False(t, SessionState("paused").Valid())
}

func TestSnapshot_Consistent(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{"default idle", DefaultSnapshot(), true},
		{"collecting with case", Snapshot{State: StateCollecting, ActiveCaseID: "2024-001"}, true},
		{"collecting without case", Snapshot{State: StateCollecting}, false},
		{"idle with case", Snapshot{State: StateIdle, ActiveCaseID: "2024-001"}, false},
		{"waiting with case", Snapshot{State: StateWaitingForCase, ActiveCaseID: "2024-001"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snap.Consistent())
		})
	}
}

func TestProcessingState_Queued(t *testing.T) {
	p := ProcessingState{Queue: []string{"a", "b"}}
	assert.True(t, p.Queued("a"))
	assert.True(t, p.Queued("b"))
	assert.False(t, p.Queued("c"))
	assert.False(t, ProcessingState{}.Queued("a"))
}

func TestBatch_RemoveEvidence(t *testing.T) {
	b := Batch{ID: "batch-1", EvidenceIDs: []string{"e1", "e2", "e3"}}

	assert.True(t, b.RemoveEvidence("e2"))
	assert.Equal(t, []string{"e1", "e3"}, b.EvidenceIDs)

	assert.False(t, b.RemoveEvidence("e2"), "removing twice returns false")
	assert.Equal(t, []string{"e1", "e3"}, b.EvidenceIDs)

	assert.True(t, b.RemoveEvidence("e1"))
	assert.True(t, b.RemoveEvidence("e3"))
	assert.True(t, b.Empty())
}

func TestCaseInfo_FindEvidence(t *testing.T) {
	info := CaseInfo{
		ID: "2024-001",
		Evidence: []EvidenceItem{
			{ID: "e1", Type: EvidencePhoto},
			{ID: "e2", Type: EvidenceText},
		},
	}

	item := info.FindEvidence("e2")
	assert.NotNil(t, item)
	assert.Equal(t, EvidenceText, item.Type)
	assert.Nil(t, info.FindEvidence("missing"))
}
