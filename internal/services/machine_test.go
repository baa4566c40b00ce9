package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patri/internal/domain"
)

// memStore is an in-memory ports.SessionStore for service tests
type memStore struct {
	failSave bool
	saves    int
	snap     domain.Snapshot
}

func newMemStore() *memStore {
	return &memStore{snap: domain.DefaultSnapshot()}
}

func (s *memStore) Load() (domain.Snapshot, error) {
	return s.snap, nil
}

func (s *memStore) Save(snap domain.Snapshot) error {
	if s.failSave {
		return errors.New("disk full")
	}
	s.snap = snap
	s.saves++
	return nil
}

func newTestMachine(t *testing.T, store *memStore) *Machine {
	t.Helper()
	m, err := NewMachine(store)
	require.NoError(t, err)
	return m
}

func TestMachine_Transition_PersistsBeforeSwap(t *testing.T) {
	store := newMemStore()
	m := newTestMachine(t, store)

	require.NoError(t, m.Transition(domain.StateWaitingForCase, ""))

	assert.Equal(t, domain.StateWaitingForCase, m.State())
	assert.Equal(t, domain.StateWaitingForCase, store.snap.State)
	assert.False(t, store.snap.UpdatedAt.IsZero())
}

func TestMachine_Transition_RejectsIllegalMove(t *testing.T) {
	store := newMemStore()
	m := newTestMachine(t, store)

	err := m.Transition(domain.StateCollecting, "2024-001")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StateIdle, m.State())
	assert.Zero(t, store.saves, "illegal transition must not touch the store")
}

func TestMachine_Transition_CollectingRequiresCase(t *testing.T) {
	store := newMemStore()
	m := newTestMachine(t, store)
	require.NoError(t, m.Transition(domain.StateWaitingForCase, ""))

	err := m.Transition(domain.StateCollecting, "")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StateWaitingForCase, m.State())
}

func TestMachine_Transition_ClearsCaseForNonCollecting(t *testing.T) {
	store := newMemStore()
	m := newTestMachine(t, store)

	require.NoError(t, m.Transition(domain.StateWaitingForCase, "2024-001"))

	assert.Equal(t, "", m.ActiveCase())
}

func TestMachine_Transition_StoreFailureKeepsState(t *testing.T) {
	store := newMemStore()
	m := newTestMachine(t, store)
	store.failSave = true

	err := m.Transition(domain.StateWaitingForCase, "")

	var perr *domain.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, domain.StateIdle, m.State(), "failed persist must not change state")
}

func TestMachine_Transition_IdleClearsMetadata(t *testing.T) {
	store := newMemStore()
	m := newTestMachine(t, store)
	require.NoError(t, m.Transition(domain.StateWaitingForCase, ""))
	require.NoError(t, m.Transition(domain.StateCollecting, "2024-001"))
	require.NoError(t, m.SetDialog(&domain.AwaitingDescription{BatchID: "b1", EvidenceID: "e1"}))
	require.NoError(t, m.SetProcessing(domain.ProcessingState{Active: true, CurrentBatchID: "b1", Queue: []string{"b2"}}))

	require.NoError(t, m.Transition(domain.StateIdle, ""))

	snap := m.Snapshot()
	assert.Nil(t, snap.Dialog)
	assert.False(t, snap.Processing.Active)
	assert.Empty(t, snap.Processing.Queue)
}

func TestMachine_SetDialog_MemoryWinsOnStoreFailure(t *testing.T) {
	store := newMemStore()
	m := newTestMachine(t, store)
	require.NoError(t, m.Transition(domain.StateWaitingForCase, ""))
	require.NoError(t, m.Transition(domain.StateCollecting, "2024-001"))
	store.failSave = true

	err := m.SetDialog(&domain.AwaitingDescription{BatchID: "b1", EvidenceID: "e1", Index: 2})

	require.Error(t, err)
	dialog := m.Snapshot().Dialog
	require.NotNil(t, dialog, "dialog must be set in memory even when persist fails")
	assert.Equal(t, 2, dialog.Index)
}

func TestMachine_ForceIdle_BypassesTransitionTable(t *testing.T) {
	store := newMemStore()
	store.snap = domain.Snapshot{State: domain.StateCollecting, ActiveCaseID: "2024-001"}
	m := newTestMachine(t, store)

	require.NoError(t, m.ForceIdle())

	assert.Equal(t, domain.StateIdle, m.State())
	assert.Equal(t, "", m.ActiveCase())
	assert.Equal(t, domain.StateIdle, store.snap.State)
}

func TestMachine_Snapshot_ReturnsCopy(t *testing.T) {
	store := newMemStore()
	m := newTestMachine(t, store)
	require.NoError(t, m.SetProcessing(domain.ProcessingState{Active: true, CurrentBatchID: "b1", Queue: []string{"b2"}}))

	snap := m.Snapshot()
	snap.Processing.Queue[0] = "mutated"
	snap.State = domain.StateCollecting

	assert.Equal(t, "b2", m.Snapshot().Processing.Queue[0])
	assert.Equal(t, domain.StateIdle, m.State())
}
