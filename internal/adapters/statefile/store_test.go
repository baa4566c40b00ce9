package statefile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patri/internal/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewStore(path), path
}

func TestStore_LoadMissingFileReturnsDefault(t *testing.T) {
	store, path := newTestStore(t)

	snap, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, snap.State)
	assert.FileExists(t, path, "corrected default is persisted")
}

func TestStore_LoadCorruptFileReturnsDefault(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	snap, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, snap.State)

	data, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	var onDisk domain.Snapshot
	require.NoError(t, json.Unmarshal(data, &onDisk), "file is rewritten as valid JSON")
	assert.Equal(t, domain.StateIdle, onDisk.State)
}

func TestStore_LoadUnknownStateReturnsDefault(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"state":"daydreaming"}`), 0644))

	snap, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, snap.State)
}

func TestStore_LoadInconsistentSnapshotReturnsDefault(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"state":"collecting"}`), 0644))

	snap, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.StateIdle, snap.State)
	assert.Empty(t, snap.ActiveCaseID)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, path := newTestStore(t)
	want := domain.Snapshot{
		ActiveCaseID: "2024-001",
		Dialog:       &domain.AwaitingDescription{BatchID: "b1", EvidenceID: "e1", Index: 2},
		Processing: domain.ProcessingState{
			Active:         true,
			CurrentBatchID: "b1",
			Queue:          []string{"b2", "b3"},
		},
		State: domain.StateCollecting,
	}

	require.NoError(t, store.Save(want))

	// Save writes the full snapshot, dialog and processing included
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk domain.Snapshot
	require.NoError(t, json.Unmarshal(data, &onDisk))
	require.NotNil(t, onDisk.Dialog)
	assert.Equal(t, 2, onDisk.Dialog.Index)
	assert.Equal(t, []string{"b2", "b3"}, onDisk.Processing.Queue)

	got, lerr := store.Load()
	require.NoError(t, lerr)
	assert.Equal(t, want.ActiveCaseID, got.ActiveCaseID)
	assert.Equal(t, want.State, got.State)
}

func TestStore_LoadDiscardsInFlightWork(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Save(domain.Snapshot{
		ActiveCaseID: "2024-001",
		Dialog:       &domain.AwaitingDescription{BatchID: "ghost", EvidenceID: "e1"},
		Processing: domain.ProcessingState{
			Active:         true,
			CurrentBatchID: "ghost",
			Queue:          []string{"b2"},
		},
		State: domain.StateCollecting,
	}))

	got, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.StateCollecting, got.State, "state survives the restart")
	assert.Equal(t, "2024-001", got.ActiveCaseID)
	assert.Nil(t, got.Dialog, "dialog points at a batch that no longer exists")
	assert.False(t, got.Processing.Active, "nothing can complete the previous run's batch")
	assert.Empty(t, got.Processing.Queue)

	// The correction is persisted, not just returned
	data, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	var onDisk domain.Snapshot
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.False(t, onDisk.Processing.Active)
	assert.Nil(t, onDisk.Dialog)
}

func TestStore_SaveReplacesAtomically(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Save(domain.DefaultSnapshot()))
	require.NoError(t, store.Save(domain.Snapshot{State: domain.StateWaitingForCase}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".session-", "no temp files left behind")
	}
}
