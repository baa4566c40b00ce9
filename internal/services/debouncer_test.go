package services

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patri/internal/domain"
)

// inlinePoster runs loop tasks synchronously, which is what the loop does
// from the test goroutine's point of view
type inlinePoster struct{}

func (inlinePoster) Post(fn func()) { fn() }

// recordingStarter captures the batches handed to the serializer's slot
type recordingStarter struct {
	err     error
	started []string
}

func (r *recordingStarter) Start(ctx context.Context, batchID string) error {
	r.started = append(r.started, batchID)
	return r.err
}

type batchRig struct {
	clock      *clock.Mock
	debouncer  *Debouncer
	machine    *Machine
	serializer *Serializer
	starter    *recordingStarter
	tracker    *Tracker
}

func newBatchRig(t *testing.T) *batchRig {
	t.Helper()
	store := newMemStore()
	store.snap = domain.Snapshot{State: domain.StateCollecting, ActiveCaseID: "2024-001"}
	machine := newTestMachine(t, store)

	tracker := NewTracker()
	serializer := NewSerializer(machine, tracker)
	starter := &recordingStarter{}
	serializer.SetStarter(starter)

	clk := clock.NewMock()
	return &batchRig{
		clock:      clk,
		debouncer:  NewDebouncer(clk, inlinePoster{}, tracker, serializer),
		machine:    machine,
		serializer: serializer,
		starter:    starter,
		tracker:    tracker,
	}
}

func TestDebouncer_GroupedPhotosBatchTogether(t *testing.T) {
	rig := newBatchRig(t)
	ctx := context.Background()

	rig.debouncer.Record(ctx, "2024-001", 1, "g1", "e1")
	rig.clock.Add(2 * time.Second)
	rig.debouncer.Record(ctx, "2024-001", 1, "g1", "e2")
	rig.clock.Add(2 * time.Second)
	rig.debouncer.Record(ctx, "2024-001", 1, "g1", "e3")

	// Last photo at t=4s; the window resets each arrival so nothing fires
	// before t=11s
	rig.clock.Add(6 * time.Second)
	assert.Empty(t, rig.starter.started)

	rig.clock.Add(1 * time.Second)
	require.Equal(t, []string{"g1"}, rig.starter.started)

	b, ok := rig.tracker.Get("g1")
	require.True(t, ok)
	assert.Equal(t, []string{"e1", "e2", "e3"}, b.EvidenceIDs)
	assert.Equal(t, domain.BatchOriginExplicitGroup, b.Origin)
	assert.Equal(t, domain.BatchProcessing, b.Status)
}

func TestDebouncer_EveryArrivalResetsWindow(t *testing.T) {
	rig := newBatchRig(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		rig.debouncer.Record(ctx, "2024-001", 1, "g1", "e1")
		rig.clock.Add(5 * time.Second)
	}
	assert.Empty(t, rig.starter.started, "window keeps resetting while photos arrive")

	rig.clock.Add(2 * time.Second)
	assert.Equal(t, []string{"g1"}, rig.starter.started, "exactly one ready signal")
}

func TestDebouncer_StandalonePhotoSubmitsImmediately(t *testing.T) {
	rig := newBatchRig(t)

	rig.debouncer.Record(context.Background(), "2024-001", 1, "", "e1")

	require.Equal(t, []string{"single-e1"}, rig.starter.started)
	b, ok := rig.tracker.Get("single-e1")
	require.True(t, ok)
	assert.Equal(t, []string{"e1"}, b.EvidenceIDs)
}

func TestDebouncer_RapidUngroupedPhotosShareTimeBatch(t *testing.T) {
	rig := newBatchRig(t)
	ctx := context.Background()

	// First ungrouped photo goes out alone and opens the rolling window
	rig.debouncer.Record(ctx, "2024-001", 1, "", "e1")
	require.Len(t, rig.starter.started, 1)
	rig.serializer.Complete(ctx, "single-e1")

	// Siblings inside the window share one time batch
	rig.debouncer.Record(ctx, "2024-001", 1, "", "e2")
	rig.debouncer.Record(ctx, "2024-001", 1, "", "e3")

	rig.clock.Add(quietWindow)
	require.Len(t, rig.starter.started, 2)

	b, ok := rig.tracker.Get(rig.starter.started[1])
	require.True(t, ok)
	assert.Equal(t, []string{"e2", "e3"}, b.EvidenceIDs)
	assert.Equal(t, domain.BatchOriginTimeWindow, b.Origin)
}

func TestDebouncer_UsersBatchIndependently(t *testing.T) {
	rig := newBatchRig(t)
	ctx := context.Background()

	rig.debouncer.Record(ctx, "2024-001", 1, "g1", "e1")
	rig.debouncer.Record(ctx, "2024-001", 2, "g2", "e2")

	rig.clock.Add(quietWindow)

	// Both fire at the same instant; the second waits behind the slot
	require.Len(t, rig.starter.started, 1)
	rig.serializer.Complete(ctx, rig.starter.started[0])
	assert.ElementsMatch(t, []string{"g1", "g2"}, rig.starter.started)
}

func TestDebouncer_UngroupedWindowsAreKeyedPerUser(t *testing.T) {
	rig := newBatchRig(t)
	ctx := context.Background()

	// Each user's first lone photo opens that user's rolling window
	rig.debouncer.Record(ctx, "2024-001", 1, "", "e1")
	rig.serializer.Complete(ctx, "single-e1")
	rig.clock.Add(1 * time.Second)
	rig.debouncer.Record(ctx, "2024-001", 2, "", "e2")
	rig.serializer.Complete(ctx, "single-e2")

	// Both users follow up inside the window, interleaved
	rig.clock.Add(2 * time.Second)
	rig.debouncer.Record(ctx, "2024-001", 1, "", "e3")
	rig.clock.Add(1 * time.Second)
	rig.debouncer.Record(ctx, "2024-001", 2, "", "e4")

	rig.clock.Add(quietWindow)
	require.Len(t, rig.starter.started, 3, "one time batch fired, the other waits for the slot")
	rig.serializer.Complete(ctx, rig.starter.started[2])
	require.Len(t, rig.starter.started, 4)

	first, ok := rig.tracker.Get(rig.starter.started[2])
	require.True(t, ok)
	second, ok := rig.tracker.Get(rig.starter.started[3])
	require.True(t, ok)

	assert.NotEqual(t, first.ID, second.ID, "users never share a time batch")
	assert.Equal(t, []string{"e3"}, first.EvidenceIDs)
	assert.Equal(t, int64(1), first.UserID)
	assert.Equal(t, []string{"e4"}, second.EvidenceIDs)
	assert.Equal(t, int64(2), second.UserID)
	assert.Equal(t, domain.BatchOriginTimeWindow, first.Origin)
	assert.Equal(t, domain.BatchOriginTimeWindow, second.Origin)
}

func TestDebouncer_StaleTimerDoesNotFire(t *testing.T) {
	rig := newBatchRig(t)
	ctx := context.Background()

	rig.debouncer.Record(ctx, "2024-001", 1, "g1", "e1")
	rig.clock.Add(5 * time.Second)
	rig.debouncer.Record(ctx, "2024-001", 1, "g1", "e2")

	// t=7s is where the first timer would have fired
	rig.clock.Add(2 * time.Second)
	assert.Empty(t, rig.starter.started)

	rig.clock.Add(5 * time.Second)
	assert.Equal(t, []string{"g1"}, rig.starter.started)
}

func TestDebouncer_EmptiedBatchFiresHarmlessly(t *testing.T) {
	rig := newBatchRig(t)
	ctx := context.Background()

	rig.debouncer.Record(ctx, "2024-001", 1, "g1", "e1")
	b, ok := rig.tracker.Get("g1")
	require.True(t, ok)
	b.RemoveEvidence("e1")

	rig.clock.Add(quietWindow)

	assert.Empty(t, rig.starter.started)
	_, ok = rig.tracker.Get("g1")
	assert.False(t, ok, "emptied batch is dropped")
}

func TestDebouncer_LateArrivalAfterCloseBecomesStandalone(t *testing.T) {
	rig := newBatchRig(t)
	ctx := context.Background()

	rig.debouncer.Record(ctx, "2024-001", 1, "g1", "e1")
	rig.clock.Add(quietWindow)
	require.Equal(t, []string{"g1"}, rig.starter.started)

	// Same group id arrives after the batch closed
	rig.debouncer.Record(ctx, "2024-001", 1, "g1", "e2")

	b, ok := rig.tracker.Get("g1")
	require.True(t, ok)
	assert.Equal(t, []string{"e1"}, b.EvidenceIDs, "closed batch is untouched")
	_, ok = rig.tracker.Get("single-e2")
	assert.True(t, ok, "late photo becomes its own batch")
}

func TestDebouncer_StopAllCancelsTimers(t *testing.T) {
	rig := newBatchRig(t)
	ctx := context.Background()

	rig.debouncer.Record(ctx, "2024-001", 1, "g1", "e1")
	rig.debouncer.StopAll()

	rig.clock.Add(quietWindow)
	assert.Empty(t, rig.starter.started)
}
