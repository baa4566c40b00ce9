package services

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"patri/internal/domain"
	"patri/logging"
)

const (
	// quietWindow is how long a batch must go without a new photo before it
	// is considered complete. The window restarts on every arrival.
	quietWindow = 7 * time.Second

	// sameUserWindow groups ungrouped photos from the same user when they
	// arrive this close together.
	sameUserWindow = 10 * time.Second
)

// batchTimer pairs the pending quiet-window timer with a generation counter.
// A fired callback re-enters through the loop and checks the generation
// there, so a stale timer can never mark a superseded batch ready.
type batchTimer struct {
	gen   int
	timer *clock.Timer
}

// Debouncer classifies incoming photo evidence into batches and manages the
// cancel-and-reset quiet-window timer per batch.
type Debouncer struct {
	clock      clock.Clock
	loop       Poster
	serializer *Serializer
	timers     map[string]*batchTimer
	tracker    *Tracker
	users      *gocache.Cache
}

// NewDebouncer creates a debouncer posting timer callbacks onto loop
func NewDebouncer(clk clock.Clock, loop Poster, tracker *Tracker, serializer *Serializer) *Debouncer {
	return &Debouncer{
		clock:      clk,
		loop:       loop,
		serializer: serializer,
		timers:     make(map[string]*batchTimer),
		tracker:    tracker,
		users:      gocache.New(sameUserWindow, time.Minute),
	}
}

func lastPhotoKey(userID int64) string   { return fmt.Sprintf("last:%d", userID) }
func activeBatchKey(userID int64) string { return fmt.Sprintf("batch:%d", userID) }

// Record assigns a freshly stored photo evidence id to a batch.
// Classification priority: explicit group id, then the rolling same-user
// time window, then a synthetic single-item batch submitted immediately.
func (d *Debouncer) Record(ctx context.Context, caseID string, userID int64, groupID, evidenceID string) {
	if groupID != "" {
		d.append(groupID, caseID, userID, evidenceID, domain.BatchOriginExplicitGroup)
		return
	}

	_, recent := d.users.Get(lastPhotoKey(userID))
	d.users.Set(lastPhotoKey(userID), d.clock.Now(), sameUserWindow)

	if recent {
		batchID := ""
		if v, ok := d.users.Get(activeBatchKey(userID)); ok {
			batchID = v.(string)
		} else {
			batchID = "time-" + uuid.New().String()
		}
		d.users.Set(activeBatchKey(userID), batchID, sameUserWindow)
		d.append(batchID, caseID, userID, evidenceID, domain.BatchOriginTimeWindow)
		return
	}

	// Standalone photo: no quiet wait, hand a one-item batch straight to
	// the serializer so solitary submissions are not delayed.
	d.submitSingle(ctx, caseID, userID, evidenceID)
}

func (d *Debouncer) append(batchID, caseID string, userID int64, evidenceID string, origin domain.BatchOrigin) {
	b, ok := d.tracker.Get(batchID)
	if !ok {
		b = &domain.Batch{
			CaseID: caseID,
			ID:     batchID,
			Origin: origin,
			Status: domain.BatchOpen,
			UserID: userID,
		}
		d.tracker.Put(b)
	}
	if b.Status != domain.BatchOpen {
		// The quiet window already elapsed for this id; a late arrival must
		// not touch a batch the serializer may be working on.
		logging.Logger.Warn("Photo arrived after batch closed, treating as standalone",
			"batch_id", batchID, "evidence_id", evidenceID)
		d.submitSingle(context.Background(), caseID, userID, evidenceID)
		return
	}

	b.EvidenceIDs = append(b.EvidenceIDs, evidenceID)
	d.resetTimer(batchID)
	logging.Logger.Debug("Photo assigned to batch",
		"batch_id", batchID, "evidence_id", evidenceID, "size", len(b.EvidenceIDs))
}

func (d *Debouncer) submitSingle(ctx context.Context, caseID string, userID int64, evidenceID string) {
	b := &domain.Batch{
		CaseID:      caseID,
		EvidenceIDs: []string{evidenceID},
		ID:          "single-" + evidenceID,
		Origin:      domain.BatchOriginTimeWindow,
		Status:      domain.BatchReady,
		UserID:      userID,
	}
	d.tracker.Put(b)
	d.serializer.Submit(ctx, b.ID)
}

// resetTimer cancels any pending quiet-window timer for the batch and starts
// a new one. Cancelling an unfired timer has no side effect.
func (d *Debouncer) resetTimer(batchID string) {
	bt := d.timers[batchID]
	if bt == nil {
		bt = &batchTimer{}
		d.timers[batchID] = bt
	}
	if bt.timer != nil {
		bt.timer.Stop()
	}
	bt.gen++
	gen := bt.gen
	bt.timer = d.clock.AfterFunc(quietWindow, func() {
		d.loop.Post(func() { d.onQuiet(batchID, gen) })
	})
}

// onQuiet runs on the loop when a quiet-window timer fires. Everything that
// could have changed since the timer was scheduled is re-checked here.
func (d *Debouncer) onQuiet(batchID string, gen int) {
	bt := d.timers[batchID]
	if bt == nil || bt.gen != gen {
		// Superseded by a newer timer for the same batch
		return
	}
	delete(d.timers, batchID)

	b, ok := d.tracker.Get(batchID)
	if !ok {
		logging.Logger.Debug("Quiet window elapsed for unknown batch", "batch_id", batchID)
		return
	}
	if b.Status != domain.BatchOpen {
		// Already ready or processing; never re-queue
		return
	}
	d.clearActiveMarker(b)
	if b.Empty() {
		// Every photo was deleted before the window closed; fire harmlessly
		b.Status = domain.BatchDone
		d.tracker.Remove(batchID)
		return
	}

	b.Status = domain.BatchReady
	logging.Logger.Info("Batch ready", "batch_id", batchID, "photos", len(b.EvidenceIDs), "origin", b.Origin)
	d.serializer.Submit(context.Background(), batchID)
}

func (d *Debouncer) clearActiveMarker(b *domain.Batch) {
	if b.Origin != domain.BatchOriginTimeWindow {
		return
	}
	if v, ok := d.users.Get(activeBatchKey(b.UserID)); ok && v.(string) == b.ID {
		d.users.Delete(activeBatchKey(b.UserID))
	}
}

// StopAll cancels every pending timer and forgets the per-user windows.
// Called when the session leaves evidence collection.
func (d *Debouncer) StopAll() {
	for id, bt := range d.timers {
		if bt.timer != nil {
			bt.timer.Stop()
		}
		delete(d.timers, id)
	}
	d.users.Flush()
}
