package services

import (
	"context"
	"fmt"

	"patri/internal/domain"
	"patri/logging"
)

// Starter kicks off finalization of a ready batch. Implemented by the
// description stepper; a separate interface keeps the serializer free of the
// stepper's transport concerns.
type Starter interface {
	Start(ctx context.Context, batchID string) error
}

// Serializer guarantees at most one batch is being finalized at a time,
// queueing further ready batches FIFO. The flag and queue live in the
// session snapshot so a restart mid-batch can be diagnosed.
type Serializer struct {
	machine *Machine
	starter Starter
	tracker *Tracker
}

// NewSerializer creates a serializer. The starter is wired afterwards via
// SetStarter because the stepper needs the serializer for its completion
// path.
func NewSerializer(machine *Machine, tracker *Tracker) *Serializer {
	return &Serializer{machine: machine, tracker: tracker}
}

// SetStarter wires the batch finalizer
func (s *Serializer) SetStarter(starter Starter) {
	s.starter = starter
}

// Submit hands a ready batch to the serializer: it starts immediately when
// the single-flight slot is free, otherwise it joins the pending queue.
// Enqueueing is deduplicated — a batch already holding the slot or already
// queued is never added twice.
func (s *Serializer) Submit(ctx context.Context, batchID string) {
	p := s.machine.Snapshot().Processing

	if p.Active {
		if p.CurrentBatchID == batchID || p.Queued(batchID) {
			logging.Logger.Warn("Batch already queued or processing, ignoring",
				"batch_id", batchID)
			return
		}
		p.Queue = append(p.Queue, batchID)
		if err := s.machine.SetProcessing(p); err != nil {
			logging.Logger.Error("Failed to persist pending queue", "error", err)
		}
		logging.Logger.Info("Batch queued behind current", "batch_id", batchID, "queue_len", len(p.Queue))
		return
	}

	p.Active = true
	p.CurrentBatchID = batchID
	if err := s.machine.SetProcessing(p); err != nil {
		logging.Logger.Error("Failed to persist processing flag", "error", err)
	}
	s.run(ctx, batchID)
}

// run starts finalization for the batch currently holding the slot. The
// completion bookkeeping is guaranteed: if the starter fails or panics, the
// slot is released and the queue drained so the session cannot deadlock.
func (s *Serializer) run(ctx context.Context, batchID string) {
	if b, ok := s.tracker.Get(batchID); ok {
		b.Status = domain.BatchProcessing
	}

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("batch finalize panicked: %v", r)
			}
		}()
		err = s.starter.Start(ctx, batchID)
	}()

	if err != nil {
		logging.Logger.Error("Batch finalize failed to start", "batch_id", batchID, "error", err)
		s.Complete(ctx, batchID)
	}
	// On success the stepper drives the sub-dialog across later events and
	// calls Complete on its terminal path.
}

// Complete releases the single-flight slot held by batchID and starts the
// next queued batch, if any. Calling it for a batch that does not hold the
// slot is a logged no-op, which makes duplicate completion signals safe.
func (s *Serializer) Complete(ctx context.Context, batchID string) {
	p := s.machine.Snapshot().Processing

	if !p.Active || p.CurrentBatchID != batchID {
		logging.Logger.Warn("Completion signal from batch not holding the slot",
			"batch_id", batchID, "current", p.CurrentBatchID)
		return
	}

	if len(p.Queue) == 0 {
		if err := s.machine.SetProcessing(domain.ProcessingState{}); err != nil {
			logging.Logger.Error("Failed to clear processing flag", "error", err)
		}
		logging.Logger.Debug("Batch processing complete, queue empty", "batch_id", batchID)
		return
	}

	next := p.Queue[0]
	p.Queue = append([]string(nil), p.Queue[1:]...)
	p.CurrentBatchID = next
	if err := s.machine.SetProcessing(p); err != nil {
		logging.Logger.Error("Failed to persist queue pop", "error", err)
	}
	logging.Logger.Info("Draining next batch from queue", "batch_id", next, "remaining", len(p.Queue))
	s.run(ctx, next)
}
