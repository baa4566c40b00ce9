package services

import (
	"context"
	"fmt"

	"patri/internal/domain"
	"patri/internal/ports"
	"patri/logging"
)

// Stepper walks a ready photo batch through finalization: the fingerprint
// question, then one description request per photo, then the commit that
// promotes the photos to permanent storage. It implements Starter; entering
// and leaving the single-flight slot is the serializer's job, the stepper
// only signals Complete on its terminal paths.
type Stepper struct {
	cases      ports.CaseStore
	machine    *Machine
	serializer *Serializer
	tracker    *Tracker
	transport  ports.Transport
}

// NewStepper creates the batch finalization stepper
func NewStepper(cases ports.CaseStore, machine *Machine, serializer *Serializer, tracker *Tracker, transport ports.Transport) *Stepper {
	return &Stepper{
		cases:      cases,
		machine:    machine,
		serializer: serializer,
		tracker:    tracker,
		transport:  transport,
	}
}

// Start opens finalization for a batch by asking whether its photos are
// fingerprints. A missing or empty batch is an error so the serializer
// releases the slot instead of waiting for an answer that can never come.
func (s *Stepper) Start(ctx context.Context, batchID string) error {
	b, ok := s.tracker.Get(batchID)
	if !ok {
		return fmt.Errorf("start batch %s: %w", batchID, domain.ErrBatchNotFound)
	}
	if b.Empty() {
		return fmt.Errorf("start batch %s: no evidence left", batchID)
	}

	_, err := s.transport.SendMessage(ctx, b.UserID, msgFingerprints, ports.SendOptions{
		Choices: []ports.Choice{
			{Data: cbFingerprintYes + batchID, Label: "Yes"},
			{Data: cbFingerprintNo + batchID, Label: "No"},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to ask fingerprint question: %w", err)
	}
	logging.Logger.Info("Fingerprint question sent", "batch_id", batchID, "photos", len(b.EvidenceIDs))
	return nil
}

// HandleFingerprint processes the yes/no answer. A stale answer, for a batch
// no longer tracked, is ignored: the buttons outlive the batch in the chat
// history and can be tapped long after commit.
func (s *Stepper) HandleFingerprint(ctx context.Context, userID int64, batchID string, isFingerprint bool) error {
	b, ok := s.tracker.Get(batchID)
	if !ok {
		logging.Logger.Warn("Fingerprint answer for unknown batch, ignoring", "batch_id", batchID)
		return nil
	}

	for _, eid := range b.EvidenceIDs {
		yes := isFingerprint
		update := domain.EvidenceUpdate{IsFingerprint: &yes}
		if err := s.cases.UpdateEvidence(ctx, b.CaseID, eid, update); err != nil {
			return fmt.Errorf("failed to flag evidence %s: %w", eid, err)
		}
	}

	if isFingerprint {
		if _, err := s.transport.SendMessage(ctx, userID, msgFingerprintsYes, ports.SendOptions{}); err != nil {
			logging.Logger.Error("Failed to confirm fingerprint answer", "error", err)
		}
		return s.Commit(ctx, userID, batchID)
	}

	if _, err := s.transport.SendMessage(ctx, userID, msgFingerprintsNo, ports.SendOptions{}); err != nil {
		logging.Logger.Error("Failed to confirm fingerprint answer", "error", err)
	}
	return s.Request(ctx, userID, batchID, 0)
}

// Request asks for the description of the batch photo at index, re-sending
// the photo so the user sees what they are describing. Indices past the end
// mean every photo is described and the batch commits. A photo that has
// vanished from the store is skipped.
func (s *Stepper) Request(ctx context.Context, userID int64, batchID string, index int) error {
	b, ok := s.tracker.Get(batchID)
	if !ok {
		return fmt.Errorf("describe batch %s: %w", batchID, domain.ErrBatchNotFound)
	}
	if index >= len(b.EvidenceIDs) {
		if _, err := s.transport.SendMessage(ctx, userID, msgAllDescribed, ports.SendOptions{}); err != nil {
			logging.Logger.Error("Failed to send completion message", "error", err)
		}
		return s.Commit(ctx, userID, batchID)
	}

	info, err := s.cases.LoadCase(ctx, b.CaseID)
	if err != nil {
		return fmt.Errorf("failed to load case %s: %w", b.CaseID, err)
	}

	evidenceID := b.EvidenceIDs[index]
	item := info.FindEvidence(evidenceID)
	if item == nil {
		logging.Logger.Warn("Batch references missing evidence, skipping",
			"batch_id", batchID, "evidence_id", evidenceID)
		return s.Request(ctx, userID, batchID, index+1)
	}

	caption := fmt.Sprintf("Photo %d/%d: please describe this photo.", index+1, len(b.EvidenceIDs))
	del := fmt.Sprintf("%s%s:%s:%d", cbDeletePhoto, batchID, evidenceID, index)
	_, err = s.transport.SendPhoto(ctx, userID, domain.FileRef(item.RemoteFileID), caption, ports.SendOptions{
		Choices: []ports.Choice{{Data: del, Label: "🗑 Delete photo"}},
	})
	if err != nil {
		return fmt.Errorf("failed to request description: %w", err)
	}

	dialog := &domain.AwaitingDescription{BatchID: batchID, EvidenceID: evidenceID, Index: index}
	if err := s.machine.SetDialog(dialog); err != nil {
		logging.Logger.Error("Failed to persist description dialog", "error", err)
	}
	return nil
}

// SubmitDescription saves the answer for the photo currently awaiting a
// description and moves the dialog to the next photo.
func (s *Stepper) SubmitDescription(ctx context.Context, userID int64, caseID, text string) error {
	dialog := s.machine.Snapshot().Dialog
	if dialog == nil {
		return fmt.Errorf("no photo is awaiting a description")
	}

	update := domain.EvidenceUpdate{Description: &text}
	if err := s.cases.UpdateEvidence(ctx, caseID, dialog.EvidenceID, update); err != nil {
		return fmt.Errorf("failed to save description: %w", err)
	}
	if _, err := s.transport.SendMessage(ctx, userID, msgDescriptionSaved, ports.SendOptions{}); err != nil {
		logging.Logger.Error("Failed to confirm description", "error", err)
	}

	if err := s.machine.SetDialog(nil); err != nil {
		logging.Logger.Error("Failed to clear description dialog", "error", err)
	}
	return s.Request(ctx, userID, dialog.BatchID, dialog.Index+1)
}

// Delete removes a photo from both the batch and the case store in response
// to its delete button. The dialog continues at the same index, which now
// holds the next photo; deleting the last photo ends the batch.
func (s *Stepper) Delete(ctx context.Context, userID int64, caseID, batchID, evidenceID string, index int) error {
	b, ok := s.tracker.Get(batchID)
	if !ok {
		logging.Logger.Warn("Delete for unknown batch, ignoring", "batch_id", batchID)
		return nil
	}

	if !b.RemoveEvidence(evidenceID) {
		logging.Logger.Warn("Delete for evidence not in batch, ignoring",
			"batch_id", batchID, "evidence_id", evidenceID)
		return nil
	}
	if err := s.cases.RemoveEvidence(ctx, caseID, evidenceID); err != nil {
		return fmt.Errorf("failed to remove evidence %s: %w", evidenceID, err)
	}
	if _, err := s.transport.SendMessage(ctx, userID, msgPhotoDeleted, ports.SendOptions{}); err != nil {
		logging.Logger.Error("Failed to confirm photo deletion", "error", err)
	}

	if err := s.machine.SetDialog(nil); err != nil {
		logging.Logger.Error("Failed to clear description dialog", "error", err)
	}

	if b.Empty() {
		b.Status = domain.BatchDone
		s.tracker.Remove(batchID)
		if _, err := s.transport.SendMessage(ctx, userID, msgBatchEmptied, ports.SendOptions{}); err != nil {
			logging.Logger.Error("Failed to send empty-batch message", "error", err)
		}
		s.serializer.Complete(ctx, batchID)
		return nil
	}
	return s.Request(ctx, userID, batchID, index)
}

// Commit promotes the batch's photos to permanent storage and releases the
// single-flight slot. Calling it twice for the same batch is a no-op, so a
// replayed fingerprint answer cannot promote twice.
func (s *Stepper) Commit(ctx context.Context, userID int64, batchID string) error {
	if s.tracker.Committed(batchID) {
		logging.Logger.Warn("Batch already committed, ignoring", "batch_id", batchID)
		return nil
	}
	b, ok := s.tracker.Get(batchID)
	if !ok {
		return fmt.Errorf("commit batch %s: %w", batchID, domain.ErrBatchNotFound)
	}

	if err := s.cases.PromoteTempEvidence(ctx, b.CaseID, b.EvidenceIDs); err != nil {
		// Release the slot anyway; the photos stay as temporaries and the
		// session keeps working.
		s.serializer.Complete(ctx, batchID)
		return fmt.Errorf("failed to commit batch %s: %w", batchID, err)
	}

	b.Status = domain.BatchDone
	s.tracker.MarkCommitted(batchID)
	s.tracker.Remove(batchID)

	text := fmt.Sprintf("✅ %d photo(s) saved to the case.", len(b.EvidenceIDs))
	if _, err := s.transport.SendMessage(ctx, userID, text, ports.SendOptions{}); err != nil {
		logging.Logger.Error("Failed to send commit confirmation", "error", err)
	}

	logging.Logger.Info("Batch committed", "batch_id", batchID, "case_id", b.CaseID, "photos", len(b.EvidenceIDs))
	s.serializer.Complete(ctx, batchID)
	return nil
}
