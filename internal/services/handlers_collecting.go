package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"patri/internal/domain"
	"patri/internal/ports"
	"patri/logging"
)

// HandleCollecting answers events while evidence is being collected for an
// active case. Photos go through the debouncer; text and voice double as
// photo descriptions when one is awaited.
func (h *Handlers) HandleCollecting(ctx context.Context, ev domain.Event, caseID string) error {
	switch ev.Kind {
	case domain.EventCallback:
		return h.collectingCallback(ctx, ev, caseID)
	case domain.EventText:
		return h.collectingText(ctx, ev, caseID)
	case domain.EventPhoto:
		return h.collectingPhoto(ctx, ev, caseID)
	case domain.EventVoice:
		return h.collectingVoice(ctx, ev, caseID)
	case domain.EventLocation:
		return h.collectingLocation(ctx, ev, caseID)
	default:
		_, err := h.transport.SendMessage(ctx, ev.UserID, msgUnsupported, ports.SendOptions{})
		return err
	}
}

func (h *Handlers) collectingCallback(ctx context.Context, ev domain.Event, caseID string) error {
	data := ev.Callback
	switch {
	case strings.HasPrefix(data, cbFingerprintYes):
		return h.stepper.HandleFingerprint(ctx, ev.UserID, strings.TrimPrefix(data, cbFingerprintYes), true)
	case strings.HasPrefix(data, cbFingerprintNo):
		return h.stepper.HandleFingerprint(ctx, ev.UserID, strings.TrimPrefix(data, cbFingerprintNo), false)
	case strings.HasPrefix(data, cbDeletePhoto):
		return h.deletePhoto(ctx, ev, caseID, strings.TrimPrefix(data, cbDeletePhoto))
	case data == cbFinish:
		return h.askConfirm(ctx, ev.UserID, msgConfirmFinishAsk, cbConfirmFinish, cbAbortFinish)
	case data == cbConfirmFinish:
		return h.finishCollection(ctx, ev.UserID, caseID)
	case data == cbAbortFinish:
		_, err := h.transport.SendMessage(ctx, ev.UserID, msgFinishAborted, ports.SendOptions{})
		return err
	case data == cbCancel:
		return h.askConfirm(ctx, ev.UserID, msgConfirmCancelAsk, cbConfirmCancel, cbAbortCancel)
	case data == cbConfirmCancel:
		return h.cancelCollection(ctx, ev.UserID, caseID)
	case data == cbAbortCancel:
		_, err := h.transport.SendMessage(ctx, ev.UserID, msgCancelAborted, ports.SendOptions{})
		return err
	default:
		logging.Logger.Warn("Unknown callback while collecting, ignoring", "data", data)
		return nil
	}
}

func (h *Handlers) collectingText(ctx context.Context, ev domain.Event, caseID string) error {
	text := strings.TrimSpace(ev.Text)
	switch text {
	case "/finish":
		return h.askConfirm(ctx, ev.UserID, msgConfirmFinishAsk, cbConfirmFinish, cbAbortFinish)
	case "/cancel":
		return h.askConfirm(ctx, ev.UserID, msgConfirmCancelAsk, cbConfirmCancel, cbAbortCancel)
	}

	if h.machine.Snapshot().Dialog != nil {
		return h.stepper.SubmitDescription(ctx, ev.UserID, caseID, ev.Text)
	}

	_, err := h.cases.AddEvidence(ctx, caseID, domain.NewEvidence{
		Text: ev.Text,
		Type: domain.EvidenceText,
	})
	if err != nil {
		return fmt.Errorf("failed to save text note: %w", err)
	}
	h.refreshStatus(ctx, ev.UserID, caseID)
	_, err = h.transport.SendMessage(ctx, ev.UserID, msgTextSaved, ports.SendOptions{})
	return err
}

func (h *Handlers) collectingPhoto(ctx context.Context, ev domain.Event, caseID string) error {
	if h.machine.Snapshot().Dialog != nil {
		_, err := h.transport.SendMessage(ctx, ev.UserID, msgDescriptionNotNow, ports.SendOptions{})
		return err
	}

	payload, err := h.transport.DownloadFile(ctx, ev.File)
	if err != nil {
		return fmt.Errorf("failed to download photo: %w", err)
	}

	evidenceID, err := h.cases.AddEvidence(ctx, caseID, domain.NewEvidence{
		Payload:      payload,
		RemoteFileID: string(ev.File),
		Type:         domain.EvidencePhoto,
	})
	if err != nil {
		return fmt.Errorf("failed to save photo: %w", err)
	}

	h.debouncer.Record(ctx, caseID, ev.UserID, ev.GroupID, evidenceID)
	h.refreshStatus(ctx, ev.UserID, caseID)
	return nil
}

func (h *Handlers) collectingVoice(ctx context.Context, ev domain.Event, caseID string) error {
	audio, err := h.transport.DownloadFile(ctx, ev.File)
	if err != nil {
		return fmt.Errorf("failed to download voice note: %w", err)
	}
	transcript, err := h.transcriber.Transcribe(ctx, audio)
	if err != nil {
		return fmt.Errorf("failed to transcribe voice note: %w", err)
	}

	if h.machine.Snapshot().Dialog != nil {
		return h.stepper.SubmitDescription(ctx, ev.UserID, caseID, transcript)
	}

	_, err = h.cases.AddEvidence(ctx, caseID, domain.NewEvidence{
		Payload:      audio,
		RemoteFileID: string(ev.File),
		Text:         transcript,
		Type:         domain.EvidenceAudio,
	})
	if err != nil {
		return fmt.Errorf("failed to save voice note: %w", err)
	}
	h.refreshStatus(ctx, ev.UserID, caseID)
	_, err = h.transport.SendMessage(ctx, ev.UserID, msgVoiceSaved, ports.SendOptions{})
	return err
}

func (h *Handlers) collectingLocation(ctx context.Context, ev domain.Event, caseID string) error {
	_, err := h.cases.AddEvidence(ctx, caseID, domain.NewEvidence{
		Latitude:  ev.Latitude,
		Longitude: ev.Longitude,
		Type:      domain.EvidenceLocation,
	})
	if err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	h.refreshStatus(ctx, ev.UserID, caseID)
	_, err = h.transport.SendMessage(ctx, ev.UserID, msgLocationSaved, ports.SendOptions{})
	return err
}

// deletePhoto parses the delete button payload: <batch>:<evidence>:<index>
func (h *Handlers) deletePhoto(ctx context.Context, ev domain.Event, caseID, payload string) error {
	parts := strings.Split(payload, ":")
	if len(parts) != 3 {
		logging.Logger.Warn("Malformed delete callback, ignoring", "data", payload)
		return nil
	}
	index, err := strconv.Atoi(parts[2])
	if err != nil {
		logging.Logger.Warn("Malformed delete index, ignoring", "data", payload)
		return nil
	}
	if err := h.stepper.Delete(ctx, ev.UserID, caseID, parts[0], parts[1], index); err != nil {
		return err
	}
	h.refreshStatus(ctx, ev.UserID, caseID)
	return nil
}

func (h *Handlers) askConfirm(ctx context.Context, userID int64, question, yesData, noData string) error {
	_, err := h.transport.SendMessage(ctx, userID, question, ports.SendOptions{
		Choices: []ports.Choice{
			{Data: yesData, Label: "Yes"},
			{Data: noData, Label: "No"},
		},
	})
	return err
}

// finishCollection closes the case and returns to idle. Pending debounce
// timers are stopped first so no batch fires mid-teardown; the summary is
// best effort and never blocks closing.
func (h *Handlers) finishCollection(ctx context.Context, userID int64, caseID string) error {
	h.debouncer.StopAll()

	if info, err := h.cases.LoadCase(ctx, caseID); err == nil {
		if summary, serr := h.summarizer.Summarize(ctx, info); serr == nil && summary != "" {
			if _, merr := h.transport.SendMessage(ctx, userID, summary, ports.SendOptions{}); merr != nil {
				logging.Logger.Error("Failed to send case summary", "error", merr)
			}
		} else if serr != nil {
			logging.Logger.Warn("Case summary unavailable", "case_id", caseID, "error", serr)
		}
	} else {
		logging.Logger.Warn("Failed to load case for summary", "case_id", caseID, "error", err)
	}

	if err := h.machine.Transition(domain.StateIdle, ""); err != nil {
		return err
	}
	h.tracker.Reset()
	h.status.Forget(caseID)
	logging.Logger.Info("Collection finished", "case_id", caseID)

	if _, err := h.transport.SendMessage(ctx, userID, msgCollectionDone, ports.SendOptions{}); err != nil {
		logging.Logger.Error("Failed to send completion message", "error", err)
	}
	return h.sendMenu(ctx, userID, msgReadyForNext)
}

// cancelCollection discards the case and everything collected for it
func (h *Handlers) cancelCollection(ctx context.Context, userID int64, caseID string) error {
	h.debouncer.StopAll()

	if err := h.cases.DeleteCase(ctx, caseID); err != nil {
		logging.Logger.Error("Failed to delete canceled case", "case_id", caseID, "error", err)
	}

	if err := h.machine.Transition(domain.StateIdle, ""); err != nil {
		return err
	}
	h.tracker.Reset()
	h.status.Forget(caseID)
	logging.Logger.Info("Collection canceled", "case_id", caseID)

	if _, err := h.transport.SendMessage(ctx, userID, msgCollectionCanceled, ports.SendOptions{}); err != nil {
		logging.Logger.Error("Failed to send cancellation message", "error", err)
	}
	return h.sendMenu(ctx, userID, msgReadyForNext)
}

func (h *Handlers) refreshStatus(ctx context.Context, userID int64, caseID string) {
	info, err := h.cases.LoadCase(ctx, caseID)
	if err != nil {
		logging.Logger.Warn("Failed to load case for status update", "case_id", caseID, "error", err)
		return
	}
	if err := h.status.Publish(ctx, userID, info); err != nil {
		logging.Logger.Warn("Failed to update case status", "case_id", caseID, "error", err)
	}
}
