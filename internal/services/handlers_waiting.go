package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"patri/internal/domain"
	"patri/internal/ports"
	"patri/logging"
)

// HandleWaiting answers events while the session waits for the occurrence
// report PDF. A valid document opens the case and moves to evidence
// collection; /cancel abandons the attempt; anything else re-prompts.
func (h *Handlers) HandleWaiting(ctx context.Context, ev domain.Event) error {
	switch {
	case ev.Kind == domain.EventDocument:
		return h.openCase(ctx, ev)
	case ev.Kind == domain.EventText && strings.TrimSpace(ev.Text) == "/cancel":
		if err := h.machine.Transition(domain.StateIdle, ""); err != nil {
			return err
		}
		return h.sendMenu(ctx, ev.UserID, msgReadyForNext)
	default:
		_, err := h.transport.SendMessage(ctx, ev.UserID, msgSendReport, ports.SendOptions{})
		return err
	}
}

func (h *Handlers) openCase(ctx context.Context, ev domain.Event) error {
	pdf, err := h.transport.DownloadFile(ctx, ev.File)
	if err != nil {
		return fmt.Errorf("failed to download report: %w", err)
	}

	extract, err := h.analyzer.ExtractCase(ctx, pdf)
	if err != nil {
		logging.Logger.Warn("Report rejected", "error", err)
		_, serr := h.transport.SendMessage(ctx, ev.UserID, msgInvalidReport, ports.SendOptions{})
		return serr
	}

	now := time.Now().UTC()
	info := domain.CaseInfo{
		CreatedAt: now,
		ID:        extract.CaseID,
		Summary:   extract.Summary,
		UpdatedAt: now,
	}
	if err := h.cases.CreateCase(ctx, info); err != nil {
		return fmt.Errorf("failed to create case %s: %w", extract.CaseID, err)
	}

	if err := h.machine.Transition(domain.StateCollecting, extract.CaseID); err != nil {
		return err
	}
	logging.Logger.Info("Case opened", "case_id", extract.CaseID)

	if len(extract.Checklist) > 0 {
		text := "📋 Evidence checklist:\n- " + strings.Join(extract.Checklist, "\n- ")
		if _, err := h.transport.SendMessage(ctx, ev.UserID, text, ports.SendOptions{}); err != nil {
			logging.Logger.Error("Failed to send checklist", "error", err)
		}
	}
	if err := h.status.Publish(ctx, ev.UserID, &info); err != nil {
		logging.Logger.Error("Failed to publish case status", "error", err)
	}

	_, err = h.transport.SendMessage(ctx, ev.UserID, msgCaseStarted, ports.SendOptions{})
	return err
}
