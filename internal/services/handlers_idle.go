package services

import (
	"context"
	"strings"

	"patri/internal/domain"
	"patri/internal/ports"
)

// HandleIdle answers events while no case is in progress: the start button
// and the /start command move to waiting for the occurrence report,
// everything else just re-offers the menu.
func (h *Handlers) HandleIdle(ctx context.Context, ev domain.Event) error {
	switch {
	case ev.Kind == domain.EventCallback && ev.Callback == cbStartCase:
		return h.startNewCase(ctx, ev.UserID)
	case ev.Kind == domain.EventText && strings.TrimSpace(ev.Text) == "/start":
		return h.startNewCase(ctx, ev.UserID)
	default:
		return h.sendMenu(ctx, ev.UserID, msgWelcome)
	}
}

func (h *Handlers) startNewCase(ctx context.Context, userID int64) error {
	if err := h.machine.Transition(domain.StateWaitingForCase, ""); err != nil {
		return err
	}
	_, err := h.transport.SendMessage(ctx, userID, msgSendReport, ports.SendOptions{})
	return err
}

func (h *Handlers) sendMenu(ctx context.Context, userID int64, text string) error {
	_, err := h.transport.SendMessage(ctx, userID, text, ports.SendOptions{
		Choices: []ports.Choice{{Data: cbStartCase, Label: "📄 Start new case"}},
	})
	return err
}
