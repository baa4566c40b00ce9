package services

import (
	"context"
	"fmt"
	"strings"

	"patri/internal/domain"
	"patri/internal/ports"
	"patri/logging"
)

// StatusMessenger maintains the pinned case status message: one message per
// case, sent and pinned when the case opens and edited in place as evidence
// arrives. Refs are in-memory only; after a restart the next update sends a
// fresh message instead of editing a stale one.
type StatusMessenger struct {
	refs      map[string]ports.MessageRef
	transport ports.Transport
}

// NewStatusMessenger creates the status messenger
func NewStatusMessenger(transport ports.Transport) *StatusMessenger {
	return &StatusMessenger{
		refs:      make(map[string]ports.MessageRef),
		transport: transport,
	}
}

// Publish sends or updates the pinned status message for a case
func (sm *StatusMessenger) Publish(ctx context.Context, userID int64, info *domain.CaseInfo) error {
	text := statusText(info)

	if ref, ok := sm.refs[info.ID]; ok {
		if err := sm.transport.EditMessage(ctx, userID, ref, text); err == nil {
			return nil
		} else {
			// The message may have been deleted; fall through and resend
			logging.Logger.Warn("Failed to edit status message, resending", "case_id", info.ID, "error", err)
		}
	}

	ref, err := sm.transport.SendMessage(ctx, userID, text, ports.SendOptions{Pin: true})
	if err != nil {
		return fmt.Errorf("failed to send status message: %w", err)
	}
	if err := sm.transport.PinMessage(ctx, userID, ref); err != nil {
		logging.Logger.Warn("Failed to pin status message", "case_id", info.ID, "error", err)
	}
	sm.refs[info.ID] = ref
	return nil
}

// Forget drops the tracked message ref for a closed case
func (sm *StatusMessenger) Forget(caseID string) {
	delete(sm.refs, caseID)
}

func statusText(info *domain.CaseInfo) string {
	counts := map[domain.EvidenceType]int{}
	for _, item := range info.Evidence {
		counts[item.Type]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Case %s\n", info.ID)
	fmt.Fprintf(&b, "📷 Photos: %d\n", counts[domain.EvidencePhoto])
	fmt.Fprintf(&b, "📝 Notes: %d\n", counts[domain.EvidenceText])
	fmt.Fprintf(&b, "🎤 Voice: %d\n", counts[domain.EvidenceAudio])
	fmt.Fprintf(&b, "📍 Locations: %d\n", counts[domain.EvidenceLocation])
	b.WriteString("Use /finish when done, /cancel to discard.")
	return b.String()
}
