package ports

import (
	"context"

	"patri/internal/domain"
)

// Choice is an inline button offered with an outbound message. Data comes
// back verbatim as the Callback field of a callback event.
type Choice struct {
	Data  string
	Label string
}

// SendOptions carries optional presentation for outbound messages
type SendOptions struct {
	Choices []Choice
	Pin     bool
}

// MessageRef identifies a sent message for later edits
type MessageRef struct {
	ID int64
}

// Transport is the chat collaborator the core talks through. Implementations
// may wrap network failures with domain.ErrTransient.
type Transport interface {
	DownloadFile(ctx context.Context, ref domain.FileRef) ([]byte, error)
	EditMessage(ctx context.Context, userID int64, msg MessageRef, text string) error
	PinMessage(ctx context.Context, userID int64, msg MessageRef) error
	SendMessage(ctx context.Context, userID int64, text string, opts SendOptions) (MessageRef, error)
	SendPhoto(ctx context.Context, userID int64, photo domain.FileRef, caption string, opts SendOptions) (MessageRef, error)
}
