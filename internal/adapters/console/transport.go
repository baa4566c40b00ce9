package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"patri/internal/domain"
	"patri/internal/ports"
	"patri/internal/theme"
)

// Transport implements ports.Transport on a terminal: outbound messages are
// printed, inline buttons are rendered as their callback data so the
// operator can "tap" them with the tap command. File refs are opaque strings
// minted by the reader; DownloadFile just hands their bytes back, which the
// dummy collaborators know how to parse.
type Transport struct {
	mu     sync.Mutex
	nextID int64
	out    io.Writer
}

// Verify interface compliance at compile time
var _ ports.Transport = (*Transport)(nil)

// NewTransport creates a console transport writing to out
func NewTransport(out io.Writer) *Transport {
	return &Transport{out: out}
}

// SendMessage implements ports.Transport
func (t *Transport) SendMessage(ctx context.Context, userID int64, text string, opts ports.SendOptions) (ports.MessageRef, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	fmt.Fprintln(t.out, theme.BotStyle.Render("🤖 "+text))
	t.renderChoices(opts.Choices)
	return ports.MessageRef{ID: t.nextID}, nil
}

// SendPhoto implements ports.Transport
func (t *Transport) SendPhoto(ctx context.Context, userID int64, photo domain.FileRef, caption string, opts ports.SendOptions) (ports.MessageRef, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	fmt.Fprintln(t.out, theme.PhotoStyle.Render("🤖 [photo "+string(photo)+"]"))
	if caption != "" {
		fmt.Fprintln(t.out, theme.CaptionStyle.Render("   "+caption))
	}
	t.renderChoices(opts.Choices)
	return ports.MessageRef{ID: t.nextID}, nil
}

// EditMessage implements ports.Transport
func (t *Transport) EditMessage(ctx context.Context, userID int64, msg ports.MessageRef, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out, theme.PinnedStyle.Render(fmt.Sprintf("✏️  (message %d) ", msg.ID))+theme.BotStyle.Render(text))
	return nil
}

// PinMessage implements ports.Transport
func (t *Transport) PinMessage(ctx context.Context, userID int64, msg ports.MessageRef) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out, theme.PinnedStyle.Render(fmt.Sprintf("📌 pinned message %d", msg.ID)))
	return nil
}

// DownloadFile implements ports.Transport. Console file refs carry their own
// payload.
func (t *Transport) DownloadFile(ctx context.Context, ref domain.FileRef) ([]byte, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty file ref: %w", domain.ErrTransient)
	}
	return []byte(ref), nil
}

func (t *Transport) renderChoices(choices []ports.Choice) {
	for _, c := range choices {
		fmt.Fprintln(t.out,
			"   "+theme.ButtonDataStyle.Render("[tap "+c.Data+"]")+
				" "+theme.ButtonLabelStyle.Render(c.Label))
	}
}
