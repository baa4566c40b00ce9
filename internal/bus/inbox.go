// Package bus carries inbound events from the transport goroutines to the
// session loop.
package bus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"patri/internal/domain"
	"patri/logging"
)

const inboundTopic = "events.inbound"

// Inbox is the in-process pub/sub channel between the transport reader and
// the dispatcher. It decouples input arrival from event handling, so a slow
// handler never blocks the reader.
type Inbox struct {
	pubsub *gochannel.GoChannel
}

// NewInbox creates the inbound event bus
func NewInbox() *Inbox {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewSlogLogger(logging.Logger),
	)
	return &Inbox{pubsub: pubsub}
}

// Publish enqueues one inbound event
func (i *Inbox) Publish(ev domain.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return i.pubsub.Publish(inboundTopic, msg)
}

// Events subscribes to the inbound stream. The returned channel closes when
// the context is cancelled or the inbox closes. Undecodable messages are
// acked and dropped with a log line.
func (i *Inbox) Events(ctx context.Context) (<-chan domain.Event, error) {
	msgs, err := i.pubsub.Subscribe(ctx, inboundTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to inbound events: %w", err)
	}

	out := make(chan domain.Event)
	go func() {
		defer close(out)
		for msg := range msgs {
			var ev domain.Event
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				logging.Logger.Error("Dropping undecodable event", "message_id", msg.UUID, "error", err)
				msg.Ack()
				continue
			}
			msg.Ack()
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close shuts the bus down and closes all subscriber channels
func (i *Inbox) Close() error {
	return i.pubsub.Close()
}
