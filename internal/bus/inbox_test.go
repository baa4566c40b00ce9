package bus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patri/internal/domain"
)

func TestInbox_PublishDelivers(t *testing.T) {
	inbox := NewInbox()
	defer inbox.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := inbox.Events(ctx)
	require.NoError(t, err)

	want := domain.Event{
		Kind:    domain.EventPhoto,
		File:    "photo:abc",
		GroupID: "g1",
		UserID:  42,
	}
	require.NoError(t, inbox.Publish(want))

	select {
	case got := <-events:
		assert.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestInbox_PreservesOrder(t *testing.T) {
	inbox := NewInbox()
	defer inbox.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := inbox.Events(ctx)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, inbox.Publish(domain.Event{Kind: domain.EventText, UserID: int64(i)}))
	}

	for i := 0; i < 5; i++ {
		select {
		case got := <-events:
			assert.Equal(t, int64(i), got.UserID)
		case <-time.After(time.Second):
			t.Fatal("stream stalled")
		}
	}
}

func TestInbox_CloseEndsStream(t *testing.T) {
	inbox := NewInbox()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := inbox.Events(ctx)
	require.NoError(t, err)

	require.NoError(t, inbox.Close())

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel closes with the inbox")
	case <-time.After(time.Second):
		t.Fatal("channel did not close")
	}
}
