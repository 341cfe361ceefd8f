package runtime

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"presence-hub/domain"
	"presence-hub/domain/event"
	"presence-hub/mocks"
	"presence-hub/registry"
)

func testSession(userID string, channel domain.Channel, sessionID string) domain.Session {
	return domain.Session{
		UserID:      userID,
		Channel:     channel,
		SessionID:   sessionID,
		ConnectedAt: time.Now(),
	}
}

func TestEventRouter_Deliver(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("should deliver to the recipient's live session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		req := require.New(t)

		reg := registry.NewMemoryRegistry()
		hub := NewHub()
		sink := mocks.NewMockEventSink(ctrl)

		req.NoError(reg.Put(registry.UserConnectionsKey("bob"), []byte("session-1"), registry.ConnectionTTL))
		hub.Attach(testSession("bob", domain.ChannelNotifications, "session-1"), sink)

		evt := event.Envelope{Event: event.Notification, Data: "ping"}
		sink.EXPECT().Consume(evt).Return(nil).Times(1)

		router := NewEventRouter(reg, hub, log)
		req.True(router.Deliver(domain.ChannelNotifications, "bob", evt))
	})

	t.Run("should return false for an offline recipient without side effects", func(t *testing.T) {
		req := require.New(t)

		router := NewEventRouter(registry.NewMemoryRegistry(), NewHub(), log)
		req.False(router.Deliver(domain.ChannelNotifications, "ghost", event.Envelope{Event: event.Notification}))
	})

	t.Run("should look calls up in their own namespace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		req := require.New(t)

		reg := registry.NewMemoryRegistry()
		hub := NewHub()
		sink := mocks.NewMockEventSink(ctrl)

		// bob has a call session but no notification session
		req.NoError(reg.Put(registry.CallConnectionsKey("bob"), []byte("call-session"), registry.ConnectionTTL))
		hub.Attach(testSession("bob", domain.ChannelCalls, "call-session"), sink)

		evt := event.Envelope{Event: event.IncomingCall}
		sink.EXPECT().Consume(evt).Return(nil).Times(1)

		router := NewEventRouter(reg, hub, log)
		req.True(router.Deliver(domain.ChannelCalls, "bob", evt))
		req.False(router.Deliver(domain.ChannelNotifications, "bob", evt))
	})

	t.Run("should return false when the sink rejects the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		req := require.New(t)

		reg := registry.NewMemoryRegistry()
		hub := NewHub()
		sink := mocks.NewMockEventSink(ctrl)

		req.NoError(reg.Put(registry.UserConnectionsKey("bob"), []byte("session-1"), registry.ConnectionTTL))
		hub.Attach(testSession("bob", domain.ChannelNotifications, "session-1"), sink)

		sink.EXPECT().Consume(gomock.Any()).Return(io.ErrClosedPipe).Times(1)

		router := NewEventRouter(reg, hub, log)
		req.False(router.Deliver(domain.ChannelNotifications, "bob", event.Envelope{Event: event.Notification}))
	})
}

func TestEventRouter_Broadcast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := registry.NewMemoryRegistry()
	hub := NewHub()

	// two subscribed sessions attached here, one stale room entry
	alice := mocks.NewMockEventSink(ctrl)
	bob := mocks.NewMockEventSink(ctrl)
	req.NoError(reg.SetAdd(registry.ConversationRoomKey("conv-1"), "session-alice"))
	req.NoError(reg.SetAdd(registry.ConversationRoomKey("conv-1"), "session-bob"))
	req.NoError(reg.SetAdd(registry.ConversationRoomKey("conv-1"), "session-gone"))
	hub.Attach(testSession("alice", domain.ChannelChat, "session-alice"), alice)
	hub.Attach(testSession("bob", domain.ChannelChat, "session-bob"), bob)

	evt := event.Envelope{Event: event.NewMessage, Data: "hi"}
	alice.EXPECT().Consume(evt).Return(nil).Times(1)
	bob.EXPECT().Consume(evt).Return(nil).Times(1)

	router := NewEventRouter(reg, hub, log)
	req.Equal(2, router.Broadcast("conv-1", evt))

	t.Run("should reach nobody in an empty room", func(t *testing.T) {
		require.Zero(t, router.Broadcast("conv-empty", event.Envelope{Event: event.NewMessage}))
	})
}
