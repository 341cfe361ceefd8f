package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"presence-hub/domain"
	"presence-hub/registry"
)

func TestChannelService_NotificationBindings(t *testing.T) {
	reg := registry.NewMemoryRegistry()
	svc := NewChannelService(reg, testLogger())

	t.Run("should let the newest session win the binding", func(t *testing.T) {
		req := require.New(t)

		req.NoError(svc.BindNotification("alice", "session-old"))
		req.NoError(svc.BindNotification("alice", "session-new"))

		bound, err := reg.Get(registry.UserConnectionsKey("alice"))
		req.NoError(err)
		req.Equal("session-new", string(bound))
	})

	t.Run("should ignore unbind from a replaced session", func(t *testing.T) {
		req := require.New(t)

		req.NoError(svc.UnbindNotification("alice", "session-old"))

		bound, err := reg.Get(registry.UserConnectionsKey("alice"))
		req.NoError(err)
		req.Equal("session-new", string(bound))
	})

	t.Run("should drop the binding when its owner unbinds", func(t *testing.T) {
		req := require.New(t)

		req.NoError(svc.UnbindNotification("alice", "session-new"))

		_, err := reg.Get(registry.UserConnectionsKey("alice"))
		req.Error(err)
	})

	t.Run("should tolerate unbinding a user who never bound", func(t *testing.T) {
		require.NoError(t, svc.UnbindNotification("ghost", "session-x"))
	})
}

func TestChannelService_ChatBindings(t *testing.T) {
	req := require.New(t)
	reg := registry.NewMemoryRegistry()
	svc := NewChannelService(reg, testLogger())

	req.NoError(svc.BindChat("alice", "conv-1", "session-a"))
	req.NoError(svc.BindChat("alice", "conv-2", "session-a"))
	req.NoError(svc.BindChat("bob", "conv-1", "session-b"))

	t.Run("should subscribe the session to the conversation room", func(t *testing.T) {
		req := require.New(t)

		members, err := reg.SetMembers(registry.ConversationRoomKey("conv-1"))
		req.NoError(err)
		req.ElementsMatch([]string{"session-a", "session-b"}, members)

		subscriptions, err := svc.Subscriptions("alice")
		req.NoError(err)
		req.ElementsMatch([]domain.ChatSubscription{
			{ConversationID: "conv-1", SessionID: "session-a"},
			{ConversationID: "conv-2", SessionID: "session-a"},
		}, subscriptions)
	})

	t.Run("should remove every subscription of a disconnecting session", func(t *testing.T) {
		req := require.New(t)

		req.NoError(svc.UnbindChatSession("alice", "session-a"))

		subscriptions, err := svc.Subscriptions("alice")
		req.NoError(err)
		req.Empty(subscriptions)

		// bob's subscription in the shared room survives
		members, err := reg.SetMembers(registry.ConversationRoomKey("conv-1"))
		req.NoError(err)
		req.Equal([]string{"session-b"}, members)
	})

	t.Run("should unbind a single conversation", func(t *testing.T) {
		req := require.New(t)

		req.NoError(svc.UnbindChat("bob", "conv-1", "session-b"))

		members, err := reg.SetMembers(registry.ConversationRoomKey("conv-1"))
		req.NoError(err)
		req.Empty(members)
	})
}

func TestChannelService_CallBindings(t *testing.T) {
	req := require.New(t)
	reg := registry.NewMemoryRegistry()
	svc := NewChannelService(reg, testLogger())

	req.NoError(svc.BindCall("alice", "call-session-1"))

	bound, err := reg.Get(registry.CallConnectionsKey("alice"))
	req.NoError(err)
	req.Equal("call-session-1", string(bound))

	req.NoError(svc.UnbindCall("alice", "call-session-1"))
	_, err = reg.Get(registry.CallConnectionsKey("alice"))
	req.Error(err)
}
