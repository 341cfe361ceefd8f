package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"presence-hub/mocks"
	"presence-hub/registry"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPresenceService_MarkOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg := registry.NewMemoryRegistry()
	users := mocks.NewMockIUserRepository(ctrl)
	svc := NewPresenceService(reg, users, testLogger())

	t.Run("should report a user online after markOnline", func(t *testing.T) {
		req := require.New(t)

		req.NoError(svc.MarkOnline("alice"))

		online, err := svc.IsOnline("alice")
		req.NoError(err)
		req.True(online)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		req := require.New(t)

		req.NoError(svc.MarkOnline("alice"))
		req.NoError(svc.MarkOnline("alice"))

		users, err := svc.OnlineUsers()
		req.NoError(err)
		req.Equal([]string{"alice"}, users)
	})
}

func TestPresenceService_MarkOfflineIfNoSessions(t *testing.T) {
	t.Run("should stay online while a chat subscription remains", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		req := require.New(t)

		reg := registry.NewMemoryRegistry()
		users := mocks.NewMockIUserRepository(ctrl)
		svc := NewPresenceService(reg, users, testLogger())

		req.NoError(svc.MarkOnline("bob"))
		req.NoError(reg.HSet(registry.ChatConnectionsKey("bob"), "conv-1", []byte("session-1"), registry.ChatSubscriptionTTL))

		// lastSeenAt must not move while the user is still around
		users.EXPECT().SetLastSeen(gomock.Any(), gomock.Any()).Times(0)

		req.NoError(svc.MarkOfflineIfNoSessions("bob"))

		online, err := svc.IsOnline("bob")
		req.NoError(err)
		req.True(online)
	})

	t.Run("should stay online while the notification session is live", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		req := require.New(t)

		reg := registry.NewMemoryRegistry()
		users := mocks.NewMockIUserRepository(ctrl)
		svc := NewPresenceService(reg, users, testLogger())

		// a chat disconnect settles presence while the notification
		// connection key is still bound
		req.NoError(svc.MarkOnline("bob"))
		req.NoError(reg.Put(registry.UserConnectionsKey("bob"), []byte("session-1"), registry.ConnectionTTL))

		users.EXPECT().SetLastSeen(gomock.Any(), gomock.Any()).Times(0)

		req.NoError(svc.MarkOfflineIfNoSessions("bob"))

		online, err := svc.IsOnline("bob")
		req.NoError(err)
		req.True(online)

		sessionID, err := reg.Get(registry.UserConnectionsKey("bob"))
		req.NoError(err)
		req.Equal([]byte("session-1"), sessionID)
	})

	t.Run("should go offline and record last seen when no session remains", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		req := require.New(t)

		reg := registry.NewMemoryRegistry()
		users := mocks.NewMockIUserRepository(ctrl)
		svc := NewPresenceService(reg, users, testLogger())

		req.NoError(svc.MarkOnline("bob"))

		users.EXPECT().SetLastSeen("bob", gomock.Any()).Return(nil).Times(1)

		req.NoError(svc.MarkOfflineIfNoSessions("bob"))

		online, err := svc.IsOnline("bob")
		req.NoError(err)
		req.False(online)
	})

	t.Run("should not fail when the last seen write fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		req := require.New(t)

		reg := registry.NewMemoryRegistry()
		users := mocks.NewMockIUserRepository(ctrl)
		svc := NewPresenceService(reg, users, testLogger())
		svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

		req.NoError(svc.MarkOnline("carol"))
		users.EXPECT().SetLastSeen("carol", gomock.Any()).Return(io.ErrClosedPipe).Times(1)

		req.NoError(svc.MarkOfflineIfNoSessions("carol"))
	})
}
