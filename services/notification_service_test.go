package services

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"presence-hub/domain"
	"presence-hub/errors"
	"presence-hub/mocks"
	"presence-hub/repositories"
)

func newNotificationFixture(t *testing.T) (*NotificationService, *mocks.MockRouter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := repositories.NewUserRepository(db)
	require.NoError(t, users.Put(domain.User{ID: "bob", FirstName: "Bob"}))

	router := mocks.NewMockRouter(ctrl)
	svc := NewNotificationService(repositories.NewNotificationRepository(db), users, router, testLogger())
	return svc, router
}

func TestNotificationService_Create(t *testing.T) {
	t.Run("should reject an unknown recipient", func(t *testing.T) {
		svc, _ := newNotificationFixture(t)

		_, err := svc.Create("nobody", "alice", domain.NotificationNewFollower, "")
		require.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("should persist and list newest first", func(t *testing.T) {
		req := require.New(t)
		svc, _ := newNotificationFixture(t)

		_, err := svc.Create("bob", "alice", domain.NotificationPostLike, "post-1")
		req.NoError(err)
		_, err = svc.Create("bob", "carol", domain.NotificationNewComment, "post-1")
		req.NoError(err)

		page, err := svc.List("bob", 10, 0)
		req.NoError(err)
		req.Equal(2, page.Total)
		req.False(page.HasMore)
		req.Equal(domain.NotificationNewComment, page.Data[0].Type)
	})
}

func TestNotificationService_Send(t *testing.T) {
	req := require.New(t)
	svc, router := newNotificationFixture(t)

	// persisted first, then pushed to the live notification session
	router.EXPECT().
		Deliver(domain.ChannelNotifications, "bob", gomock.Any()).
		Return(true).
		Times(1)

	svc.Send("bob", "alice", domain.NotificationNewFollower, "")

	unread, err := svc.UnreadCount("bob")
	req.NoError(err)
	req.Equal(1, unread)

	t.Run("should mark as viewed", func(t *testing.T) {
		req := require.New(t)

		page, err := svc.List("bob", 10, 0)
		req.NoError(err)
		req.Len(page.Data, 1)

		req.NoError(svc.MarkAsViewed([]string{page.Data[0].ID.String()}))

		unread, err := svc.UnreadCount("bob")
		req.NoError(err)
		req.Equal(0, unread)
	})
}

func TestNotificationService_SendMessageNotification(t *testing.T) {
	req := require.New(t)
	svc, router := newNotificationFixture(t)

	router.EXPECT().
		Deliver(domain.ChannelNotifications, "bob", gomock.Any()).
		Return(false).
		Times(1)

	svc.SendMessageNotification("bob", domain.Message{Content: "ping"})

	// the wrapper is push-only, nothing lands in the durable feed
	page, err := svc.List("bob", 10, 0)
	req.NoError(err)
	req.Zero(page.Total)
}
