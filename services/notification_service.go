//go:generate go run go.uber.org/mock/mockgen -source=notification_service.go -destination=../mocks/mock_notification_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"presence-hub/contract"
	"presence-hub/domain"
	"presence-hub/domain/event"
	"presence-hub/errors"
	"presence-hub/repositories"
)

type INotificationService interface {
	Create(recipientID, senderID string, t domain.NotificationType, metadata string) (domain.NotificationEvent, error)
	List(recipientID string, limit, offset int) (domain.NotificationPage, error)
	MarkAsViewed(notificationIDs []string) error
	UnreadCount(recipientID string) (int, error)

	// Send persists the notification, then attempts live delivery to the
	// recipient's notification session. Delivery is best effort; offline
	// recipients catch up through List.
	Send(recipientID, senderID string, t domain.NotificationType, metadata string)
	// SendMessageNotification pushes a lightweight new-message wrapper
	// without persisting anything; the message itself is the durable record.
	SendMessageNotification(recipientID string, message domain.Message)
}

type NotificationService struct {
	notifications repositories.INotificationRepository
	users         repositories.IUserRepository
	router        contract.Router
	log           *slog.Logger
	now           func() time.Time
}

func NewNotificationService(
	notifications repositories.INotificationRepository,
	users repositories.IUserRepository,
	router contract.Router,
	log *slog.Logger,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		router:        router,
		log:           log,
		now:           time.Now,
	}
}

func (s *NotificationService) Create(recipientID, senderID string, t domain.NotificationType, metadata string) (domain.NotificationEvent, error) {
	exists, err := s.users.Exists(recipientID)
	if err != nil {
		return domain.NotificationEvent{}, fmt.Errorf("checking recipient: %w", err)
	}
	if !exists {
		return domain.NotificationEvent{}, fmt.Errorf("recipient %s: %w", recipientID, errors.ErrNotFound)
	}

	notification := domain.NotificationEvent{
		ID:          uuid.New(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        t,
		Metadata:    metadata,
		CreatedAt:   s.now(),
	}
	if err := s.notifications.Store(notification); err != nil {
		return domain.NotificationEvent{}, fmt.Errorf("storing notification: %w", err)
	}
	return notification, nil
}

func (s *NotificationService) List(recipientID string, limit, offset int) (domain.NotificationPage, error) {
	notifications, total, err := s.notifications.List(recipientID, limit, offset)
	if err != nil {
		return domain.NotificationPage{}, err
	}
	return domain.NotificationPage{
		Data:    notifications,
		Total:   total,
		HasMore: offset+len(notifications) < total,
	}, nil
}

func (s *NotificationService) MarkAsViewed(notificationIDs []string) error {
	ids := make([]uuid.UUID, 0, len(notificationIDs))
	for _, raw := range notificationIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.log.Debug("Skipping malformed notification id", "id", raw)
			continue
		}
		ids = append(ids, id)
	}
	return s.notifications.MarkViewed(ids)
}

func (s *NotificationService) UnreadCount(recipientID string) (int, error) {
	return s.notifications.UnreadCount(recipientID)
}

func (s *NotificationService) Send(recipientID, senderID string, t domain.NotificationType, metadata string) {
	notification, err := s.Create(recipientID, senderID, t, metadata)
	if err != nil {
		s.log.Warn("Could not persist notification",
			"recipient", recipientID, "type", t, "err", err)
		return
	}

	delivered := s.router.Deliver(domain.ChannelNotifications, recipientID, event.Envelope{
		Event: event.Notification,
		Data:  notification,
	})
	s.log.Debug("Notification sent", "recipient", recipientID, "type", t, "delivered", delivered)
}

func (s *NotificationService) SendMessageNotification(recipientID string, message domain.Message) {
	s.router.Deliver(domain.ChannelNotifications, recipientID, event.Envelope{
		Event: event.Notification,
		Data: event.MessageNotificationPayload{
			Type:     string(domain.NotificationNewMessage),
			Metadata: message,
		},
	})
}
