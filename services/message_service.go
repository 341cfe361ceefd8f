//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"presence-hub/domain"
	"presence-hub/domain/event"
	"presence-hub/errors"
	"presence-hub/moderation"
	"presence-hub/repositories"
	"presence-hub/storage"
)

type IMessageService interface {
	// CreateMessage validates the recipient, resolves or creates the pair's
	// conversation, censors the content, stores attachments and persists the
	// message. Creating the conversation fires a first-contact notification.
	CreateMessage(senderID string, payload event.SendMessagePayload) (domain.Message, error)
	// CreateCallSummary appends a synthetic system message to the pair's
	// conversation, creating it when the pair never chatted.
	CreateCallSummary(callerID, calleeID, content string) (domain.Message, error)
	CreateReactions(messageID uuid.UUID, userID string, reactions []string) (domain.Message, error)
	UpdateMessage(messageID uuid.UUID, userID, content string) (domain.Message, error)
	DeleteMessage(messageID uuid.UUID, userID string) (domain.Message, error)
	MarkAsRead(conversationID, userID string, messageIDs []string) error
	GetMessages(conversationID, userID string, limit, offset int) (domain.MessagePage, error)
	UnreadCount(conversationID, userID string) (int, error)
}

type MessageService struct {
	messages      repositories.IMessageRepository
	conversations repositories.IConversationRepository
	users         repositories.IUserRepository
	notifications INotificationService
	attachments   storage.AttachmentStore
	moderator     *moderation.Moderator
	log           *slog.Logger
	now           func() time.Time
}

func NewMessageService(
	messages repositories.IMessageRepository,
	conversations repositories.IConversationRepository,
	users repositories.IUserRepository,
	notifications INotificationService,
	attachments storage.AttachmentStore,
	moderator *moderation.Moderator,
	log *slog.Logger,
) *MessageService {
	return &MessageService{
		messages:      messages,
		conversations: conversations,
		users:         users,
		notifications: notifications,
		attachments:   attachments,
		moderator:     moderator,
		log:           log,
		now:           time.Now,
	}
}

func (s *MessageService) CreateMessage(senderID string, payload event.SendMessagePayload) (domain.Message, error) {
	if payload.Content == "" && len(payload.Attachments) == 0 {
		return domain.Message{}, errors.ErrEmptyMessage
	}

	exists, err := s.users.Exists(payload.RecipientID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("checking recipient: %w", err)
	}
	if !exists {
		return domain.Message{}, fmt.Errorf("recipient %s: %w", payload.RecipientID, errors.ErrNotFound)
	}

	conversation, err := s.resolveConversation(senderID, payload)
	if err != nil {
		return domain.Message{}, err
	}

	message := domain.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       senderID,
		RecipientID:    payload.RecipientID,
		Content:        s.censor(payload.Content),
		CreatedAt:      s.now(),
	}

	if len(payload.Attachments) > 0 {
		paths, err := s.attachments.Save(conversation.ID, payload.Attachments)
		if err != nil {
			return domain.Message{}, fmt.Errorf("storing attachments: %w", err)
		}
		message.Attachments = paths
	}

	if err := s.messages.Store(message); err != nil {
		return domain.Message{}, fmt.Errorf("storing message: %w", err)
	}
	if err := s.conversations.Touch(conversation.ID, message.CreatedAt); err != nil {
		s.log.Warn("Could not touch conversation", "conversation", conversation.ID, "err", err)
	}
	return message, nil
}

// resolveConversation returns the conversation the message belongs to. An
// explicit chat id must exist and include the sender; without one the pair's
// conversation is looked up and created on first contact.
func (s *MessageService) resolveConversation(senderID string, payload event.SendMessagePayload) (domain.Conversation, error) {
	if payload.ChatID != "" {
		conversation, err := s.conversations.Get(payload.ChatID)
		if err != nil {
			return domain.Conversation{}, err
		}
		if !conversation.HasParticipant(senderID) {
			return domain.Conversation{}, errors.ErrForbidden
		}
		return conversation, nil
	}

	conversation, err := s.conversations.FindByParticipants(senderID, payload.RecipientID)
	if err == nil {
		return conversation, nil
	}
	if !stderrors.Is(err, errors.ErrNotFound) {
		return domain.Conversation{}, err
	}

	conversation, err = s.conversations.Create(senderID, payload.RecipientID)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("creating conversation: %w", err)
	}
	s.notifications.Send(payload.RecipientID, senderID, domain.NotificationNewMessage, conversation.ID)
	return conversation, nil
}

func (s *MessageService) censor(content string) string {
	if s.moderator == nil || content == "" {
		return content
	}
	censored, caught := s.moderator.Censor(content)
	if len(caught) > 0 {
		info := whatlanggo.Detect(content)
		s.log.Info("Censored forbidden words",
			"count", len(caught), "language", info.Lang.String())
	}
	return censored
}

func (s *MessageService) CreateCallSummary(callerID, calleeID, content string) (domain.Message, error) {
	conversation, err := s.conversations.FindByParticipants(callerID, calleeID)
	if stderrors.Is(err, errors.ErrNotFound) {
		conversation, err = s.conversations.Create(callerID, calleeID)
	}
	if err != nil {
		return domain.Message{}, err
	}

	message := domain.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       callerID,
		RecipientID:    calleeID,
		Content:        content,
		System:         true,
		CreatedAt:      s.now(),
	}
	if err := s.messages.Store(message); err != nil {
		return domain.Message{}, fmt.Errorf("storing call summary: %w", err)
	}
	if err := s.conversations.Touch(conversation.ID, message.CreatedAt); err != nil {
		s.log.Warn("Could not touch conversation", "conversation", conversation.ID, "err", err)
	}
	return message, nil
}

func (s *MessageService) CreateReactions(messageID uuid.UUID, userID string, reactions []string) (domain.Message, error) {
	message, err := s.messages.Get(messageID)
	if err != nil {
		return domain.Message{}, err
	}
	if message.SenderID != userID && message.RecipientID != userID {
		return domain.Message{}, errors.ErrForbidden
	}

	if message.Reactions == nil {
		message.Reactions = make(map[string][]string)
	}
	if len(reactions) == 0 {
		delete(message.Reactions, userID)
	} else {
		message.Reactions[userID] = reactions
	}
	if err := s.messages.Update(message); err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (s *MessageService) UpdateMessage(messageID uuid.UUID, userID, content string) (domain.Message, error) {
	message, err := s.messages.Get(messageID)
	if err != nil {
		return domain.Message{}, err
	}
	if message.SenderID != userID {
		return domain.Message{}, errors.ErrForbidden
	}

	message.Content = s.censor(content)
	editedAt := s.now()
	message.EditedAt = &editedAt
	if err := s.messages.Update(message); err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (s *MessageService) DeleteMessage(messageID uuid.UUID, userID string) (domain.Message, error) {
	message, err := s.messages.Get(messageID)
	if err != nil {
		return domain.Message{}, err
	}
	if message.SenderID != userID {
		return domain.Message{}, errors.ErrForbidden
	}
	if err := s.messages.Delete(messageID); err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (s *MessageService) MarkAsRead(conversationID, userID string, messageIDs []string) error {
	if _, err := s.requireParticipant(conversationID, userID); err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(messageIDs))
	for _, raw := range messageIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.log.Debug("Skipping malformed message id", "id", raw)
			continue
		}
		ids = append(ids, id)
	}
	return s.messages.MarkRead(ids)
}

func (s *MessageService) GetMessages(conversationID, userID string, limit, offset int) (domain.MessagePage, error) {
	if _, err := s.requireParticipant(conversationID, userID); err != nil {
		return domain.MessagePage{}, err
	}

	messages, total, err := s.messages.List(conversationID, limit, offset)
	if err != nil {
		return domain.MessagePage{}, err
	}
	return domain.MessagePage{
		Data:    messages,
		Total:   total,
		HasMore: offset+len(messages) < total,
	}, nil
}

func (s *MessageService) UnreadCount(conversationID, userID string) (int, error) {
	return s.messages.UnreadCount(conversationID, userID)
}

func (s *MessageService) requireParticipant(conversationID, userID string) (domain.Conversation, error) {
	conversation, err := s.conversations.Get(conversationID)
	if err != nil {
		return domain.Conversation{}, err
	}
	if !conversation.HasParticipant(userID) {
		return domain.Conversation{}, errors.ErrForbidden
	}
	return conversation, nil
}
