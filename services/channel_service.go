//go:generate go run go.uber.org/mock/mockgen -source=channel_service.go -destination=../mocks/mock_channel_service.go -package=mocks
package services

import (
	stderrors "errors"
	"log/slog"

	"presence-hub/domain"
	"presence-hub/errors"
	"presence-hub/registry"
)

type IChannelService interface {
	// BindNotification records the user's single live notification session.
	// Last connect wins: a newer session silently replaces the old binding.
	BindNotification(userID, sessionID string) error
	// UnbindNotification drops the binding only when sessionID still owns
	// it, so a replaced connection disconnecting late cannot evict its
	// successor.
	UnbindNotification(userID, sessionID string) error

	BindCall(userID, sessionID string) error
	UnbindCall(userID, sessionID string) error

	// BindChat subscribes a chat session to a conversation room and re-arms
	// the subscription TTL.
	BindChat(userID, conversationID, sessionID string) error
	UnbindChat(userID, conversationID, sessionID string) error
	// UnbindChatSession removes every subscription owned by the session.
	// Called on disconnect so no orphaned room membership survives.
	UnbindChatSession(userID, sessionID string) error

	// Subscriptions lists the user's live chat subscriptions, one entry per
	// conversation with the session that owns it.
	Subscriptions(userID string) ([]domain.ChatSubscription, error)
}

// ChannelService owns the per-channel registry bindings. It never touches the
// online set; presence stays with PresenceService.
type ChannelService struct {
	reg registry.Registry
	log *slog.Logger
}

func NewChannelService(reg registry.Registry, log *slog.Logger) *ChannelService {
	return &ChannelService{reg: reg, log: log}
}

func (s *ChannelService) BindNotification(userID, sessionID string) error {
	return s.reg.Put(registry.UserConnectionsKey(userID), []byte(sessionID), registry.ConnectionTTL)
}

func (s *ChannelService) UnbindNotification(userID, sessionID string) error {
	return s.unbindOwned(registry.UserConnectionsKey(userID), sessionID)
}

func (s *ChannelService) BindCall(userID, sessionID string) error {
	return s.reg.Put(registry.CallConnectionsKey(userID), []byte(sessionID), registry.ConnectionTTL)
}

func (s *ChannelService) UnbindCall(userID, sessionID string) error {
	return s.unbindOwned(registry.CallConnectionsKey(userID), sessionID)
}

func (s *ChannelService) unbindOwned(key, sessionID string) error {
	current, err := s.reg.Get(key)
	if stderrors.Is(err, errors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if string(current) != sessionID {
		s.log.Debug("Connection key already rebound, leaving it",
			"key", key, "session", sessionID)
		return nil
	}
	return s.reg.Delete(key)
}

func (s *ChannelService) BindChat(userID, conversationID, sessionID string) error {
	chatKey := registry.ChatConnectionsKey(userID)
	if err := s.reg.HSet(chatKey, conversationID, []byte(sessionID), registry.ChatSubscriptionTTL); err != nil {
		return err
	}
	if err := s.reg.Expire(chatKey, registry.ChatSubscriptionTTL); err != nil {
		return err
	}

	roomKey := registry.ConversationRoomKey(conversationID)
	if err := s.reg.SetAdd(roomKey, sessionID); err != nil {
		return err
	}
	return s.reg.Expire(roomKey, registry.ChatSubscriptionTTL)
}

func (s *ChannelService) UnbindChat(userID, conversationID, sessionID string) error {
	if err := s.reg.HDel(registry.ChatConnectionsKey(userID), conversationID); err != nil && !stderrors.Is(err, errors.ErrNotFound) {
		return err
	}
	return s.reg.SetRemove(registry.ConversationRoomKey(conversationID), sessionID)
}

func (s *ChannelService) UnbindChatSession(userID, sessionID string) error {
	subscriptions, err := s.reg.HGetAll(registry.ChatConnectionsKey(userID))
	if err != nil && !stderrors.Is(err, errors.ErrNotFound) {
		return err
	}

	for conversationID, owner := range subscriptions {
		if string(owner) != sessionID {
			continue
		}
		if err := s.UnbindChat(userID, conversationID, sessionID); err != nil {
			return err
		}
	}
	return nil
}

func (s *ChannelService) Subscriptions(userID string) ([]domain.ChatSubscription, error) {
	entries, err := s.reg.HGetAll(registry.ChatConnectionsKey(userID))
	if err != nil {
		return nil, err
	}

	subscriptions := make([]domain.ChatSubscription, 0, len(entries))
	for conversationID, sessionID := range entries {
		subscriptions = append(subscriptions, domain.ChatSubscription{
			ConversationID: conversationID,
			SessionID:      string(sessionID),
		})
	}
	return subscriptions, nil
}
