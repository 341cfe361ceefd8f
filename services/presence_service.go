//go:generate go run go.uber.org/mock/mockgen -source=presence_service.go -destination=../mocks/mock_presence_service.go -package=mocks
// Package services holds the domain logic between the gateways and the
// registry/repositories: presence, channel bindings, calls, messages and
// notifications.
package services

import (
	stderrors "errors"
	"log/slog"
	"time"

	"presence-hub/errors"
	"presence-hub/registry"
	"presence-hub/repositories"
)

type IPresenceService interface {
	// MarkOnline flags the user online and re-arms the TTL of the online
	// set. Idempotent; marking an online user online again is a no-op.
	MarkOnline(userID string) error
	// MarkOfflineIfNoSessions drops the user from the online set only when
	// neither a chat subscription nor a notification connection is left,
	// then records lastSeenAt.
	MarkOfflineIfNoSessions(userID string) error
	IsOnline(userID string) (bool, error)
	OnlineUsers() ([]string, error)
}

// PresenceService derives online state exclusively from the notification
// channel. Chat and call sessions never flip the flag on their own.
type PresenceService struct {
	reg   registry.Registry
	users repositories.IUserRepository
	log   *slog.Logger
	now   func() time.Time
}

func NewPresenceService(reg registry.Registry, users repositories.IUserRepository, log *slog.Logger) *PresenceService {
	return &PresenceService{reg: reg, users: users, log: log, now: time.Now}
}

func (s *PresenceService) MarkOnline(userID string) error {
	if err := s.reg.SetAdd(registry.OnlineUsersKey, userID); err != nil {
		return err
	}
	return s.reg.Expire(registry.OnlineUsersKey, registry.ConnectionTTL)
}

func (s *PresenceService) MarkOfflineIfNoSessions(userID string) error {
	conversations, err := s.reg.HKeys(registry.ChatConnectionsKey(userID))
	if err != nil && !stderrors.Is(err, errors.ErrNotFound) {
		return err
	}
	if len(conversations) > 0 {
		s.log.Debug("User keeps chat subscriptions, staying online",
			"user", userID, "subscriptions", len(conversations))
		return nil
	}

	// A live notification connection key also counts as a session. The
	// notification gateway unbinds it before settling presence, so the key
	// only survives here when another channel's disconnect is settling.
	if _, err := s.reg.Get(registry.UserConnectionsKey(userID)); err == nil {
		s.log.Debug("User keeps a notification session, staying online", "user", userID)
		return nil
	} else if !stderrors.Is(err, errors.ErrNotFound) {
		return err
	}

	if err := s.reg.SetRemove(registry.OnlineUsersKey, userID); err != nil {
		return err
	}
	if err := s.reg.Delete(registry.UserConnectionsKey(userID)); err != nil && !stderrors.Is(err, errors.ErrNotFound) {
		return err
	}

	// lastSeenAt is informational; a failed write must not keep the
	// session-teardown path from completing.
	if err := s.users.SetLastSeen(userID, s.now()); err != nil && !stderrors.Is(err, errors.ErrNotFound) {
		s.log.Warn("Could not record last seen time", "user", userID, "err", err)
	}
	return nil
}

func (s *PresenceService) IsOnline(userID string) (bool, error) {
	return s.reg.SetIsMember(registry.OnlineUsersKey, userID)
}

func (s *PresenceService) OnlineUsers() ([]string, error) {
	return s.reg.SetMembers(registry.OnlineUsersKey)
}
