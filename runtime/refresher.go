package runtime

import (
	"context"
	"log/slog"
	"time"

	"presence-hub/domain"
	"presence-hub/registry"
)

// PresenceRefresher periodically re-arms the TTL of every key owned by a
// session attached to this process, so that healthy long-lived connections
// outlive the crash-recovery window. Refreshing is best effort: a store
// hiccup is logged and retried on the next tick, never escalated.
type PresenceRefresher struct {
	reg      registry.Registry
	hub      *Hub
	interval time.Duration
	log      *slog.Logger
}

func NewPresenceRefresher(reg registry.Registry, hub *Hub, interval time.Duration, log *slog.Logger) *PresenceRefresher {
	return &PresenceRefresher{reg: reg, hub: hub, interval: interval, log: log}
}

func (w *PresenceRefresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping presence refresher")
			return nil
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *PresenceRefresher) refresh() {
	sessions := w.hub.Sessions()
	if len(sessions) == 0 {
		return
	}

	failed := 0
	for _, sess := range sessions {
		var err error
		switch sess.Channel {
		case domain.ChannelNotifications:
			err = w.reg.Expire(registry.UserConnectionsKey(sess.UserID), registry.ConnectionTTL)
		case domain.ChannelChat:
			err = w.reg.Expire(registry.ChatConnectionsKey(sess.UserID), registry.ChatSubscriptionTTL)
		case domain.ChannelCalls:
			err = w.reg.Expire(registry.CallConnectionsKey(sess.UserID), registry.ConnectionTTL)
		}
		if err != nil {
			failed++
		}
	}
	if err := w.reg.Expire(registry.OnlineUsersKey, registry.ConnectionTTL); err != nil {
		failed++
	}

	if failed > 0 {
		w.log.Warn("Presence refresh incomplete", "sessions", len(sessions), "failed", failed)
	} else {
		w.log.Debug("Presence refreshed", "sessions", len(sessions))
	}
}
