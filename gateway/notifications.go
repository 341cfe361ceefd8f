package gateway

import (
	"net/http"

	"presence-hub/domain"
)

// handleNotifications runs the presence-defining namespace: a user is online
// exactly while a session lives here. The channel is push-only; inbound
// frames other than control traffic are ignored.
func (g *Gateway) handleNotifications(w http.ResponseWriter, r *http.Request) {
	sess, client, err := g.upgrade(w, r, domain.ChannelNotifications)
	if err != nil {
		g.log.Debug("Notification handshake refused", "err", err)
		return
	}

	if err := g.channels.BindNotification(sess.UserID, sess.SessionID); err != nil {
		g.log.Error("Could not bind notification session", "user", sess.UserID, "err", err)
		client.close()
		return
	}
	if err := g.presence.MarkOnline(sess.UserID); err != nil {
		g.log.Error("Could not mark user online", "user", sess.UserID, "err", err)
		_ = g.channels.UnbindNotification(sess.UserID, sess.SessionID)
		client.close()
		return
	}

	g.hub.Attach(sess, client)
	g.log.Info("Notification session opened", "user", sess.UserID, "session", sess.SessionID)
	go client.writePump()

	g.readLoop(sess, client, func(domain.Session, *Client, inboundFrame) {
		// push-only channel, nothing to dispatch
	})

	g.hub.Detach(sess.SessionID)
	client.close()
	if err := g.channels.UnbindNotification(sess.UserID, sess.SessionID); err != nil {
		g.log.Warn("Could not unbind notification session", "user", sess.UserID, "err", err)
	}
	if err := g.presence.MarkOfflineIfNoSessions(sess.UserID); err != nil {
		g.log.Warn("Could not settle presence on disconnect", "user", sess.UserID, "err", err)
	}
	g.log.Info("Notification session closed", "user", sess.UserID, "session", sess.SessionID)
}
