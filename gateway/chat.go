package gateway

import (
	"net/http"

	"github.com/google/uuid"

	"presence-hub/auth"
	"presence-hub/domain"
	"presence-hub/domain/event"
)

// handleChat runs the chat namespace. The handshake must name a conversation
// to subscribe to; without one the socket is refused before any state is
// written.
func (g *Gateway) handleChat(w http.ResponseWriter, r *http.Request) {
	conversationID := auth.ConversationFromRequest(r)
	if conversationID == "" {
		http.Error(w, "conversation id is required", http.StatusBadRequest)
		return
	}

	sess, client, err := g.upgrade(w, r, domain.ChannelChat)
	if err != nil {
		g.log.Debug("Chat handshake refused", "err", err)
		return
	}

	if err := g.channels.BindChat(sess.UserID, conversationID, sess.SessionID); err != nil {
		g.log.Error("Could not bind chat session", "user", sess.UserID, "err", err)
		client.close()
		return
	}

	g.hub.Attach(sess, client)
	g.log.Info("Chat session opened",
		"user", sess.UserID, "session", sess.SessionID, "conversation", conversationID)
	go client.writePump()

	g.readLoop(sess, client, g.dispatchChat)

	g.hub.Detach(sess.SessionID)
	client.close()
	if err := g.channels.UnbindChatSession(sess.UserID, sess.SessionID); err != nil {
		g.log.Warn("Could not unbind chat subscriptions", "user", sess.UserID, "err", err)
	}
	if err := g.presence.MarkOfflineIfNoSessions(sess.UserID); err != nil {
		g.log.Warn("Could not settle presence on disconnect", "user", sess.UserID, "err", err)
	}
	g.log.Info("Chat session closed", "user", sess.UserID, "session", sess.SessionID)
}

func (g *Gateway) dispatchChat(sess domain.Session, client *Client, frame inboundFrame) {
	var err error
	switch frame.Event {
	case event.SubscribeChat:
		err = g.onSubscribeChat(sess, frame)
	case event.UnsubscribeChat:
		err = g.onUnsubscribeChat(sess, frame)
	case event.SendMessage:
		err = g.onSendMessage(sess, frame)
	case event.SendReaction:
		err = g.onSendReaction(sess, frame)
	case event.SendTyping:
		err = g.onSendTyping(sess, frame)
	case event.MarkAsRead:
		err = g.onMarkAsRead(sess, frame)
	case event.EditMessage:
		err = g.onEditMessage(sess, frame)
	case event.DeleteMessage:
		err = g.onDeleteMessage(sess, frame)
	default:
		g.log.Debug("Unknown chat event", "event", frame.Event, "session", sess.SessionID)
		return
	}
	if err != nil {
		g.exception(client, frame.Event, err)
	}
}

func (g *Gateway) onSubscribeChat(sess domain.Session, frame inboundFrame) error {
	var payload event.SubscribeChatPayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}
	return g.channels.BindChat(sess.UserID, payload.ConversationID, sess.SessionID)
}

func (g *Gateway) onUnsubscribeChat(sess domain.Session, frame inboundFrame) error {
	var payload event.SubscribeChatPayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}
	return g.channels.UnbindChat(sess.UserID, payload.ConversationID, sess.SessionID)
}

func (g *Gateway) onSendMessage(sess domain.Session, frame inboundFrame) error {
	var payload event.SendMessagePayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}

	message, err := g.messages.CreateMessage(sess.UserID, payload)
	if err != nil {
		return err
	}

	g.router.Broadcast(message.ConversationID, event.Envelope{Event: event.NewMessage, Data: message})
	g.notifications.SendMessageNotification(message.RecipientID, message)
	return nil
}

func (g *Gateway) onSendReaction(sess domain.Session, frame inboundFrame) error {
	var payload event.SendReactionPayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}

	message, err := g.messages.CreateReactions(uuid.MustParse(payload.MessageID), sess.UserID, payload.Reactions)
	if err != nil {
		return err
	}

	g.router.Broadcast(message.ConversationID, event.Envelope{Event: event.NewReaction, Data: message})
	return nil
}

func (g *Gateway) onSendTyping(sess domain.Session, frame inboundFrame) error {
	var payload event.SendTypingPayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}

	g.router.Broadcast(payload.ChatID, event.Envelope{
		Event: event.Typing,
		Data:  event.TypingPayload{ChatID: payload.ChatID, UserID: sess.UserID},
	})
	return nil
}

func (g *Gateway) onMarkAsRead(sess domain.Session, frame inboundFrame) error {
	var payload event.MarkAsReadPayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}

	if err := g.messages.MarkAsRead(payload.ChatID, sess.UserID, payload.MessageIDs); err != nil {
		return err
	}

	g.router.Broadcast(payload.ChatID, event.Envelope{
		Event: event.MarkedMessages,
		Data:  event.MarkedMessagesPayload{ChatID: payload.ChatID, MessageIDs: payload.MessageIDs},
	})
	return nil
}

func (g *Gateway) onEditMessage(sess domain.Session, frame inboundFrame) error {
	var payload event.EditMessagePayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}

	message, err := g.messages.UpdateMessage(uuid.MustParse(payload.MessageID), sess.UserID, payload.Content)
	if err != nil {
		return err
	}

	g.router.Broadcast(message.ConversationID, event.Envelope{Event: event.MessageEdited, Data: message})
	return nil
}

func (g *Gateway) onDeleteMessage(sess domain.Session, frame inboundFrame) error {
	var payload event.DeleteMessagePayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}

	message, err := g.messages.DeleteMessage(uuid.MustParse(payload.MessageID), sess.UserID)
	if err != nil {
		return err
	}

	g.router.Broadcast(message.ConversationID, event.Envelope{Event: event.MessageDeleted, Data: message})
	return nil
}
