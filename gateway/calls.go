package gateway

import (
	"fmt"
	"net/http"

	"presence-hub/domain"
	"presence-hub/domain/event"
	"presence-hub/errors"
)

// handleCalls runs the call-signaling namespace. It never touches presence:
// a user without a notification session stays offline even mid-call.
func (g *Gateway) handleCalls(w http.ResponseWriter, r *http.Request) {
	sess, client, err := g.upgrade(w, r, domain.ChannelCalls)
	if err != nil {
		g.log.Debug("Call handshake refused", "err", err)
		return
	}

	if err := g.channels.BindCall(sess.UserID, sess.SessionID); err != nil {
		g.log.Error("Could not bind call session", "user", sess.UserID, "err", err)
		client.close()
		return
	}

	g.hub.Attach(sess, client)
	g.log.Info("Call session opened", "user", sess.UserID, "session", sess.SessionID)
	go client.writePump()

	g.readLoop(sess, client, g.dispatchCalls)

	g.hub.Detach(sess.SessionID)
	client.close()
	if err := g.channels.UnbindCall(sess.UserID, sess.SessionID); err != nil {
		g.log.Warn("Could not unbind call session", "user", sess.UserID, "err", err)
	}
	g.log.Info("Call session closed", "user", sess.UserID, "session", sess.SessionID)
}

func (g *Gateway) dispatchCalls(sess domain.Session, client *Client, frame inboundFrame) {
	var err error
	switch frame.Event {
	case event.InitiateCall:
		err = g.onInitiateCall(sess, frame)
	case event.AnswerCall:
		err = g.onAnswerCall(sess, frame)
	case event.EndCall:
		err = g.onEndCall(sess, frame)
	case event.CallStatusUpdate:
		err = g.onCallStatus(sess, frame)
	default:
		g.log.Debug("Unknown call event", "event", frame.Event, "session", sess.SessionID)
		return
	}
	if err != nil {
		g.exception(client, frame.Event, err)
	}
}

func (g *Gateway) onInitiateCall(sess domain.Session, frame inboundFrame) error {
	var payload event.InitiateCallPayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}

	call, err := g.calls.Initiate(sess.UserID, payload.CalleeID, payload.CallType)
	if err != nil {
		return err
	}

	g.router.Deliver(domain.ChannelCalls, call.CalleeID, event.Envelope{
		Event: event.IncomingCall,
		Data: event.IncomingCallPayload{
			CallID:       call.ID,
			UserID:       call.CallerID,
			CallerName:   payload.CallerName,
			CallerAvatar: payload.CallerAvatar,
			CallType:     call.Type,
		},
	})
	return nil
}

func (g *Gateway) onAnswerCall(sess domain.Session, frame inboundFrame) error {
	var payload event.AnswerCallPayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}

	call, err := g.calls.Answer(sess.UserID, payload.CallID)
	if err != nil {
		return err
	}
	peer, _ := call.Peer(sess.UserID)

	g.router.Deliver(domain.ChannelCalls, peer, event.Envelope{
		Event: event.CallAnswered,
		Data:  event.CallAnsweredPayload{CallID: call.ID},
	})
	return nil
}

func (g *Gateway) onEndCall(sess domain.Session, frame inboundFrame) error {
	var payload event.EndCallPayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}

	call, summary, err := g.calls.End(sess.UserID, payload.CallID)
	if err != nil {
		return err
	}
	peer, _ := call.Peer(sess.UserID)

	g.router.Deliver(domain.ChannelCalls, peer, event.Envelope{
		Event: event.CallEnded,
		Data:  event.CallEndedPayload{CallID: call.ID},
	})
	// the summary lands in the chat history of both parties
	g.router.Broadcast(summary.ConversationID, event.Envelope{Event: event.NewMessage, Data: summary})
	return nil
}

// onCallStatus relays mute/video/screen-share flags verbatim to the peer.
func (g *Gateway) onCallStatus(sess domain.Session, frame inboundFrame) error {
	var payload event.CallStatusPayload
	if err := g.decode(frame, &payload); err != nil {
		return err
	}

	call, err := g.calls.Get(payload.CallID)
	if err != nil {
		return err
	}
	peer, ok := call.Peer(sess.UserID)
	if !ok {
		return fmt.Errorf("user %s is not a party of call %s: %w", sess.UserID, call.ID, errors.ErrForbidden)
	}

	g.router.Deliver(domain.ChannelCalls, peer, event.Envelope{
		Event: event.CallStatusUpdate,
		Data:  payload,
	})
	return nil
}
