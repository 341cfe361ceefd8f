package runtime

import (
	"log/slog"

	"presence-hub/domain"
	"presence-hub/domain/event"
	"presence-hub/registry"
)

// EventRouter looks up a recipient's live session in the registry and pushes
// the event through the hub. Delivery is fire-and-forget: a missing session
// is the normal offline case and a registry hiccup during a lookup is logged
// and treated the same way, since nobody retries on false.
type EventRouter struct {
	reg registry.Registry
	hub *Hub
	log *slog.Logger
}

func NewEventRouter(reg registry.Registry, hub *Hub, log *slog.Logger) *EventRouter {
	return &EventRouter{reg: reg, hub: hub, log: log}
}

func connectionKey(channel domain.Channel, recipientID string) string {
	if channel == domain.ChannelCalls {
		return registry.CallConnectionsKey(recipientID)
	}
	return registry.UserConnectionsKey(recipientID)
}

func (r *EventRouter) Deliver(channel domain.Channel, recipientID string, evt event.Envelope) bool {
	sessionID, err := r.reg.Get(connectionKey(channel, recipientID))
	if err != nil {
		// offline recipient or unreachable store: nothing to deliver either way
		r.log.Debug("No live session for delivery",
			"channel", channel, "recipient", recipientID, "event", evt.Event, "reason", err)
		return false
	}

	sink := r.hub.Get(string(sessionID))
	if sink == nil {
		return false
	}
	if err := sink.Consume(evt); err != nil {
		r.log.Warn("Sink rejected event", "session", string(sessionID), "event", evt.Event, "err", err)
		return false
	}
	return true
}

func (r *EventRouter) Broadcast(conversationID string, evt event.Envelope) int {
	sessionIDs, err := r.reg.SetMembers(registry.ConversationRoomKey(conversationID))
	if err != nil {
		r.log.Warn("Room lookup failed, broadcast dropped",
			"conversation", conversationID, "event", evt.Event, "err", err)
		return 0
	}

	delivered := 0
	for _, sessionID := range sessionIDs {
		sink := r.hub.Get(sessionID)
		if sink == nil {
			continue
		}
		if err := sink.Consume(evt); err != nil {
			r.log.Warn("Sink rejected event", "session", sessionID, "event", evt.Event, "err", err)
			continue
		}
		delivered++
	}
	return delivered
}
