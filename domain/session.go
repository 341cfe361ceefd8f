package domain

import "time"

// Channel discriminates the three realtime namespaces a client can attach to.
// Presence is derived from the notifications channel only; chat and calls
// piggyback on it but never define online state themselves.
type Channel string

const (
	ChannelNotifications Channel = "notifications"
	ChannelChat          Channel = "chat"
	ChannelCalls         Channel = "calls"
)

// Session is one live transport connection on one channel. SessionID is the
// opaque id registered in the shared store; routing resolves it back to the
// in-process sink.
type Session struct {
	UserID      string
	Channel     Channel
	SessionID   string
	ConnectedAt time.Time
}

// ChatSubscription binds a chat session to one conversation room.
type ChatSubscription struct {
	ConversationID string
	SessionID      string
}
