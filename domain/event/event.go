// Package event defines the typed payloads exchanged over the realtime
// channels. Each wire event name maps to exactly one variant struct; inbound
// variants carry validation tags checked at the gateway boundary.
package event

// Envelope is the wire frame for every event on every channel.
type Envelope struct {
	Event string `json:"event" validate:"required"`
	Data  any    `json:"data,omitempty"`
}

// Outbound event names, chat channel. All are broadcast to every session
// subscribed to the target conversation.
const (
	NewMessage     = "new-message"
	NewReaction    = "new-reaction"
	Typing         = "typing"
	MarkedMessages = "marked-messages"
	MessageEdited  = "edit-message"
	MessageDeleted = "delete-message"
)

// Outbound event names, calls channel. All are unicast to the resolved
// peer's call session.
const (
	IncomingCall     = "incomingCall"
	CallAnswered     = "callAnswered"
	CallEnded        = "callEnded"
	CallStatusUpdate = "callStatusUpdate"
)

// Notification is the single outbound event name of the notifications channel.
const Notification = "notification"

// Exception is sent back to the originating client when handling an inbound
// event fails. It is never broadcast.
const Exception = "exception"

type ExceptionPayload struct {
	Message string `json:"message"`
}
