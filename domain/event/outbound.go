package event

import "presence-hub/domain"

type IncomingCallPayload struct {
	CallID       string          `json:"callId"`
	UserID       string          `json:"userId"`
	CallerName   string          `json:"callerName,omitempty"`
	CallerAvatar string          `json:"callerAvatar,omitempty"`
	CallType     domain.CallType `json:"callType"`
}

type CallAnsweredPayload struct {
	CallID string `json:"callId"`
}

type CallEndedPayload struct {
	CallID string `json:"callId"`
}

// TypingPayload carries the user currently typing in a conversation.
type TypingPayload struct {
	ChatID string `json:"chatId"`
	UserID string `json:"userId"`
}

type MarkedMessagesPayload struct {
	ChatID     string   `json:"chatId"`
	MessageIDs []string `json:"messageIds"`
}

// MessageNotificationPayload is the lightweight wrapper pushed on the
// notifications channel when a chat message arrives for a user who is not
// subscribed to the conversation.
type MessageNotificationPayload struct {
	Type     string         `json:"type"`
	Metadata domain.Message `json:"metadata"`
}
