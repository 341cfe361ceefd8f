package event

import "presence-hub/domain"

// Inbound event names, chat channel.
const (
	SubscribeChat   = "subscribe-chat"
	UnsubscribeChat = "unsubscribe-chat"
	SendMessage     = "send-message"
	SendReaction    = "send-reaction"
	SendTyping      = "send-typing"
	MarkAsRead      = "mark-as-read"
	EditMessage     = "edit-message"
	DeleteMessage   = "delete-message"
)

// Inbound event names, calls channel.
const (
	InitiateCall = "initiateCall"
	AnswerCall   = "answerCall"
	EndCall      = "endCall"
	// CallStatusUpdate (outbound) doubles as the inbound name; the payload
	// below is relayed verbatim to the peer.
)

type SubscribeChatPayload struct {
	ConversationID string `json:"conversationId" validate:"required"`
}

type SendMessagePayload struct {
	ChatID      string              `json:"chatId,omitempty"`
	RecipientID string              `json:"recipientId" validate:"required"`
	Content     string              `json:"content,omitempty"`
	Attachments []domain.Attachment `json:"attachments,omitempty" validate:"dive"`
}

type SendReactionPayload struct {
	MessageID string   `json:"messageId" validate:"required,uuid"`
	Reactions []string `json:"reactions" validate:"required,min=1"`
}

type SendTypingPayload struct {
	ChatID string `json:"chatId" validate:"required"`
}

type MarkAsReadPayload struct {
	ChatID     string   `json:"chatId" validate:"required"`
	MessageIDs []string `json:"messageIds" validate:"required,min=1,dive,uuid"`
}

type EditMessagePayload struct {
	MessageID string `json:"messageId" validate:"required,uuid"`
	Content   string `json:"content" validate:"required"`
}

type DeleteMessagePayload struct {
	MessageID string `json:"messageId" validate:"required,uuid"`
}

type InitiateCallPayload struct {
	CalleeID     string          `json:"calleeId" validate:"required"`
	CallerName   string          `json:"callerName"`
	CallerAvatar string          `json:"callerAvatar"`
	CallType     domain.CallType `json:"callType" validate:"required,oneof=audio video"`
}

type AnswerCallPayload struct {
	CallID string `json:"callId" validate:"required,uuid"`
}

type EndCallPayload struct {
	CallID string `json:"callId" validate:"required,uuid"`
}

type CallStatusPayload struct {
	CallID          string `json:"callId" validate:"required,uuid"`
	IsMuted         bool   `json:"isMuted"`
	IsVideoOn       bool   `json:"isVideoOn"`
	IsScreenSharing bool   `json:"isScreenSharing"`
}
