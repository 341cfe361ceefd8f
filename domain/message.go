// Package domain contains core concepts of the realtime system.
// This file defines Message entities and related rules.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a chat message inside one conversation.
type Message struct {
	ID             uuid.UUID           `json:"id"`
	ConversationID string              `json:"chatId"`
	SenderID       string              `json:"senderId"`
	RecipientID    string              `json:"recipientId"`
	Content        string              `json:"content"`
	Attachments    []string            `json:"attachments,omitempty"`
	Reactions      map[string][]string `json:"reactions,omitempty"` // userID -> emoji list
	Read           bool                `json:"read"`
	System         bool                `json:"system"`
	CreatedAt      time.Time           `json:"createdAt"`
	EditedAt       *time.Time          `json:"editedAt,omitempty"`
}

// Attachment is an inbound file carried inline on a send-message event.
// Data is base64 encoded by the client; the declared Type is advisory and
// re-checked by content sniffing before the file is stored.
type Attachment struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type"`
	Size int64  `json:"size" validate:"gte=0"`
	Data string `json:"data" validate:"required"`
}

// MessagePage is one newest-first slice of a conversation's history.
type MessagePage struct {
	Data    []Message `json:"data"`
	Total   int       `json:"total"`
	HasMore bool      `json:"hasMore"`
}
