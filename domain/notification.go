package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationNewMessage   NotificationType = "NEW_MESSAGE"
	NotificationPostLike     NotificationType = "POST_LIKE"
	NotificationNewComment   NotificationType = "NEW_COMMENT"
	NotificationCommentReply NotificationType = "COMMENT_REPLY"
	NotificationNewFollower  NotificationType = "NEW_FOLLOWER"
)

// NotificationEvent is persisted durably, then delivered best-effort to the
// recipient's live notification session. Offline recipients read it later
// through the pull endpoints.
type NotificationEvent struct {
	ID          uuid.UUID        `json:"id"`
	RecipientID string           `json:"recipientId"`
	SenderID    string           `json:"senderId"`
	Type        NotificationType `json:"type"`
	Metadata    string           `json:"metadata"`
	Read        bool             `json:"read"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// NotificationPage is one newest-first slice of a user's notifications.
type NotificationPage struct {
	Data    []NotificationEvent `json:"data"`
	Total   int                 `json:"total"`
	HasMore bool                `json:"hasMore"`
}
