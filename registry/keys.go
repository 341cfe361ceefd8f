package registry

// Key shapes are the registry's only schema. Everything below is namespaced
// per user or per conversation so dispatchers never contend on unrelated keys.

const (
	// OnlineUsersKey is the set of user ids with at least one live
	// notification session.
	OnlineUsersKey = "online_users"
	// ActiveCallsKey is the hash of in-flight CallSessions keyed by call id.
	ActiveCallsKey = "active_peer_calls"
)

// UserConnectionsKey holds the single live notification session of a user.
// Last connect wins: a newer session overwrites the previous one.
func UserConnectionsKey(userID string) string {
	return "user_connections:" + userID
}

// ChatConnectionsKey is the per-user hash {conversationID: sessionID} of live
// chat room subscriptions.
func ChatConnectionsKey(userID string) string {
	return "user_chat_connections:" + userID
}

// CallConnectionsKey holds the single live call-channel session of a user,
// independent from the notification namespace.
func CallConnectionsKey(userID string) string {
	return "active_call_connections:" + userID
}

// ConversationRoomKey is the set of session ids currently subscribed to a
// conversation; the broadcast fan-out target.
func ConversationRoomKey(conversationID string) string {
	return "conversation_" + conversationID
}
