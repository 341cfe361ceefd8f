package auth

import (
	"net/http"
	"strings"
)

// TokenFromRequest extracts the credential from an upgrade or pull request.
// Clients send it as an auth.token/token query parameter, a token header or
// an Authorization bearer; the value is opaque here, Verify decides its fate.
func TokenFromRequest(r *http.Request) string {
	if token := r.URL.Query().Get("auth.token"); token != "" {
		return token
	}
	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}
	if token := r.Header.Get("token"); token != "" {
		return token
	}
	if bearer := r.Header.Get("Authorization"); strings.HasPrefix(bearer, "Bearer ") {
		return strings.TrimPrefix(bearer, "Bearer ")
	}
	return ""
}

// ConversationFromRequest extracts the conversation identifier required by
// the chat namespace handshake. Empty means the client did not send one.
func ConversationFromRequest(r *http.Request) string {
	if id := r.URL.Query().Get("conversationId"); id != "" {
		return id
	}
	return r.Header.Get("conversation-id")
}
