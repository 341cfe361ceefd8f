package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"presence-hub/errors"
)

func TestVerifier_Verify(t *testing.T) {
	verifier := NewVerifier("test-secret")

	t.Run("should resolve the user id from a valid token", func(t *testing.T) {
		req := require.New(t)
		token, err := verifier.Mint("user-42", time.Hour)
		req.NoError(err)

		userID, err := verifier.Verify(token)
		req.NoError(err)
		req.Equal("user-42", userID)
	})

	t.Run("should collapse every failure to unauthenticated", func(t *testing.T) {
		expired, err := verifier.Mint("user-42", -time.Hour)
		require.NoError(t, err)
		wrongSecret, err := NewVerifier("other-secret").Mint("user-42", time.Hour)
		require.NoError(t, err)

		for name, token := range map[string]string{
			"empty":        "",
			"garbage":      "not.a.token",
			"expired":      expired,
			"wrong secret": wrongSecret,
		} {
			t.Run(name, func(t *testing.T) {
				_, err := verifier.Verify(token)
				require.ErrorIs(t, err, errors.ErrUnauthenticated)
			})
		}
	})
}

func TestTokenFromRequest(t *testing.T) {
	req := require.New(t)

	r := httptest.NewRequest("GET", "/ws/chat?auth.token=abc&token=def", nil)
	req.Equal("abc", TokenFromRequest(r), "auth.token wins over token")

	r = httptest.NewRequest("GET", "/ws/chat", nil)
	r.Header.Set("token", "from-header")
	req.Equal("from-header", TokenFromRequest(r))

	r = httptest.NewRequest("GET", "/ws/chat?conversationId=c-1", nil)
	req.Equal("c-1", ConversationFromRequest(r))

	r = httptest.NewRequest("GET", "/ws/chat", nil)
	r.Header.Set("conversation-id", "c-2")
	req.Equal("c-2", ConversationFromRequest(r))
}
