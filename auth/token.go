// Package auth verifies the opaque credential carried in a transport
// handshake and resolves it to a user identity. Tokens are issued elsewhere
// with the same shared secret; this side only verifies.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"presence-hub/errors"
)

// Claims is the payload stored inside the signed token. The HTTP auth
// boundary mints it; the realtime core reads only the user id.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Verifier checks handshake credentials against the shared signing secret.
// It is a pure function over its inputs; no state beyond the secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) Verifier {
	return Verifier{secret: []byte(secret)}
}

// Verify parses and validates the token and returns the user identity.
// Every failure mode (missing, malformed, expired, wrong signature)
// collapses to ErrUnauthenticated; callers disconnect, never retry.
func (v Verifier) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errors.ErrUnauthenticated
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", errors.ErrUnauthenticated
	}
	return claims.UserID, nil
}

// Mint creates a signed token for a user. The server never calls this in
// request paths; it exists for tests and local tooling that need a valid
// credential against the same secret.
func (v Verifier) Mint(userID string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
