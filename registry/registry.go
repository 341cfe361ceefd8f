//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=../mocks/mock_registry.go -package=mocks
// Package registry is the contract over the shared key/value store that owns
// all session, subscription and call state. It knows key shapes and TTL rules,
// nothing else. The store is the serialization point for arbitrarily many
// concurrent dispatchers; no in-process cache sits in front of it.
package registry

import "time"

// TTLs bound the lifetime of orphaned state after an unclean crash.
const (
	// ConnectionTTL applies to notification and call connection keys and to
	// the online-users set.
	ConnectionTTL = 24 * time.Hour
	// ChatSubscriptionTTL applies to the per-user chat subscription hash.
	ChatSubscriptionTTL = time.Hour
)

// Registry is the shared store contract. Every operation is safe for
// concurrent use. Implementations return errors.ErrRegistryUnavailable when
// the store cannot be reached and errors.ErrNotFound for missing keys or
// fields; callers must not swallow the former.
type Registry interface {
	// Put stores value under key. A zero ttl means no expiry.
	Put(key string, value []byte, ttl time.Duration) error
	Get(key string) ([]byte, error)
	Delete(key string) error

	SetAdd(key, member string) error
	SetRemove(key, member string) error
	SetMembers(key string) ([]string, error)
	SetIsMember(key, member string) (bool, error)

	HSet(key, field string, value []byte, ttl time.Duration) error
	HGet(key, field string) ([]byte, error)
	HDel(key, field string) error
	HGetAll(key string) (map[string][]byte, error)
	HKeys(key string) ([]string, error)

	// HCompareAndSwap replaces the field only if its current value equals
	// expected. A nil expected requires the field to be absent. Mismatch
	// returns errors.ErrConflict; a missing field with non-nil expected
	// returns errors.ErrNotFound. This is the conditional write backing
	// call-state transitions.
	HCompareAndSwap(key, field string, expected, next []byte, ttl time.Duration) error

	// Expire refreshes the TTL of a key and, for sets and hashes, of every
	// member or field under it.
	Expire(key string, ttl time.Duration) error
}
