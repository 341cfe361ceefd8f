package registry

import (
	"strings"
	"sync"
	"time"

	"presence-hub/errors"
)

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryRegistry is an in-process Registry for tests and single-node use.
// Expiry is checked lazily on access, which matches the store contract:
// TTLs bound staleness, they do not schedule callbacks.
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{entries: make(map[string]entry), now: time.Now}
}

func (r *MemoryRegistry) set(key string, value []byte, ttl time.Duration) {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
	}
	r.entries[key] = e
}

func (r *MemoryRegistry) get(key string) (entry, bool) {
	e, ok := r.entries[key]
	if !ok || e.expired(r.now()) {
		return entry{}, false
	}
	return e, true
}

func (r *MemoryRegistry) Put(key string, value []byte, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set(plainPrefix+key, value, ttl)
	return nil
}

func (r *MemoryRegistry) Get(key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.get(plainPrefix + key)
	if !ok {
		return nil, errors.ErrNotFound
	}
	return e.value, nil
}

func (r *MemoryRegistry) Delete(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, plainPrefix+key)
	return nil
}

func (r *MemoryRegistry) SetAdd(key, member string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set(setPrefix+key+":"+member, nil, 0)
	return nil
}

func (r *MemoryRegistry) SetRemove(key, member string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, setPrefix+key+":"+member)
	return nil
}

func (r *MemoryRegistry) SetMembers(key string) ([]string, error) {
	return r.suffixes(setPrefix + key + ":"), nil
}

func (r *MemoryRegistry) SetIsMember(key, member string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.get(setPrefix + key + ":" + member)
	return ok, nil
}

func (r *MemoryRegistry) HSet(key, field string, value []byte, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set(hashPrefix+key+":"+field, value, ttl)
	return nil
}

func (r *MemoryRegistry) HGet(key, field string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.get(hashPrefix + key + ":" + field)
	if !ok {
		return nil, errors.ErrNotFound
	}
	return e.value, nil
}

func (r *MemoryRegistry) HDel(key, field string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, hashPrefix+key+":"+field)
	return nil
}

func (r *MemoryRegistry) HGetAll(key string) (map[string][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prefix := hashPrefix + key + ":"
	out := make(map[string][]byte)
	now := r.now()
	for k, e := range r.entries {
		if strings.HasPrefix(k, prefix) && !e.expired(now) {
			out[strings.TrimPrefix(k, prefix)] = e.value
		}
	}
	return out, nil
}

func (r *MemoryRegistry) HKeys(key string) ([]string, error) {
	return r.suffixes(hashPrefix + key + ":"), nil
}

func (r *MemoryRegistry) HCompareAndSwap(key, field string, expected, next []byte, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fullKey := hashPrefix + key + ":" + field
	current, ok := r.get(fullKey)
	switch {
	case !ok && expected != nil:
		return errors.ErrNotFound
	case ok && expected == nil:
		return errors.ErrConflict
	case ok && string(current.value) != string(expected):
		return errors.ErrConflict
	}
	if next == nil {
		delete(r.entries, fullKey)
		return nil
	}
	r.set(fullKey, next, ttl)
	return nil
}

func (r *MemoryRegistry) Expire(key string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for k, e := range r.entries {
		exact := k == plainPrefix+key
		nested := strings.HasPrefix(k, setPrefix+key+":") || strings.HasPrefix(k, hashPrefix+key+":")
		if (exact || nested) && !e.expired(now) {
			e.expiresAt = now.Add(ttl)
			r.entries[k] = e
		}
	}
	return nil
}

func (r *MemoryRegistry) suffixes(prefix string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	now := r.now()
	for k, e := range r.entries {
		if strings.HasPrefix(k, prefix) && !e.expired(now) {
			out = append(out, strings.TrimPrefix(k, prefix))
		}
	}
	return out
}
