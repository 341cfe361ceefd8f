package registry

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"presence-hub/errors"
)

func registries(t *testing.T) map[string]Registry {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return map[string]Registry{
		"badger": NewBadgerRegistry(db),
		"memory": NewMemoryRegistry(),
	}
}

func Test_Put_Get_Delete(t *testing.T) {
	for name, reg := range registries(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			_, err := reg.Get("missing")
			req.ErrorIs(err, errors.ErrNotFound)

			req.NoError(reg.Put("conn:alice", []byte("session-1"), 0))
			val, err := reg.Get("conn:alice")
			req.NoError(err)
			req.Equal([]byte("session-1"), val)

			// last write wins
			req.NoError(reg.Put("conn:alice", []byte("session-2"), 0))
			val, err = reg.Get("conn:alice")
			req.NoError(err)
			req.Equal([]byte("session-2"), val)

			req.NoError(reg.Delete("conn:alice"))
			_, err = reg.Get("conn:alice")
			req.ErrorIs(err, errors.ErrNotFound)
		})
	}
}

func Test_Set_Semantics(t *testing.T) {
	for name, reg := range registries(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			// adding twice keeps a single entry
			req.NoError(reg.SetAdd("online", "alice"))
			req.NoError(reg.SetAdd("online", "alice"))
			req.NoError(reg.SetAdd("online", "bob"))

			members, err := reg.SetMembers("online")
			req.NoError(err)
			req.ElementsMatch([]string{"alice", "bob"}, members)

			ok, err := reg.SetIsMember("online", "alice")
			req.NoError(err)
			req.True(ok)

			req.NoError(reg.SetRemove("online", "alice"))
			ok, err = reg.SetIsMember("online", "alice")
			req.NoError(err)
			req.False(ok)
		})
	}
}

func Test_Hash_Semantics(t *testing.T) {
	for name, reg := range registries(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			req.NoError(reg.HSet("chat:alice", "conv-1", []byte("s1"), 0))
			req.NoError(reg.HSet("chat:alice", "conv-2", []byte("s2"), 0))

			val, err := reg.HGet("chat:alice", "conv-1")
			req.NoError(err)
			req.Equal([]byte("s1"), val)

			keys, err := reg.HKeys("chat:alice")
			req.NoError(err)
			req.ElementsMatch([]string{"conv-1", "conv-2"}, keys)

			all, err := reg.HGetAll("chat:alice")
			req.NoError(err)
			req.Len(all, 2)
			req.Equal([]byte("s2"), all["conv-2"])

			req.NoError(reg.HDel("chat:alice", "conv-1"))
			_, err = reg.HGet("chat:alice", "conv-1")
			req.ErrorIs(err, errors.ErrNotFound)

			keys, err = reg.HKeys("chat:alice")
			req.NoError(err)
			req.Equal([]string{"conv-2"}, keys)
		})
	}
}

func Test_HCompareAndSwap(t *testing.T) {
	for name, reg := range registries(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			// create-if-absent
			req.NoError(reg.HCompareAndSwap("calls", "c1", nil, []byte("initiating"), 0))
			// create again must conflict
			req.ErrorIs(reg.HCompareAndSwap("calls", "c1", nil, []byte("initiating"), 0), errors.ErrConflict)

			// transition with the right precondition
			req.NoError(reg.HCompareAndSwap("calls", "c1", []byte("initiating"), []byte("active"), 0))
			// stale precondition loses
			req.ErrorIs(reg.HCompareAndSwap("calls", "c1", []byte("initiating"), []byte("active"), 0), errors.ErrConflict)

			// conditional delete
			req.NoError(reg.HCompareAndSwap("calls", "c1", []byte("active"), nil, 0))
			req.ErrorIs(reg.HCompareAndSwap("calls", "c1", []byte("active"), nil, 0), errors.ErrNotFound)
		})
	}
}

func Test_Expiry(t *testing.T) {
	req := require.New(t)
	reg := NewMemoryRegistry()

	now := time.Now()
	reg.now = func() time.Time { return now }

	req.NoError(reg.Put("conn:alice", []byte("s1"), time.Hour))
	req.NoError(reg.HSet("chat:alice", "conv-1", []byte("s1"), time.Hour))

	now = now.Add(30 * time.Minute)
	_, err := reg.Get("conn:alice")
	req.NoError(err)

	// refresh pushes expiry out
	req.NoError(reg.Expire("chat:alice", time.Hour))

	now = now.Add(45 * time.Minute)
	_, err = reg.Get("conn:alice")
	req.ErrorIs(err, errors.ErrNotFound, "connection key expired after its TTL")

	keys, err := reg.HKeys("chat:alice")
	req.NoError(err)
	req.Equal([]string{"conv-1"}, keys, "refreshed hash survives")

	now = now.Add(time.Hour)
	keys, err = reg.HKeys("chat:alice")
	req.NoError(err)
	req.Empty(keys)
}
