package registry

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"presence-hub/errors"
)

// Key prefixes keep the three value kinds (plain, set member, hash field)
// from colliding inside one store.
const (
	plainPrefix = "v:"
	setPrefix   = "s:"
	hashPrefix  = "h:"
)

// BadgerRegistry implements Registry on BadgerDB. Per-entry TTLs give the
// crash self-healing window and transactions give the conditional writes;
// sets and hashes are flattened to prefixed keys so membership scans are
// prefix iterations.
type BadgerRegistry struct {
	db *badger.DB
}

func NewBadgerRegistry(db *badger.DB) *BadgerRegistry {
	return &BadgerRegistry{db: db}
}

// wrap translates store failures into the registry taxonomy. Key misses stay
// ErrNotFound; everything else means the store itself is in trouble.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrNotFound
	}
	if stderrors.Is(err, errors.ErrNotFound) || stderrors.Is(err, errors.ErrConflict) {
		return err
	}
	return fmt.Errorf("%w: %v", errors.ErrRegistryUnavailable, err)
}

func setEntry(txn *badger.Txn, key string, value []byte, ttl time.Duration) error {
	e := badger.NewEntry([]byte(key), value)
	if ttl > 0 {
		e = e.WithTTL(ttl)
	}
	return txn.SetEntry(e)
}

func (r *BadgerRegistry) Put(key string, value []byte, ttl time.Duration) error {
	return wrap(r.db.Update(func(txn *badger.Txn) error {
		return setEntry(txn, plainPrefix+key, value, ttl)
	}))
}

func (r *BadgerRegistry) Get(key string) ([]byte, error) {
	var out []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(plainPrefix + key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *BadgerRegistry) Delete(key string) error {
	return wrap(r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(plainPrefix + key))
	}))
}

func (r *BadgerRegistry) SetAdd(key, member string) error {
	return wrap(r.db.Update(func(txn *badger.Txn) error {
		return setEntry(txn, setPrefix+key+":"+member, nil, 0)
	}))
}

func (r *BadgerRegistry) SetRemove(key, member string) error {
	return wrap(r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(setPrefix + key + ":" + member))
	}))
}

func (r *BadgerRegistry) SetMembers(key string) ([]string, error) {
	return r.scanSuffixes(setPrefix + key + ":")
}

func (r *BadgerRegistry) SetIsMember(key, member string) (bool, error) {
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(setPrefix + key + ":" + member))
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, wrap(err)
	}
	return true, nil
}

func (r *BadgerRegistry) HSet(key, field string, value []byte, ttl time.Duration) error {
	return wrap(r.db.Update(func(txn *badger.Txn) error {
		return setEntry(txn, hashPrefix+key+":"+field, value, ttl)
	}))
}

func (r *BadgerRegistry) HGet(key, field string) ([]byte, error) {
	var out []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(hashPrefix + key + ":" + field))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *BadgerRegistry) HDel(key, field string) error {
	return wrap(r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(hashPrefix + key + ":" + field))
	}))
}

func (r *BadgerRegistry) HGetAll(key string) (map[string][]byte, error) {
	out := make(map[string][]byte)
	prefix := hashPrefix + key + ":"
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			item := it.Item()
			field := strings.TrimPrefix(string(item.Key()), prefix)
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			out[field] = val
		}
		return nil
	})
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}

func (r *BadgerRegistry) HKeys(key string) ([]string, error) {
	return r.scanSuffixes(hashPrefix + key + ":")
}

// HCompareAndSwap runs read-check-write inside one transaction. Badger aborts
// conflicting concurrent transactions, so the losing writer of a race retries
// against the new value and fails the equality check.
func (r *BadgerRegistry) HCompareAndSwap(key, field string, expected, next []byte, ttl time.Duration) error {
	fullKey := []byte(hashPrefix + key + ":" + field)
	return wrap(r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(fullKey)
		switch {
		case stderrors.Is(err, badger.ErrKeyNotFound):
			if expected != nil {
				return errors.ErrNotFound
			}
		case err != nil:
			return err
		default:
			if expected == nil {
				return errors.ErrConflict
			}
			current, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if string(current) != string(expected) {
				return errors.ErrConflict
			}
		}
		if next == nil {
			return txn.Delete(fullKey)
		}
		e := badger.NewEntry(fullKey, next)
		if ttl > 0 {
			e = e.WithTTL(ttl)
		}
		return txn.SetEntry(e)
	}))
}

// Expire rewrites every entry reachable from key with a fresh TTL. Badger has
// no in-place touch, so the rewrite is the refresh.
func (r *BadgerRegistry) Expire(key string, ttl time.Duration) error {
	prefixes := []string{plainPrefix + key, setPrefix + key + ":", hashPrefix + key + ":"}
	return wrap(r.db.Update(func(txn *badger.Txn) error {
		for _, prefix := range prefixes {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			p := []byte(prefix)
			type kv struct {
				k []byte
				v []byte
			}
			var entries []kv
			for it.Seek(p); it.ValidForPrefix(p); it.Next() {
				item := it.Item()
				// the plain prefix is an exact key, not a namespace
				if prefix == plainPrefix+key && string(item.Key()) != plainPrefix+key {
					continue
				}
				v, err := item.ValueCopy(nil)
				if err != nil {
					it.Close()
					return err
				}
				entries = append(entries, kv{k: item.KeyCopy(nil), v: v})
			}
			it.Close()
			for _, e := range entries {
				entry := badger.NewEntry(e.k, e.v).WithTTL(ttl)
				if err := txn.SetEntry(entry); err != nil {
					return err
				}
			}
		}
		return nil
	}))
}

func (r *BadgerRegistry) scanSuffixes(prefix string) ([]string, error) {
	var out []string
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			out = append(out, strings.TrimPrefix(string(it.Item().Key()), prefix))
		}
		return nil
	})
	if err != nil {
		return nil, wrap(err)
	}
	return out, nil
}
