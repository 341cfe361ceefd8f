//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"presence-hub/domain"
	"presence-hub/errors"
)

// IUserRepository is the durable user collaborator: existence checks on
// recipients and the lastSeenAt write when a user drops offline. User CRUD
// itself lives outside this core.
type IUserRepository interface {
	Get(userID string) (domain.User, error)
	Put(user domain.User) error
	Exists(userID string) (bool, error)
	SetLastSeen(userID string, at time.Time) error
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) UserRepository {
	return UserRepository{db: db}
}

func userKey(id string) []byte {
	return []byte("user:" + id)
}

func (r UserRepository) Get(userID string) (domain.User, error) {
	var user domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrNotFound
	}
	return user, err
}

func (r UserRepository) Put(user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(user.ID), data)
	})
}

func (r UserRepository) Exists(userID string) (bool, error) {
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(userKey(userID))
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r UserRepository) SetLastSeen(userID string, at time.Time) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := userKey(userID)
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		var user domain.User
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		}); err != nil {
			return err
		}
		user.LastSeenAt = &at
		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrNotFound
	}
	return err
}
