//go:generate go run go.uber.org/mock/mockgen -source=notification.go -destination=../mocks/mock_notification_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"presence-hub/domain"
)

type INotificationRepository interface {
	Store(n domain.NotificationEvent) error
	// List returns a recipient's notifications newest first plus the total
	// count for pagination.
	List(recipientID string, limit, offset int) ([]domain.NotificationEvent, int, error)
	MarkViewed(notificationIDs []uuid.UUID) error
	UnreadCount(recipientID string) (int, error)
}

type NotificationRepository struct {
	db *badger.DB
}

func NewNotificationRepository(db *badger.DB) NotificationRepository {
	return NotificationRepository{db: db}
}

func notificationKey(n domain.NotificationEvent) []byte {
	return []byte(fmt.Sprintf("notif:%s:%019d:%s", n.RecipientID, n.CreatedAt.UnixNano(), n.ID))
}

func notificationIndexKey(id uuid.UUID) []byte {
	return []byte("idx:notif:" + id.String())
}

func (r NotificationRepository) Store(n domain.NotificationEvent) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	primary := notificationKey(n)
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(primary, data); err != nil {
			return err
		}
		return txn.Set(notificationIndexKey(n.ID), primary)
	})
}

func (r NotificationRepository) List(recipientID string, limit, offset int) ([]domain.NotificationEvent, int, error) {
	var notifications []domain.NotificationEvent
	total := 0
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("notif:" + recipientID + ":")
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if total >= offset && (limit <= 0 || len(notifications) < limit) {
				err := it.Item().Value(func(val []byte) error {
					var n domain.NotificationEvent
					if err := json.Unmarshal(val, &n); err != nil {
						return err
					}
					notifications = append(notifications, n)
					return nil
				})
				if err != nil {
					return err
				}
			}
			total++
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r NotificationRepository) MarkViewed(notificationIDs []uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, id := range notificationIDs {
			primary, err := resolveIndex(txn, notificationIndexKey(id))
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			item, err := txn.Get(primary)
			if err != nil {
				return err
			}
			var n domain.NotificationEvent
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &n)
			}); err != nil {
				return err
			}
			if n.Read {
				continue
			}
			n.Read = true
			data, err := json.Marshal(n)
			if err != nil {
				return err
			}
			if err := txn.Set(primary, data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r NotificationRepository) UnreadCount(recipientID string) (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("notif:" + recipientID + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var n domain.NotificationEvent
				if err := json.Unmarshal(val, &n); err != nil {
					return err
				}
				if !n.Read {
					count++
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
