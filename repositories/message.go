//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"presence-hub/domain"
	"presence-hub/errors"
)

type IMessageRepository interface {
	Store(message domain.Message) error
	Get(messageID uuid.UUID) (domain.Message, error)
	Update(message domain.Message) error
	Delete(messageID uuid.UUID) error
	// List returns messages of a conversation newest first, plus the total
	// count for pagination.
	List(conversationID string, limit, offset int) ([]domain.Message, int, error)
	MarkRead(messageIDs []uuid.UUID) error
	UnreadCount(conversationID, userID string) (int, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// primaryKey is formatted as "msg:{conversation}:{timestamp_padded}:{uuid}":
// 19-digit zero padding keeps keys in chronological lexicographic order, the
// uuid disambiguates same-nanosecond arrivals.
func messageKey(m domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", m.ConversationID, m.CreatedAt.UnixNano(), m.ID))
}

// messageIndexKey maps a message id to its primary key for point lookups.
func messageIndexKey(id uuid.UUID) []byte {
	return []byte("idx:msg:" + id.String())
}

func (r MessageRepository) Store(message domain.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	primary := messageKey(message)
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(primary, data); err != nil {
			return err
		}
		return txn.Set(messageIndexKey(message.ID), primary)
	})
}

func (r MessageRepository) Get(messageID uuid.UUID) (domain.Message, error) {
	var message domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		primary, err := resolveIndex(txn, messageIndexKey(messageID))
		if err != nil {
			return err
		}
		item, err := txn.Get(primary)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &message)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Message{}, errors.ErrNotFound
	}
	return message, err
}

// Update rewrites a message in place. The primary key embeds the creation
// timestamp, which never changes, so the key is stable across edits.
func (r MessageRepository) Update(message domain.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		primary, err := resolveIndex(txn, messageIndexKey(message.ID))
		if err != nil {
			return err
		}
		return txn.Set(primary, data)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrNotFound
	}
	return err
}

func (r MessageRepository) Delete(messageID uuid.UUID) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		idx := messageIndexKey(messageID)
		primary, err := resolveIndex(txn, idx)
		if err != nil {
			return err
		}
		if err := txn.Delete(primary); err != nil {
			return err
		}
		return txn.Delete(idx)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrNotFound
	}
	return err
}

// List iterates the conversation prefix in reverse so the padded timestamp
// ordering yields newest first.
func (r MessageRepository) List(conversationID string, limit, offset int) ([]domain.Message, int, error) {
	var messages []domain.Message
	total := 0
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", conversationID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// reverse iteration seeks past the newest key of the prefix
		seekKey := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if total >= offset && (limit <= 0 || len(messages) < limit) {
				err := it.Item().Value(func(val []byte) error {
					var m domain.Message
					if err := json.Unmarshal(val, &m); err != nil {
						return err
					}
					messages = append(messages, m)
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
	return messages, total, nil
}

func (r MessageRepository) MarkRead(messageIDs []uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, id := range messageIDs {
			primary, err := resolveIndex(txn, messageIndexKey(id))
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				r.log.Debug("Skipping unknown message in mark-read", "id", id)
				continue
			}
			if err != nil {
				return err
			}
			item, err := txn.Get(primary)
			if err != nil {
				return err
			}
			var message domain.Message
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &message)
			}); err != nil {
				return err
			}
			if message.Read {
				continue
			}
			message.Read = true
			data, err := json.Marshal(message)
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

func (r MessageRepository) UnreadCount(conversationID, userID string) (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("msg:%s:", conversationID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var m domain.Message
				if err := json.Unmarshal(val, &m); err != nil {
					return err
				}
				if !m.Read && m.SenderID != userID {
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
	return count, err
}

func resolveIndex(txn *badger.Txn, indexKey []byte) ([]byte, error) {
	item, err := txn.Get(indexKey)
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}
