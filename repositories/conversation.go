//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"presence-hub/domain"
	"presence-hub/errors"
)

type IConversationRepository interface {
	Get(conversationID string) (domain.Conversation, error)
	// FindByParticipants resolves the conversation of a user pair regardless
	// of argument order; ErrNotFound when the pair never talked.
	FindByParticipants(userA, userB string) (domain.Conversation, error)
	// Create persists a new conversation for the pair and returns it.
	Create(userA, userB string) (domain.Conversation, error)
	Touch(conversationID string, at time.Time) error
}

type ConversationRepository struct {
	db *badger.DB
}

func NewConversationRepository(db *badger.DB) ConversationRepository {
	return ConversationRepository{db: db}
}

func conversationKey(id string) []byte {
	return []byte("conv:" + id)
}

// pairIndexKey is order-insensitive: participants are sorted before joining.
func pairIndexKey(userA, userB string) []byte {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return []byte("idx:convp:" + pair[0] + ":" + pair[1])
}

func (r ConversationRepository) Get(conversationID string) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(conversationKey(conversationID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &conversation)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Conversation{}, errors.ErrNotFound
	}
	return conversation, err
}

func (r ConversationRepository) FindByParticipants(userA, userB string) (domain.Conversation, error) {
	var id string
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(pairIndexKey(userA, userB))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Conversation{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.Conversation{}, err
	}
	return r.Get(id)
}

func (r ConversationRepository) Create(userA, userB string) (domain.Conversation, error) {
	participants := []string{userA, userB}
	sort.Strings(participants)
	now := time.Now().UTC()
	conversation := domain.Conversation{
		ID:           uuid.New().String(),
		Participants: participants,
		CreatedAt:    now,
		LastActiveAt: now,
	}
	data, err := json.Marshal(conversation)
	if err != nil {
		return domain.Conversation{}, err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		// a concurrent Create for the same pair keeps the first winner
		if _, err := txn.Get(pairIndexKey(userA, userB)); err == nil {
			return errors.ErrConflict
		}
		if err := txn.Set(conversationKey(conversation.ID), data); err != nil {
			return err
		}
		return txn.Set(pairIndexKey(userA, userB), []byte(conversation.ID))
	})
	if stderrors.Is(err, errors.ErrConflict) {
		return r.FindByParticipants(userA, userB)
	}
	if err != nil {
		return domain.Conversation{}, err
	}
	return conversation, nil
}

func (r ConversationRepository) Touch(conversationID string, at time.Time) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := conversationKey(conversationID)
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		var conversation domain.Conversation
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &conversation)
		}); err != nil {
			return err
		}
		conversation.LastActiveAt = at
		data, err := json.Marshal(conversation)
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
