package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"presence-hub/errors"
)

func Test_Conversation_Pair_Resolution(t *testing.T) {
	req := require.New(t)
	repository := NewConversationRepository(openTestDB(t))

	_, err := repository.FindByParticipants("alice", "bob")
	req.ErrorIs(err, errors.ErrNotFound)

	created, err := repository.Create("alice", "bob")
	req.NoError(err)
	req.ElementsMatch([]string{"alice", "bob"}, created.Participants)

	// pair lookup is order-insensitive
	found, err := repository.FindByParticipants("bob", "alice")
	req.NoError(err)
	req.Equal(created.ID, found.ID)

	// creating again resolves to the existing conversation
	again, err := repository.Create("bob", "alice")
	req.NoError(err)
	req.Equal(created.ID, again.ID)
}

func Test_Conversation_Touch(t *testing.T) {
	req := require.New(t)
	repository := NewConversationRepository(openTestDB(t))

	created, err := repository.Create("alice", "bob")
	req.NoError(err)

	later := created.LastActiveAt.Add(time.Hour)
	req.NoError(repository.Touch(created.ID, later))

	fetched, err := repository.Get(created.ID)
	req.NoError(err)
	req.WithinDuration(later, fetched.LastActiveAt, time.Second)

	req.ErrorIs(repository.Touch("missing", later), errors.ErrNotFound)
}
