package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"presence-hub/domain"
	"presence-hub/errors"
	"presence-hub/mocks"
	"presence-hub/registry"
)

func TestCallService_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	reg := registry.NewMemoryRegistry()
	messages := mocks.NewMockIMessageService(ctrl)
	svc := NewCallService(reg, messages, testLogger())

	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ended := started.Add(3 * time.Minute)
	svc.now = func() time.Time { return started }

	call, err := svc.Initiate("alice", "bob", domain.CallVideo)
	req.NoError(err)
	req.Equal(domain.CallInitiating, call.Status)
	req.Equal(started, call.StartedAt)

	answered, err := svc.Answer("bob", call.ID)
	req.NoError(err)
	req.Equal(domain.CallActive, answered.Status)

	// exactly one summary message for the whole lifecycle
	summary := fmt.Sprintf("CALL %s %s video",
		started.Format(time.RFC3339), ended.Format(time.RFC3339))
	messages.EXPECT().
		CreateCallSummary("alice", "bob", summary).
		Return(domain.Message{Content: summary, System: true}, nil).
		Times(1)

	svc.now = func() time.Time { return ended }
	finished, message, err := svc.End("alice", call.ID)
	req.NoError(err)
	req.NotNil(finished.EndedAt)
	req.Equal(ended, *finished.EndedAt)
	req.True(message.System)

	_, err = svc.Get(call.ID)
	req.ErrorIs(err, errors.ErrCallNotFound)
}

func TestCallService_Initiate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg := registry.NewMemoryRegistry()
	svc := NewCallService(reg, mocks.NewMockIMessageService(ctrl), testLogger())

	t.Run("should refuse a second live call for the same pair", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.Initiate("alice", "bob", domain.CallAudio)
		req.NoError(err)

		_, err = svc.Initiate("alice", "bob", domain.CallVideo)
		req.ErrorIs(err, errors.ErrConflict)
	})

	t.Run("should allow distinct pairs concurrently", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.Initiate("bob", "alice", domain.CallAudio)
		req.NoError(err)
		_, err = svc.Initiate("carol", "dave", domain.CallAudio)
		req.NoError(err)

		active, err := svc.ListActive()
		req.NoError(err)
		req.Len(active, 3)
	})

	t.Run("should refuse calling yourself", func(t *testing.T) {
		_, err := svc.Initiate("alice", "alice", domain.CallAudio)
		require.ErrorIs(t, err, errors.ErrForbidden)
	})
}

func TestCallService_Answer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg := registry.NewMemoryRegistry()
	svc := NewCallService(reg, mocks.NewMockIMessageService(ctrl), testLogger())

	t.Run("should fail on an unknown call without side effects", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.Answer("alice", "224160a6-9c1f-4c5f-9c11-58eb4b5d1a3f")
		req.ErrorIs(err, errors.ErrCallNotFound)

		active, err := svc.ListActive()
		req.NoError(err)
		req.Empty(active)
	})

	t.Run("should refuse answering twice", func(t *testing.T) {
		req := require.New(t)

		call, err := svc.Initiate("alice", "bob", domain.CallAudio)
		req.NoError(err)

		_, err = svc.Answer("bob", call.ID)
		req.NoError(err)

		_, err = svc.Answer("bob", call.ID)
		req.ErrorIs(err, errors.ErrConflict)
	})
}

func TestCallService_End(t *testing.T) {
	t.Run("should record a zero duration for an unanswered call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		req := require.New(t)

		reg := registry.NewMemoryRegistry()
		messages := mocks.NewMockIMessageService(ctrl)
		svc := NewCallService(reg, messages, testLogger())

		started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		hungUp := started.Add(20 * time.Second)
		svc.now = func() time.Time { return started }

		call, err := svc.Initiate("alice", "bob", domain.CallAudio)
		req.NoError(err)

		// the call never went active, so the summary spans zero time
		summary := fmt.Sprintf("CALL %s %s audio",
			hungUp.Format(time.RFC3339), hungUp.Format(time.RFC3339))
		messages.EXPECT().
			CreateCallSummary("alice", "bob", summary).
			Return(domain.Message{Content: summary, System: true}, nil).
			Times(1)

		svc.now = func() time.Time { return hungUp }
		_, _, err = svc.End("alice", call.ID)
		req.NoError(err)

		_, err = svc.Get(call.ID)
		req.ErrorIs(err, errors.ErrCallNotFound)
	})

	t.Run("should record exactly one summary when both parties hang up at once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		req := require.New(t)

		reg := registry.NewMemoryRegistry()
		messages := mocks.NewMockIMessageService(ctrl)
		svc := NewCallService(reg, messages, testLogger())

		call, err := svc.Initiate("alice", "bob", domain.CallAudio)
		req.NoError(err)

		messages.EXPECT().
			CreateCallSummary("alice", "bob", gomock.Any()).
			Return(domain.Message{System: true}, nil).
			Times(1)

		errs := make(chan error, 2)
		var wg sync.WaitGroup
		for _, userID := range []string{"alice", "bob"} {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				_, _, err := svc.End(userID, call.ID)
				errs <- err
			}(userID)
		}
		wg.Wait()
		close(errs)

		// one winner, one loser, no second summary
		var failures int
		for err := range errs {
			if err != nil {
				req.ErrorIs(err, errors.ErrCallNotFound)
				failures++
			}
		}
		req.Equal(1, failures)
	})

	t.Run("should refuse an outsider without touching the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		req := require.New(t)

		reg := registry.NewMemoryRegistry()
		messages := mocks.NewMockIMessageService(ctrl)
		svc := NewCallService(reg, messages, testLogger())

		messages.EXPECT().CreateCallSummary(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		call, err := svc.Initiate("alice", "bob", domain.CallVideo)
		req.NoError(err)

		_, err = svc.Answer("mallory", call.ID)
		req.ErrorIs(err, errors.ErrForbidden)

		_, _, err = svc.End("mallory", call.ID)
		req.ErrorIs(err, errors.ErrForbidden)

		// the call is still ringing for its actual parties
		current, err := svc.Get(call.ID)
		req.NoError(err)
		req.Equal(domain.CallInitiating, current.Status)
	})

	t.Run("should fail on an unknown call without recording anything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reg := registry.NewMemoryRegistry()
		messages := mocks.NewMockIMessageService(ctrl)
		svc := NewCallService(reg, messages, testLogger())

		messages.EXPECT().CreateCallSummary(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, _, err := svc.End("alice", "224160a6-9c1f-4c5f-9c11-58eb4b5d1a3f")
		require.ErrorIs(t, err, errors.ErrCallNotFound)
	})
}
