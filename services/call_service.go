//go:generate go run go.uber.org/mock/mockgen -source=call_service.go -destination=../mocks/mock_call_service.go -package=mocks
package services

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"presence-hub/domain"
	"presence-hub/errors"
	"presence-hub/registry"
)

type ICallService interface {
	// Initiate creates a ringing call. At most one live call may exist per
	// caller/callee pair; a second attempt fails with ErrConflict.
	Initiate(callerID, calleeID string, callType domain.CallType) (domain.CallSession, error)
	// Answer moves the call from initiating to active. A non-party fails
	// with ErrForbidden before any state moves; a call already answered or
	// torn down concurrently fails with ErrConflict.
	Answer(userID, callID string) (domain.CallSession, error)
	// End deletes the call record and appends the summary message to the
	// pair's conversation. Ending an unanswered call records zero duration.
	// Two parties hanging up at once record exactly one summary.
	End(userID, callID string) (domain.CallSession, domain.Message, error)
	Get(callID string) (domain.CallSession, error)
	ListActive() ([]domain.CallSession, error)
}

// CallService manages in-flight call records in the registry. Every state
// transition is a conditional write keyed on the previous serialized record,
// so two parties racing on the same call resolve to exactly one winner.
type CallService struct {
	reg      registry.Registry
	messages IMessageService
	log      *slog.Logger
	now      func() time.Time
}

func NewCallService(reg registry.Registry, messages IMessageService, log *slog.Logger) *CallService {
	return &CallService{reg: reg, messages: messages, log: log, now: time.Now}
}

func (s *CallService) Initiate(callerID, calleeID string, callType domain.CallType) (domain.CallSession, error) {
	if callerID == calleeID {
		return domain.CallSession{}, errors.ErrForbidden
	}

	active, err := s.ListActive()
	if err != nil {
		return domain.CallSession{}, err
	}
	busy := lo.ContainsBy(active, func(c domain.CallSession) bool {
		return c.CallerID == callerID && c.CalleeID == calleeID
	})
	if busy {
		return domain.CallSession{}, fmt.Errorf("pair already has a live call: %w", errors.ErrConflict)
	}

	call := domain.CallSession{
		ID:        uuid.NewString(),
		CallerID:  callerID,
		CalleeID:  calleeID,
		Type:      callType,
		Status:    domain.CallInitiating,
		StartedAt: s.now(),
	}
	raw, err := json.Marshal(call)
	if err != nil {
		return domain.CallSession{}, fmt.Errorf("encoding call: %w", err)
	}
	if err := s.reg.HCompareAndSwap(registry.ActiveCallsKey, call.ID, nil, raw, registry.ConnectionTTL); err != nil {
		return domain.CallSession{}, err
	}

	s.log.Info("Call initiated", "call", call.ID, "caller", callerID, "callee", calleeID, "type", callType)
	return call, nil
}

func (s *CallService) Answer(userID, callID string) (domain.CallSession, error) {
	call, raw, err := s.load(callID)
	if err != nil {
		return domain.CallSession{}, err
	}
	if _, ok := call.Peer(userID); !ok {
		return domain.CallSession{}, fmt.Errorf("user %s is not a party of call %s: %w", userID, callID, errors.ErrForbidden)
	}
	if call.Status != domain.CallInitiating {
		return domain.CallSession{}, fmt.Errorf("call %s is already %s: %w", callID, call.Status, errors.ErrConflict)
	}

	call.Status = domain.CallActive
	next, err := json.Marshal(call)
	if err != nil {
		return domain.CallSession{}, fmt.Errorf("encoding call: %w", err)
	}
	if err := s.reg.HCompareAndSwap(registry.ActiveCallsKey, callID, raw, next, registry.ConnectionTTL); err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return domain.CallSession{}, errors.ErrCallNotFound
		}
		return domain.CallSession{}, err
	}

	s.log.Info("Call answered", "call", callID)
	return call, nil
}

func (s *CallService) End(userID, callID string) (domain.CallSession, domain.Message, error) {
	var call domain.CallSession
	var start, endedAt time.Time

	// The conditional delete elects a single winner before anything is
	// persisted; the loser of a concurrent hang-up reloads and finds the
	// record gone instead of writing a second summary.
	for {
		var raw []byte
		var err error
		call, raw, err = s.load(callID)
		if err != nil {
			return domain.CallSession{}, domain.Message{}, err
		}
		if _, ok := call.Peer(userID); !ok {
			return domain.CallSession{}, domain.Message{},
				fmt.Errorf("user %s is not a party of call %s: %w", userID, callID, errors.ErrForbidden)
		}

		endedAt = s.now()
		start = call.StartedAt
		if call.Status == domain.CallInitiating {
			// never answered: the summary reports a zero-duration call
			start = endedAt
		}
		call.EndedAt = &endedAt

		err = s.reg.HCompareAndSwap(registry.ActiveCallsKey, callID, raw, nil, 0)
		if err == nil {
			break
		}
		if stderrors.Is(err, errors.ErrNotFound) {
			return domain.CallSession{}, domain.Message{}, errors.ErrCallNotFound
		}
		if stderrors.Is(err, errors.ErrConflict) {
			// the record moved under us, e.g. the callee answered mid
			// hang-up; retry against the fresh state
			continue
		}
		return domain.CallSession{}, domain.Message{}, err
	}

	summary := fmt.Sprintf("CALL %s %s %s",
		start.Format(time.RFC3339), endedAt.Format(time.RFC3339), call.Type)
	message, err := s.messages.CreateCallSummary(call.CallerID, call.CalleeID, summary)
	if err != nil {
		return call, domain.Message{}, fmt.Errorf("recording call summary: %w", err)
	}

	s.log.Info("Call ended", "call", callID, "duration", endedAt.Sub(start))
	return call, message, nil
}

func (s *CallService) Get(callID string) (domain.CallSession, error) {
	call, _, err := s.load(callID)
	return call, err
}

func (s *CallService) ListActive() ([]domain.CallSession, error) {
	raw, err := s.reg.HGetAll(registry.ActiveCallsKey)
	if err != nil {
		return nil, err
	}

	calls := make([]domain.CallSession, 0, len(raw))
	for id, value := range raw {
		var call domain.CallSession
		if err := json.Unmarshal(value, &call); err != nil {
			s.log.Warn("Skipping undecodable call record", "call", id, "err", err)
			continue
		}
		calls = append(calls, call)
	}
	return calls, nil
}

func (s *CallService) load(callID string) (domain.CallSession, []byte, error) {
	raw, err := s.reg.HGet(registry.ActiveCallsKey, callID)
	if stderrors.Is(err, errors.ErrNotFound) {
		return domain.CallSession{}, nil, errors.ErrCallNotFound
	}
	if err != nil {
		return domain.CallSession{}, nil, err
	}

	var call domain.CallSession
	if err := json.Unmarshal(raw, &call); err != nil {
		return domain.CallSession{}, nil, fmt.Errorf("decoding call %s: %w", callID, err)
	}
	return call, raw, nil
}
