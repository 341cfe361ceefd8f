//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"presence-hub/domain"
	"presence-hub/domain/event"
)

// EventSink is the consumer side of one live transport session. Consume must
// not block: implementations buffer and drop rather than stall the router.
type EventSink interface {
	Consume(evt event.Envelope) error
}

// Router delivers typed events to live sessions. Absence of a session is
// normal, not an error; nothing is retried or queued.
type Router interface {
	// Deliver pushes the event to the recipient's single live session on the
	// channel. Returns false, with no side effect, when there is none.
	Deliver(channel domain.Channel, recipientID string, evt event.Envelope) bool
	// Broadcast pushes the event to every live session subscribed to the
	// conversation, the sender's other sessions included. Returns the number
	// of sessions reached.
	Broadcast(conversationID string, evt event.Envelope) int
}

// Presence is the read side other services use to annotate entities with a
// live online flag.
type Presence interface {
	IsOnline(userID string) (bool, error)
	OnlineUsers() ([]string, error)
}

// Worker is a supervised background loop. It returns nil when it is done for
// good and an error when it should be restarted.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of a worker for
// logging and supervision, avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
