// Package runtime holds the in-process side of session handling: the hub
// mapping session ids to live sinks, the event router on top of it, and the
// supervisor running background workers.
package runtime

import (
	"sync"

	"presence-hub/contract"
	"presence-hub/domain"
)

// Hub resolves a session id from the registry into the live transport sink
// of this process. It is the only in-process session state; everything
// durable lives in the registry.
type Hub struct {
	mu       sync.RWMutex
	sinks    map[string]contract.EventSink
	sessions map[string]domain.Session
}

func NewHub() *Hub {
	return &Hub{
		sinks:    make(map[string]contract.EventSink),
		sessions: make(map[string]domain.Session),
	}
}

func (h *Hub) Attach(sess domain.Session, sink contract.EventSink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sinks[sess.SessionID] = sink
	h.sessions[sess.SessionID] = sess
}

func (h *Hub) Detach(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sinks, sessionID)
	delete(h.sessions, sessionID)
}

// Get returns the sink for a session, or nil when the session is not attached
// to this process (disconnected, or stale registry state awaiting TTL expiry).
func (h *Hub) Get(sessionID string) contract.EventSink {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sinks[sessionID]
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sinks)
}

// Sessions snapshots all sessions currently attached to this process.
func (h *Hub) Sessions() []domain.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]domain.Session, 0, len(h.sessions))
	for _, sess := range h.sessions {
		out = append(out, sess)
	}
	return out
}
