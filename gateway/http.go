package gateway

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"presence-hub/auth"
	"presence-hub/errors"
)

const defaultPageSize = 20

// The pull endpoints are the catch-up path: recipients who were offline when
// an event was routed read the durable record here.

func (g *Gateway) identify(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, err := g.verifier.Verify(auth.TokenFromRequest(r))
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}

func (g *Gateway) respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		g.log.Warn("Could not encode response", "err", err)
	}
}

func (g *Gateway) respondError(w http.ResponseWriter, err error) {
	switch {
	case stderrors.Is(err, errors.ErrNotFound), stderrors.Is(err, errors.ErrCallNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case stderrors.Is(err, errors.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (g *Gateway) listMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := g.identify(w, r)
	if !ok {
		return
	}

	limit, offset := pagination(r)
	page, err := g.messages.GetMessages(chi.URLParam(r, "conversationID"), userID, limit, offset)
	if err != nil {
		g.respondError(w, err)
		return
	}
	g.respond(w, page)
}

func (g *Gateway) unreadMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := g.identify(w, r)
	if !ok {
		return
	}

	count, err := g.messages.UnreadCount(chi.URLParam(r, "conversationID"), userID)
	if err != nil {
		g.respondError(w, err)
		return
	}
	g.respond(w, map[string]int{"count": count})
}

func (g *Gateway) listNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := g.identify(w, r)
	if !ok {
		return
	}

	limit, offset := pagination(r)
	page, err := g.notifications.List(userID, limit, offset)
	if err != nil {
		g.respondError(w, err)
		return
	}
	g.respond(w, page)
}

func (g *Gateway) unreadNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := g.identify(w, r)
	if !ok {
		return
	}

	count, err := g.notifications.UnreadCount(userID)
	if err != nil {
		g.respondError(w, err)
		return
	}
	g.respond(w, map[string]int{"count": count})
}

func (g *Gateway) listOnline(w http.ResponseWriter, r *http.Request) {
	if _, ok := g.identify(w, r); !ok {
		return
	}

	users, err := g.presence.OnlineUsers()
	if err != nil {
		g.respondError(w, err)
		return
	}
	if users == nil {
		users = []string{}
	}
	g.respond(w, map[string][]string{"users": users})
}
