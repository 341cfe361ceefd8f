// Package gateway is the transport boundary: it upgrades websocket
// handshakes on the three realtime namespaces, decodes inbound event frames
// and dispatches them to the owning service. It also serves the HTTP pull
// endpoints offline clients use to catch up.
package gateway

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"presence-hub/auth"
	"presence-hub/contract"
	"presence-hub/domain"
	"presence-hub/domain/event"
	"presence-hub/errors"
	"presence-hub/runtime"
	"presence-hub/services"
)

type Gateway struct {
	verifier      auth.Verifier
	hub           *runtime.Hub
	router        contract.Router
	presence      services.IPresenceService
	channels      services.IChannelService
	messages      services.IMessageService
	notifications services.INotificationService
	calls         services.ICallService
	validate      *validator.Validate
	upgrader      websocket.Upgrader
	readLimit     int64
	log           *slog.Logger
}

func New(
	verifier auth.Verifier,
	hub *runtime.Hub,
	router contract.Router,
	presence services.IPresenceService,
	channels services.IChannelService,
	messages services.IMessageService,
	notifications services.INotificationService,
	calls services.ICallService,
	maxAttachmentSize int64,
	log *slog.Logger,
) *Gateway {
	return &Gateway{
		verifier:      verifier,
		hub:           hub,
		router:        router,
		presence:      presence,
		channels:      channels,
		messages:      messages,
		notifications: notifications,
		calls:         calls,
		validate:      validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		readLimit: readLimitFor(maxAttachmentSize),
		log:       log,
	}
}

// Routes mounts the websocket namespaces and the pull endpoints.
func (g *Gateway) Routes(r chi.Router) {
	r.Get("/ws/notifications", g.handleNotifications)
	r.Get("/ws/chat", g.handleChat)
	r.Get("/ws/calls", g.handleCalls)

	r.Get("/messages/{conversationID}", g.listMessages)
	r.Get("/messages/{conversationID}/unread-count", g.unreadMessages)
	r.Get("/notifications", g.listNotifications)
	r.Get("/notifications/unread-count", g.unreadNotifications)
	r.Get("/presence/online", g.listOnline)
}

// upgrade authenticates the handshake and turns the request into a live
// session. Credential failures close the transport before any state is
// written anywhere.
func (g *Gateway) upgrade(w http.ResponseWriter, r *http.Request, channel domain.Channel) (domain.Session, *Client, error) {
	userID, err := g.verifier.Verify(auth.TokenFromRequest(r))
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return domain.Session{}, nil, err
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return domain.Session{}, nil, fmt.Errorf("upgrading %s handshake: %w", channel, err)
	}

	sess := domain.Session{
		UserID:      userID,
		Channel:     channel,
		SessionID:   uuid.NewString(),
		ConnectedAt: time.Now(),
	}
	return sess, newClient(sess.SessionID, conn, g.log), nil
}

// inboundFrame is the raw wire envelope; Data stays deferred until the event
// name picks the payload type.
type inboundFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// readLoop pumps inbound frames into handle until the peer goes away.
func (g *Gateway) readLoop(sess domain.Session, client *Client, handle func(domain.Session, *Client, inboundFrame)) {
	client.conn.SetReadLimit(g.readLimit)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var frame inboundFrame
		if err := client.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.log.Debug("Session closed unexpectedly", "session", sess.SessionID, "err", err)
			}
			return
		}
		handle(sess, client, frame)
	}
}

// decode unmarshals and validates an event payload. A failure is reported to
// the sender only.
func (g *Gateway) decode(frame inboundFrame, payload any) error {
	if err := json.Unmarshal(frame.Data, payload); err != nil {
		return fmt.Errorf("malformed %s payload: %w", frame.Event, err)
	}
	if err := g.validate.Struct(payload); err != nil {
		return fmt.Errorf("invalid %s payload: %w", frame.Event, err)
	}
	return nil
}

// reply pushes an event back to the originating client only.
func (g *Gateway) reply(client *Client, evt event.Envelope) {
	if err := client.Consume(evt); err != nil {
		g.log.Debug("Could not reply to client", "session", client.sessionID, "err", err)
	}
}

// exception reports a failed inbound event to its sender. Known domain
// failures keep their message; anything else is masked.
func (g *Gateway) exception(client *Client, eventName string, err error) {
	g.log.Warn("Inbound event failed", "event", eventName, "session", client.sessionID, "err", err)
	g.reply(client, event.Envelope{
		Event: event.Exception,
		Data:  event.ExceptionPayload{Message: publicError(err)},
	})
}

func publicError(err error) string {
	for _, known := range []error{
		errors.ErrNotFound,
		errors.ErrCallNotFound,
		errors.ErrForbidden,
		errors.ErrConflict,
		errors.ErrEmptyMessage,
		errors.ErrAttachmentTooLarge,
		errors.ErrConversationRequired,
	} {
		if stderrors.Is(err, known) {
			return known.Error()
		}
	}
	return "internal error"
}
