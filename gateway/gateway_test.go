package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"presence-hub/auth"
	"presence-hub/domain"
	"presence-hub/domain/event"
	"presence-hub/registry"
	"presence-hub/repositories"
	"presence-hub/runtime"
	"presence-hub/services"
	"presence-hub/storage"
)

type fixture struct {
	server   *httptest.Server
	verifier auth.Verifier
	presence *services.PresenceService
	conv     repositories.ConversationRepository
	reg      *registry.MemoryRegistry
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	reg := registry.NewMemoryRegistry()
	hub := runtime.NewHub()
	router := runtime.NewEventRouter(reg, hub, log)

	users := repositories.NewUserRepository(db)
	require.NoError(t, users.Put(domain.User{ID: "alice", FirstName: "Alice"}))
	require.NoError(t, users.Put(domain.User{ID: "bob", FirstName: "Bob"}))

	conversations := repositories.NewConversationRepository(db)
	notifications := services.NewNotificationService(repositories.NewNotificationRepository(db), users, router, log)
	messages := services.NewMessageService(
		repositories.NewMessageRepository(db, log),
		conversations,
		users,
		notifications,
		storage.NewAttachmentStore(t.TempDir(), 1<<20, log),
		nil,
		log,
	)
	presence := services.NewPresenceService(reg, users, log)
	channels := services.NewChannelService(reg, log)
	calls := services.NewCallService(reg, messages, log)

	verifier := auth.NewVerifier("gateway-test-secret")
	gw := New(verifier, hub, router, presence, channels, messages, notifications, calls, 1<<20, log)

	mux := chi.NewRouter()
	gw.Routes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return fixture{server: server, verifier: verifier, presence: presence, conv: conversations, reg: reg}
}

// waitForKey blocks until the server goroutine has registered the session,
// so a test can send immediately after dialing without racing the handshake.
func (f fixture) waitForKey(t *testing.T, key string) {
	t.Helper()
	require.Eventually(t, func() bool {
		_, err := f.reg.Get(key)
		return err == nil
	}, 2*time.Second, 5*time.Millisecond, "session key %s should appear", key)
}

func (f fixture) waitForRoom(t *testing.T, conversationID string, sessions int) {
	t.Helper()
	require.Eventually(t, func() bool {
		members, err := f.reg.SetMembers(registry.ConversationRoomKey(conversationID))
		return err == nil && len(members) == sessions
	}, 2*time.Second, 5*time.Millisecond, "room %s should hold %d sessions", conversationID, sessions)
}

func (f fixture) dial(t *testing.T, path, userID string, query ...string) *websocket.Conn {
	t.Helper()
	token, err := f.verifier.Mint(userID, time.Minute)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + path + "?token=" + token
	for _, q := range query {
		url += "&" + q
	}
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn, want string) json.RawMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var frame struct {
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&frame))
		if frame.Event == want {
			return frame.Data
		}
	}
}

func send(t *testing.T, conn *websocket.Conn, eventName string, payload any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(event.Envelope{Event: eventName, Data: payload}))
}

func TestReadLimitFor(t *testing.T) {
	t.Run("should fit a base64 inflated attachment at the configured size", func(t *testing.T) {
		const maxAttachment = 10485760
		require.GreaterOrEqual(t, readLimitFor(maxAttachment), int64(maxAttachment)/3*4)
	})

	t.Run("should floor the limit when attachments are disabled", func(t *testing.T) {
		require.Equal(t, int64(minReadLimit), readLimitFor(0))
	})
}

func TestGateway_Handshake(t *testing.T) {
	fx := newFixture(t)

	t.Run("should refuse a bad token", func(t *testing.T) {
		url := "ws" + strings.TrimPrefix(fx.server.URL, "http") + "/ws/notifications?token=garbage"
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		require.Error(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("should refuse chat without a conversation id", func(t *testing.T) {
		req := require.New(t)
		token, err := fx.verifier.Mint("alice", time.Minute)
		req.NoError(err)

		url := "ws" + strings.TrimPrefix(fx.server.URL, "http") + "/ws/chat?token=" + token
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		req.Error(err)
		req.Equal(http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	})
}

func TestGateway_PresenceLifecycle(t *testing.T) {
	req := require.New(t)
	fx := newFixture(t)

	conn := fx.dial(t, "/ws/notifications", "alice")

	req.Eventually(func() bool {
		online, err := fx.presence.IsOnline("alice")
		return err == nil && online
	}, 2*time.Second, 10*time.Millisecond, "alice should be online after connecting")

	req.NoError(conn.Close())

	req.Eventually(func() bool {
		online, err := fx.presence.IsOnline("alice")
		return err == nil && !online
	}, 2*time.Second, 10*time.Millisecond, "alice should go offline after her last session closes")
}

func TestGateway_PresenceSurvivesChatDisconnect(t *testing.T) {
	req := require.New(t)
	fx := newFixture(t)

	conversation, err := fx.conv.Create("alice", "bob")
	req.NoError(err)

	notifications := fx.dial(t, "/ws/notifications", "alice")
	fx.waitForKey(t, registry.UserConnectionsKey("alice"))
	req.Eventually(func() bool {
		online, err := fx.presence.IsOnline("alice")
		return err == nil && online
	}, 2*time.Second, 10*time.Millisecond, "alice should be online after connecting")

	chat := fx.dial(t, "/ws/chat", "alice", "conversationId="+conversation.ID)
	fx.waitForRoom(t, conversation.ID, 1)
	req.NoError(chat.Close())
	req.Eventually(func() bool {
		members, err := fx.reg.SetMembers(registry.ConversationRoomKey(conversation.ID))
		return err == nil && len(members) == 0
	}, 2*time.Second, 10*time.Millisecond, "chat subscription should be torn down")

	// closing the last chat subscription must not flip the flag while the
	// notification session is still live
	req.Never(func() bool {
		online, err := fx.presence.IsOnline("alice")
		return err != nil || !online
	}, 500*time.Millisecond, 20*time.Millisecond, "alice must stay online on her notification session")

	req.NoError(notifications.Close())
	req.Eventually(func() bool {
		online, err := fx.presence.IsOnline("alice")
		return err == nil && !online
	}, 2*time.Second, 10*time.Millisecond, "alice should go offline once the notification session closes")
}

func TestGateway_ChatRoundTrip(t *testing.T) {
	req := require.New(t)
	fx := newFixture(t)

	conversation, err := fx.conv.Create("alice", "bob")
	req.NoError(err)

	alice := fx.dial(t, "/ws/chat", "alice", "conversationId="+conversation.ID)
	bob := fx.dial(t, "/ws/chat", "bob", "conversationId="+conversation.ID)
	fx.waitForRoom(t, conversation.ID, 2)

	send(t, alice, event.SendMessage, event.SendMessagePayload{
		ChatID:      conversation.ID,
		RecipientID: "bob",
		Content:     "see you at nine",
	})

	// the broadcast reaches both subscribed sessions, sender included
	for name, conn := range map[string]*websocket.Conn{"alice": alice, "bob": bob} {
		var message domain.Message
		req.NoError(json.Unmarshal(readEvent(t, conn, event.NewMessage), &message), name)
		req.Equal("see you at nine", message.Content, name)
		req.Equal("alice", message.SenderID, name)
	}
}

func TestGateway_ChatException(t *testing.T) {
	req := require.New(t)
	fx := newFixture(t)

	conversation, err := fx.conv.Create("alice", "bob")
	req.NoError(err)

	alice := fx.dial(t, "/ws/chat", "alice", "conversationId="+conversation.ID)

	// empty message: the failure comes back to the sender only
	send(t, alice, event.SendMessage, event.SendMessagePayload{RecipientID: "bob"})

	var payload event.ExceptionPayload
	req.NoError(json.Unmarshal(readEvent(t, alice, event.Exception), &payload))
	req.Contains(payload.Message, "no content")
}

func TestGateway_CallSignaling(t *testing.T) {
	req := require.New(t)
	fx := newFixture(t)

	alice := fx.dial(t, "/ws/calls", "alice")
	bob := fx.dial(t, "/ws/calls", "bob")
	fx.waitForKey(t, registry.CallConnectionsKey("alice"))
	fx.waitForKey(t, registry.CallConnectionsKey("bob"))

	send(t, alice, event.InitiateCall, event.InitiateCallPayload{
		CalleeID:   "bob",
		CallerName: "Alice",
		CallType:   domain.CallVideo,
	})

	var incoming event.IncomingCallPayload
	req.NoError(json.Unmarshal(readEvent(t, bob, event.IncomingCall), &incoming))
	req.Equal("alice", incoming.UserID)
	req.Equal(domain.CallVideo, incoming.CallType)

	send(t, bob, event.AnswerCall, event.AnswerCallPayload{CallID: incoming.CallID})

	var answered event.CallAnsweredPayload
	req.NoError(json.Unmarshal(readEvent(t, alice, event.CallAnswered), &answered))
	req.Equal(incoming.CallID, answered.CallID)

	send(t, alice, event.EndCall, event.EndCallPayload{CallID: incoming.CallID})

	var ended event.CallEndedPayload
	req.NoError(json.Unmarshal(readEvent(t, bob, event.CallEnded), &ended))
	req.Equal(incoming.CallID, ended.CallID)
}

func TestGateway_PullEndpoints(t *testing.T) {
	req := require.New(t)
	fx := newFixture(t)

	token, err := fx.verifier.Mint("alice", time.Minute)
	req.NoError(err)

	request, err := http.NewRequest(http.MethodGet, fx.server.URL+"/presence/online", nil)
	req.NoError(err)
	request.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(request)
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusOK, resp.StatusCode)

	var body map[string][]string
	req.NoError(json.NewDecoder(resp.Body).Decode(&body))
	req.NotNil(body["users"])

	t.Run("should refuse anonymous pulls", func(t *testing.T) {
		resp, err := http.Get(fx.server.URL + "/notifications")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
