package gateway

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"presence-hub/domain/event"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// minReadLimit floors the inbound frame size for deployments that
	// disable attachments entirely.
	minReadLimit = 1 << 20

	// sendBuffer bounds how far a slow consumer may lag before events are
	// dropped. The router never blocks on a client.
	sendBuffer = 64
)

// readLimitFor sizes the inbound frame cap so a send-message carrying an
// attachment at the configured maximum still fits after base64 inflation
// (4/3) plus envelope slack.
func readLimitFor(maxAttachmentSize int64) int64 {
	limit := maxAttachmentSize/3*4 + 64<<10
	if limit < minReadLimit {
		return minReadLimit
	}
	return limit
}

// Client is one upgraded websocket connection. It satisfies
// contract.EventSink: Consume enqueues without blocking and reports a full
// buffer or closed connection as an error, which the router treats as a
// failed delivery.
type Client struct {
	sessionID string
	conn      *websocket.Conn
	send      chan event.Envelope
	done      chan struct{}
	closeOnce sync.Once
	log       *slog.Logger
}

func newClient(sessionID string, conn *websocket.Conn, log *slog.Logger) *Client {
	return &Client{
		sessionID: sessionID,
		conn:      conn,
		send:      make(chan event.Envelope, sendBuffer),
		done:      make(chan struct{}),
		log:       log,
	}
}

func (c *Client) Consume(evt event.Envelope) error {
	select {
	case <-c.done:
		return fmt.Errorf("session %s is closed", c.sessionID)
	default:
	}

	select {
	case c.send <- evt:
		return nil
	default:
		return fmt.Errorf("session %s send buffer full, dropping %s", c.sessionID, evt.Event)
	}
}

// writePump drains the send buffer onto the wire and keeps the connection
// alive with pings. It owns all writes; nothing else touches the conn's
// write side.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case evt := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(evt); err != nil {
				c.log.Debug("Write failed, closing session", "session", c.sessionID, "err", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}
