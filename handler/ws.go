package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type Event string

const (
	SPlay      Event = "server/play"
	SHint      Event = "server/hint"
	SDifficult Event = "server/difficult"

	CData   Event = "client/data"
	CPlay   Event = "client/play"
	CHint   Event = "client/hint"
	CFinish Event = "client/finish"
	CError  Event = "client/error"
)

type Payload struct {
	Type Event       `json:"event"`
	Data interface{} `json:"data"`
}

func newPayload(event Event, data interface{}) Payload {
	return Payload{
		Type: event,
		Data: data,
	}
}

var (
	// Create upgrade websocket connection
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// Solving cross-domain problems
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	// pongWait is how long we will await a pong response from player
	pongWait = 10 * time.Second

	pingInterval = (pongWait * 9) / 10
)

// live plays the session of the request over a websocket connection.
func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Caller().Msg("error upgrading connection")
		return
	}

	lc := &liveConn{conn: conn, h: h, id: sess.ID(), done: make(chan struct{})}
	if err = lc.write(newPayload(CData, sess.Response())); err != nil {
		lc.close()
		return
	}
	go lc.ping()
	lc.read()
}

// liveConn is the websocket connection of a single session.
type liveConn struct {
	conn    *websocket.Conn
	h       *Handler
	id      uuid.UUID
	writeMu sync.Mutex
	done    chan struct{} // closed with the connection
	once    sync.Once
}

// read processes the messages of the player until the connection closes.
func (c *liveConn) read() {
	defer c.close()
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		var payload Payload
		if err := c.conn.ReadJSON(&payload); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Err(err).Caller().Msg("live connection closed")
			}
			return
		}
		if finished := c.handle(payload); finished {
			return
		}
	}
}

// handle answers a single message and reports whether the game is over.
func (c *liveConn) handle(m Payload) bool {
	switch m.Type {
	case SPlay:
		text, ok := m.Data.(string)
		if !ok {
			c.write(newPayload(CError, "Invalid message"))
			return false
		}
		play, err := c.h.srv.Guess(context.Background(), c.id, text)
		if err != nil {
			c.write(newPayload(CError, toError(err).Error()))
			return false
		}
		c.write(newPayload(CPlay, play))
		if play.Answer != nil {
			sess, err := c.h.srv.Session(c.id)
			if err == nil {
				c.write(newPayload(CFinish, sess.Response()))
			}
			return true
		}
	case SHint:
		hint, err := c.h.srv.Hint(c.id)
		if err != nil {
			c.write(newPayload(CError, toError(err).Error()))
			return false
		}
		c.write(newPayload(CHint, hint))
	case SDifficult:
		difficult, ok := m.Data.(bool)
		if !ok {
			c.write(newPayload(CError, "Invalid message"))
			return false
		}
		if err := c.h.srv.SetDifficult(c.id, difficult); err != nil {
			c.write(newPayload(CError, toError(err).Error()))
			return false
		}
		if sess, err := c.h.srv.Session(c.id); err == nil {
			c.write(newPayload(CData, sess.Response()))
		}
	default:
		c.write(newPayload(CError, "Unknown message type"))
	}
	return false
}

// ping pings the player to check if the player is still connected
// otherwise the connection is closed.
func (c *liveConn) ping() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.writeMu.Lock()
			err := c.conn.WriteMessage(websocket.PingMessage, []byte{})
			c.writeMu.Unlock()
			if err != nil {
				c.close()
				return
			}
		}
	}
}

// write writes the payload to the player connection in synchronized manner.
func (c *liveConn) write(payload Payload) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(payload)
}

func (c *liveConn) close() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}
