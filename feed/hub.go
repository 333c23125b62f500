package feed

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-ordering-app/metrics"
	"github.com/yeremiapane/food-ordering-app/models"
)

// Event types
const (
	EventOrderPlaced = "order_placed"
)

const (
	defaultWriteWait = 10 * time.Second
	sendBuffer       = 16
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// client is one open feed socket, bound to the session that opened it.
type client struct {
	conn         *websocket.Conn
	customerUUID string
	accessToken  string
	send         chan []byte
	expiry       *time.Timer
}

// Hub keeps the open order-feed connections of every logged-in customer.
// One customer may be connected from several devices. A connection lives no
// longer than the session it was opened with.
type Hub struct {
	clients   map[*websocket.Conn]*client
	mutex     sync.Mutex
	writeWait time.Duration
	now       func() time.Time
	log       *logrus.Logger
	metrics   *metrics.Metrics
}

func NewHub(log *logrus.Logger, m *metrics.Metrics) *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]*client),
		writeWait: defaultWriteWait,
		now:       time.Now,
		log:       log,
		metrics:   m,
	}
}

// Register starts delivering the customer's events to conn until the session
// behind accessToken ends at expiresAt, is closed, or the client falls behind.
func (h *Hub) Register(conn *websocket.Conn, customerUUID, accessToken string, expiresAt time.Time) {
	c := &client{
		conn:         conn,
		customerUUID: customerUUID,
		accessToken:  accessToken,
		send:         make(chan []byte, sendBuffer),
	}

	h.mutex.Lock()
	h.clients[conn] = c
	h.metrics.FeedClientConnected()
	if !expiresAt.IsZero() {
		c.expiry = time.AfterFunc(expiresAt.Sub(h.now()), func() {
			h.mutex.Lock()
			defer h.mutex.Unlock()
			if h.removeLocked(c) {
				h.log.WithField("customer_id", c.customerUUID).Info("Feed connection closed: session expired")
			}
		})
	}
	h.mutex.Unlock()

	go h.writePump(c)
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	if c, ok := h.clients[conn]; ok {
		h.removeLocked(c)
	}
	h.mutex.Unlock()
	conn.Close()
}

// CloseSession drops every connection opened with accessToken.
func (h *Hub) CloseSession(accessToken string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	closed := 0
	for _, c := range h.clients {
		if c.accessToken == accessToken && h.removeLocked(c) {
			closed++
		}
	}
	if closed > 0 {
		h.log.WithField("clients", closed).Info("Feed connections closed: session logged out")
	}
}

// ClientCount returns how many connections belong to customerUUID.
func (h *Hub) ClientCount(customerUUID string) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	n := 0
	for _, c := range h.clients {
		if c.customerUUID == customerUUID {
			n++
		}
	}
	return n
}

// PublishOrderPlaced notifies the customer's own connections about a new order.
// It never waits on the network.
func (h *Hub) PublishOrderPlaced(customerUUID string, order *models.Order) {
	h.sendTo(customerUUID, Message{
		Event: EventOrderPlaced,
		Data:  order,
	})
}

func (h *Hub) sendTo(customerUUID string, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.WithError(err).Error("Error marshaling feed message")
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	queued := 0
	for _, c := range h.clients {
		if c.customerUUID != customerUUID {
			continue
		}
		select {
		case c.send <- data:
			queued++
		default:
			h.removeLocked(c)
			h.log.WithField("customer_id", customerUUID).Warn("Feed client too slow, dropped")
		}
	}

	h.log.WithFields(logrus.Fields{
		"event":       msg.Event,
		"customer_id": customerUUID,
		"clients":     queued,
	}).Debug("Feed message queued")
}

// removeLocked forgets c and stops its writer. The caller holds h.mutex.
func (h *Hub) removeLocked(c *client) bool {
	if h.clients[c.conn] != c {
		return false
	}
	delete(h.clients, c.conn)
	if c.expiry != nil {
		c.expiry.Stop()
	}
	close(c.send)
	h.metrics.FeedClientDisconnected()
	return true
}

// writePump is the only writer on c.conn. It closes the socket once c.send is
// closed or a write misses its deadline.
func (h *Hub) writePump(c *client) {
	defer c.conn.Close()

	for data := range c.send {
		_ = c.conn.SetWriteDeadline(h.now().Add(h.writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.WithError(err).WithField("customer_id", c.customerUUID).Warn("Error sending feed message")
			h.mutex.Lock()
			h.removeLocked(c)
			h.mutex.Unlock()
			return
		}
	}

	_ = c.conn.SetWriteDeadline(h.now().Add(h.writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "session ended"))
}
