package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"banarts/internal/logger"
	"banarts/internal/metrics"
)

var ErrHubClosed = errors.New("websocket hub is closed")

// enqueueTimeout bounds how long Broadcast waits for the hub loop.
const enqueueTimeout = 5 * time.Second

// Envelope is the frame written to every client.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub fans frames out to every connected client.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

// Run serves registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			metrics.WSClients.Set(float64(count))
			logger.WSLog("client_registered", client.ID, count)

		case client := <-h.unregister:
			h.remove(client, "client_unregistered")

		case frame := <-h.broadcast:
			h.fanOut(frame)
		}
	}
}

// Broadcast encodes payload under event and queues it for every client.
func (h *Hub) Broadcast(event string, payload any) error {
	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}

	frame, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		return err
	}

	timer := time.NewTimer(enqueueTimeout)
	defer timer.Stop()

	select {
	case h.broadcast <- frame:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-timer.C:
		return errors.New("websocket hub is busy")
	}
}

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

func (h *Hub) fanOut(frame []byte) {
	h.mu.RLock()
	var slow []*Client
	for client := range h.clients {
		select {
		case client.Send <- frame:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	// a full buffer means the client stopped reading; drop it
	for _, client := range slow {
		metrics.WSDropped.Inc()
		h.remove(client, "client_dropped")
	}
}

func (h *Hub) remove(client *Client, event string) {
	h.mu.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
		close(client.Send)
	}
	count := len(h.clients)
	h.mu.Unlock()

	if ok {
		metrics.WSClients.Set(float64(count))
		logger.WSLog(event, client.ID, count)
	}
}

func (h *Hub) shutdown() {
	h.closeOnce.Do(func() {
		close(h.done)

		h.mu.Lock()
		for client := range h.clients {
			close(client.Send)
			delete(h.clients, client)
		}
		h.mu.Unlock()
		metrics.WSClients.Set(0)
	})
}

// enqueue hands a client to the hub loop; false when the hub has stopped.
func (h *Hub) enqueue(ch chan *Client, client *Client) bool {
	select {
	case ch <- client:
		return true
	case <-h.done:
		return false
	}
}
