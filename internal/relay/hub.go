package relay

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is the wire format pushed to every connected client
type Event struct {
	Event string    `json:"event"`
	Data  EventData `json:"data"`
}

type EventData struct {
	FollowerID  string `json:"followerId"`
	FollowingID string `json:"followingId"`
}

// Hub fans events out to all connected clients. Delivery is best effort, at
// most once: there is no queueing beyond each client's send buffer, and a
// client that cannot keep up is disconnected.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log.With(zap.String("component", "relay")),
	}
}

// Publish implements usecase.Notifier. Events originate from committed follow
// writes, never from client frames.
func (h *Hub) Publish(event string, followerID, followingID uuid.UUID) {
	payload, err := json.Marshal(Event{
		Event: event,
		Data: EventData{
			FollowerID:  followerID.String(),
			FollowingID: followingID.String(),
		},
	})
	if err != nil {
		h.log.Error("Failed to marshal relay event", zap.Error(err), zap.String("event", event))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		// Hub is saturated; drop rather than block the request path
		h.log.Warn("Relay broadcast dropped", zap.String("event", event))
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.Info("Relay client connected", zap.Int("clients", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Info("Relay client disconnected", zap.Int("clients", len(h.clients)))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; drop it
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}
