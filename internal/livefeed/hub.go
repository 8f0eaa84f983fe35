package livefeed

// Central hub fanning activity entries out to websocket subscribers.
// Each connection runs in its own goroutines, but all shared state is owned
// by the hub's run loop and touched only through channels.

import (
	"context"
	"encoding/json"
	"log/slog"

	"biteengine/internal/dto"

	"github.com/redis/go-redis/v9"
)

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	feed    *Feed
	redis   *redis.Client
	channel string
	logger  *slog.Logger
}

func NewHub(redisClient *redis.Client, channel string, feed *Feed, logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		feed:       feed,
		redis:      redisClient,
		channel:    channel,
		logger:     logger,
	}
}

// Feed exposes the hub's bounded feed projection
func (h *Hub) Feed() *Feed {
	return h.feed
}

// Run owns the client set until the context is cancelled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			// New subscribers start from the current snapshot
			if snapshot, err := json.Marshal(h.feed.Entries()); err == nil {
				client.send <- snapshot
			}
			h.logger.Debug("feed client registered", "clients", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop it
					delete(h.clients, client)
					close(client.send)
				}
			}

		case <-ctx.Done():
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return
		}
	}
}

// Subscribe consumes the Redis activity channel, folds entries into the feed
// and rebroadcasts them. Runs until the context is cancelled.
func (h *Hub) Subscribe(ctx context.Context) {
	pubsub := h.redis.Subscribe(ctx, h.channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var entry dto.ActivityResponse
			if err := json.Unmarshal([]byte(msg.Payload), &entry); err != nil {
				h.logger.Warn("dropping malformed activity payload", "error", err)
				continue
			}

			h.feed.Add(entry)
			h.broadcast <- []byte(msg.Payload)

		case <-ctx.Done():
			return
		}
	}
}
