package sse

import (
	"encoding/json"
	"sync"

	"github.com/yigit/alumnibridge/internal/pkg/logger"
)

// Event represents a server-sent event destined for one user
type Event struct {
	Type   string      `json:"type"`
	Data   interface{} `json:"data"`
	UserID int64       `json:"userId"`
}

// Broker manages SSE subscriber channels keyed by user id
type Broker struct {
	clients map[int64]map[chan Event]bool
	mu      sync.RWMutex
}

// NewBroker creates a new SSE broker
func NewBroker() *Broker {
	return &Broker{
		clients: make(map[int64]map[chan Event]bool),
	}
}

// Register adds a new client channel for a user
func (b *Broker) Register(userID int64, clientChan chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.clients[userID]; !ok {
		b.clients[userID] = make(map[chan Event]bool)
	}

	b.clients[userID][clientChan] = true
	logger.Debug().Int64("userID", userID).Int("clients", len(b.clients[userID])).Msg("SSE client registered")
}

// Unregister removes a client channel for a user and closes it
func (b *Broker) Unregister(userID int64, clientChan chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if userClients, ok := b.clients[userID]; ok {
		delete(userClients, clientChan)
		close(clientChan)

		if len(userClients) == 0 {
			delete(b.clients, userID)
		}

		logger.Debug().Int64("userID", userID).Int("clients", len(userClients)).Msg("SSE client unregistered")
	}
}

// Broadcast sends an event to all channels of the target user.
// Blocked channels are skipped so a slow consumer cannot stall a request.
func (b *Broker) Broadcast(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	userClients, ok := b.clients[event.UserID]
	if !ok {
		return
	}

	dataJSON, err := json.Marshal(event.Data)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to marshal SSE event data")
		return
	}

	eventCopy := Event{
		Type:   event.Type,
		Data:   json.RawMessage(dataJSON),
		UserID: event.UserID,
	}

	for clientChan := range userClients {
		select {
		case clientChan <- eventCopy:
		default:
			logger.Warn().Int64("userID", event.UserID).Msg("SSE client channel blocked, event dropped")
		}
	}
}

// ClientCount returns the number of connected channels for a user
func (b *Broker) ClientCount(userID int64) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.clients[userID])
}
