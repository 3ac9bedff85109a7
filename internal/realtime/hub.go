package realtime

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Event is a change notification for one table scoped to one household.
// Clients re-query on receipt; the payload carries no row data.
type Event struct {
	Type        string `json:"type"`
	Table       string `json:"table"`
	Action      string `json:"action"`
	HouseholdID uint   `json:"household_id"`
	ID          uint   `json:"id,omitempty"`
}

// NewEvent creates an Event with the Type field derived from table and action.
func NewEvent(table, action string, householdID, id uint) Event {
	return Event{
		Type:        fmt.Sprintf("%s_%s", table, action),
		Table:       table,
		Action:      action,
		HouseholdID: householdID,
		ID:          id,
	}
}

type subscription struct {
	table       string
	householdID uint
}

// Hub maintains the set of active clients and routes events to the clients
// subscribed to the event's (table, household) pair.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]map[subscription]struct{}
	log     *logrus.Logger
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]map[subscription]struct{}),
		log:     log,
	}
}

// Register adds a client with no subscriptions.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = make(map[subscription]struct{})
	h.mu.Unlock()
}

// Unregister removes a client and closes its send channel, dropping all of
// its subscriptions with it.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Subscribe starts delivering events for the given table and household to
// the client.
func (h *Hub) Subscribe(c *Client, table string, householdID uint) {
	h.mu.Lock()
	if subs, ok := h.clients[c]; ok {
		subs[subscription{table: table, householdID: householdID}] = struct{}{}
	}
	h.mu.Unlock()
}

// Unsubscribe stops delivery for the given table and household. Clients
// switching households drop their old subscriptions through this.
func (h *Hub) Unsubscribe(c *Client, table string, householdID uint) {
	h.mu.Lock()
	if subs, ok := h.clients[c]; ok {
		delete(subs, subscription{table: table, householdID: householdID})
	}
	h.mu.Unlock()
}

// Broadcast delivers the event to every client subscribed to its table and
// household.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.WithFields(logrus.Fields{"error": err.Error()}).Error("marshal broadcast")
		return
	}
	key := subscription{table: event.Table, householdID: event.HouseholdID}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c, subs := range h.clients {
		if _, ok := subs[key]; !ok {
			continue
		}
		select {
		case c.send <- data:
		default:
			// Client buffer full; drop rather than block the hub
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
