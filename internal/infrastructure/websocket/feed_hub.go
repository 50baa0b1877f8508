package websocket

import (
	"encoding/json"
	"sync"

	"auction-engine/internal/domain"
	"auction-engine/pkg/logger"

	"github.com/gorilla/websocket"
)

// FeedHub fans auction events out to WebSocket observers per item.
type FeedHub struct {
	mu    sync.RWMutex
	conns map[string]map[*websocket.Conn]struct{} // itemID -> connections
	log   logger.Logger
}

func NewFeedHub(log logger.Logger) *FeedHub {
	return &FeedHub{
		conns: make(map[string]map[*websocket.Conn]struct{}),
		log:   log,
	}
}

func (h *FeedHub) Register(itemID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[itemID] == nil {
		h.conns[itemID] = make(map[*websocket.Conn]struct{})
	}
	h.conns[itemID][conn] = struct{}{}

	h.log.Info("Feed connection registered", "item_id", itemID)
}

func (h *FeedHub) Unregister(itemID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if itemConns, exists := h.conns[itemID]; exists {
		delete(itemConns, conn)
		if len(itemConns) == 0 {
			delete(h.conns, itemID)
		}
	}

	h.log.Info("Feed connection unregistered", "item_id", itemID)
}

// HandleEvent implements domain.EventHandler: every event is broadcast to the
// observers of its item. A failed send drops that connection and moves on.
func (h *FeedHub) HandleEvent(event *domain.AuctionEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return err
	}

	h.mu.RLock()
	var targets []*websocket.Conn
	for conn := range h.conns[event.ItemID] {
		targets = append(targets, conn)
	}
	h.mu.RUnlock()

	for _, conn := range targets {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			h.log.Error("Failed to send feed message", "item_id", event.ItemID, "error", err)
			conn.Close()
			h.Unregister(event.ItemID, conn)
		}
	}
	return nil
}
