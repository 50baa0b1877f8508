package websocket

import (
	"net/http"

	"auction-engine/internal/domain"
	"auction-engine/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// FeedHandler upgrades observers onto an item's live event feed.
type FeedHandler struct {
	items domain.ItemRepository
	hub   *FeedHub
	log   logger.Logger
}

func NewFeedHandler(items domain.ItemRepository, hub *FeedHub, log logger.Logger) *FeedHandler {
	return &FeedHandler{
		items: items,
		hub:   hub,
		log:   log,
	}
}

func (h *FeedHandler) Serve(c echo.Context) error {
	itemID := c.Param("id")

	item, err := h.items.GetItem(c.Request().Context(), itemID)
	if err != nil {
		h.log.Error("Failed to resolve item for feed", "item_id", itemID, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to resolve item"})
	}
	if item == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "item not found"})
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Error("Failed to upgrade connection", "item_id", itemID, "error", err)
		return nil
	}

	h.hub.Register(itemID, conn)
	go h.drain(itemID, conn)
	return nil
}

// drain consumes client frames until the peer disconnects; the feed is
// one-way, so inbound payloads are discarded.
func (h *FeedHandler) drain(itemID string, conn *websocket.Conn) {
	defer func() {
		h.hub.Unregister(itemID, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
