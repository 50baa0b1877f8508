package handlers

import (
	"net/http"
	"time"

	"auction-engine/internal/services"
	"auction-engine/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ItemHandler struct {
	itemService *services.ItemService
	log         logger.Logger
}

func NewItemHandler(itemService *services.ItemService, log logger.Logger) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		log:         log,
	}
}

type CreateItemRequest struct {
	SellerID      string           `json:"sellerId"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	StartingPrice *decimal.Decimal `json:"startingPrice"`
	MinimumPrice  *decimal.Decimal `json:"minimumPrice"`
	AuctionType   string           `json:"auctionType"`
	EndTime       *time.Time       `json:"endTime"`
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		h.log.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	item, err := h.itemService.CreateItem(c.Request().Context(), services.CreateItemInput{
		SellerID:      req.SellerID,
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		MinimumPrice:  req.MinimumPrice,
		AuctionType:   req.AuctionType,
		EndTime:       req.EndTime,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, toItemResponse(item))
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	ctx := c.Request().Context()

	if sellerID := c.QueryParam("sellerId"); sellerID != "" {
		items, err := h.itemService.ListItemsBySeller(ctx, sellerID)
		if err != nil {
			return writeError(c, h.log, err)
		}
		return c.JSON(http.StatusOK, toItemResponses(items))
	}

	items, err := h.itemService.ListItems(ctx)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

func (h *ItemHandler) ListActiveItems(c echo.Context) error {
	items, err := h.itemService.ListActiveItems(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

func (h *ItemHandler) ListEndedItems(c echo.Context) error {
	items, err := h.itemService.ListEndedItems(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

func (h *ItemHandler) SearchItems(c echo.Context) error {
	items, err := h.itemService.SearchItems(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	item, err := h.itemService.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

func (h *ItemHandler) EndAuction(c echo.Context) error {
	item, err := h.itemService.EndAuction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}
