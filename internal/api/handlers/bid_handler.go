package handlers

import (
	"net/http"

	"auction-engine/internal/services"
	"auction-engine/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type BidHandler struct {
	bidService   *services.BidService
	dutchService *services.DutchService
	log          logger.Logger
}

func NewBidHandler(bidService *services.BidService, dutchService *services.DutchService, log logger.Logger) *BidHandler {
	return &BidHandler{
		bidService:   bidService,
		dutchService: dutchService,
		log:          log,
	}
}

type PlaceBidRequest struct {
	BidderID string           `json:"bidderId"`
	Amount   *decimal.Decimal `json:"amount"`
}

func (h *BidHandler) PlaceBid(c echo.Context) error {
	var req PlaceBidRequest
	if err := c.Bind(&req); err != nil {
		h.log.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	bid, err := h.bidService.PlaceBid(c.Request().Context(), c.Param("id"), req.BidderID, req.Amount)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, toBidResponse(bid))
}

func (h *BidHandler) ListBids(c echo.Context) error {
	bids, err := h.bidService.ListBids(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}

	responses := make([]BidResponse, 0, len(bids))
	for _, bid := range bids {
		responses = append(responses, toBidResponse(bid))
	}
	return c.JSON(http.StatusOK, responses)
}

func (h *BidHandler) DutchPrice(c echo.Context) error {
	price, err := h.dutchService.CurrentPrice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"price": price.StringFixed(2)})
}

type AcceptDutchRequest struct {
	BuyerID string `json:"buyerId"`
}

func (h *BidHandler) AcceptDutch(c echo.Context) error {
	var req AcceptDutchRequest
	if err := c.Bind(&req); err != nil {
		h.log.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	item, err := h.dutchService.AcceptDutch(c.Request().Context(), c.Param("id"), req.BuyerID)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toItemResponse(item))
}
