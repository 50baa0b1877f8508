package handlers

import (
	"net/http"

	"auction-engine/internal/services"
	"auction-engine/pkg/logger"

	"github.com/labstack/echo/v4"
)

type SettlementHandler struct {
	settlementService *services.SettlementService
	log               logger.Logger
}

func NewSettlementHandler(settlementService *services.SettlementService, log logger.Logger) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
		log:               log,
	}
}

type PaymentRequest struct {
	PayerID string `json:"payerId"`
	Method  string `json:"method"`
	Note    string `json:"note"`
}

func (h *SettlementHandler) Pay(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		h.log.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	receipt, err := h.settlementService.Pay(c.Request().Context(), c.Param("id"), req.PayerID, req.Method, req.Note)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toReceiptResponse(receipt))
}

func (h *SettlementHandler) Receipt(c echo.Context) error {
	receipt, err := h.settlementService.Receipt(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, toReceiptResponse(receipt))
}
