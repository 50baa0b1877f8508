package services

import (
	"context"
	"time"

	"auction-engine/internal/domain"
	"auction-engine/pkg/logger"

	"github.com/shopspring/decimal"
)

// NopEventPublisher drops events. Used when no broker is configured and in
// tests.
type NopEventPublisher struct{}

func (NopEventPublisher) PublishAuctionEvent(ctx context.Context, event *domain.AuctionEvent) error {
	return nil
}

// publishEvent emits a state-change event best-effort: a broker failure is
// logged and never fails the operation that produced it.
func publishEvent(ctx context.Context, pub domain.EventPublisher, log logger.Logger,
	eventType domain.AuctionEventType, itemID, userID string, amount decimal.Decimal, ts time.Time) {
	event := &domain.AuctionEvent{
		Type:      eventType,
		ItemID:    itemID,
		UserID:    userID,
		Amount:    amount,
		Timestamp: ts,
	}
	if err := pub.PublishAuctionEvent(ctx, event); err != nil {
		log.Warn("Failed to publish auction event", "event", event.String(), "error", err)
	}
}
