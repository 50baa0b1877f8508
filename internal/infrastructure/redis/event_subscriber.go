package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"auction-engine/internal/domain"
	"auction-engine/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

type EventSubscriber struct {
	client *redis.Client
	log    logger.Logger
}

func NewEventSubscriber(client *redis.Client, log logger.Logger) *EventSubscriber {
	return &EventSubscriber{
		client: client,
		log:    log,
	}
}

func (s *EventSubscriber) SubscribeToAuctionEvents(ctx context.Context, handler domain.EventHandler) error {
	pubsub := s.client.Subscribe(ctx, eventChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	s.log.Info("Subscribed to auction events")

	for {
		select {
		case msg := <-ch:
			event, err := parseEventPayload(msg.Payload)
			if err != nil {
				s.log.Error("Failed to parse event", "payload", msg.Payload, "error", err)
				continue
			}

			if err := handler(event); err != nil {
				s.log.Error("Failed to handle event", "event", event.String(), "error", err)
			}

		case <-ctx.Done():
			s.log.Info("Event subscriber stopped")
			return ctx.Err()
		}
	}
}

// parseEventPayload reverses the publisher's "itemID:type:userID:amount:timestamp"
// encoding.
func parseEventPayload(payload string) (*domain.AuctionEvent, error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 5 {
		return nil, fmt.Errorf("invalid event format: %s", payload)
	}

	amount, err := decimal.NewFromString(parts[3])
	if err != nil {
		return nil, err
	}

	timestamp, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return nil, err
	}

	return &domain.AuctionEvent{
		ItemID:    parts[0],
		Type:      domain.AuctionEventType(parts[1]),
		UserID:    parts[2],
		Amount:    amount,
		Timestamp: time.Unix(timestamp, 0),
	}, nil
}
