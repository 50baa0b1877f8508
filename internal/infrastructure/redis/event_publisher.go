package redis

import (
	"context"
	"fmt"

	"auction-engine/internal/domain"

	"github.com/go-redis/redis/v8"
)

const eventChannel = "auction_events"

type EventPublisher struct {
	client *redis.Client
}

func NewEventPublisher(client *redis.Client) *EventPublisher {
	return &EventPublisher{client: client}
}

// PublishAuctionEvent emits "itemID:type:userID:amount:unixTimestamp". IDs are
// UUIDs, so the payload never contains a stray colon.
func (p *EventPublisher) PublishAuctionEvent(ctx context.Context, event *domain.AuctionEvent) error {
	payload := fmt.Sprintf("%s:%s:%s:%s:%d",
		event.ItemID, event.Type, event.UserID, event.Amount.StringFixed(2), event.Timestamp.Unix())

	return p.client.Publish(ctx, eventChannel, payload).Err()
}
