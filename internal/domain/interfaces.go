package domain

import (
	"context"
)

// Repository interfaces

// ItemRepository is a pure state container for items. Get returns (nil, nil)
// when the item does not exist; SaveItem is an idempotent upsert keyed by ID.
type ItemRepository interface {
	SaveItem(ctx context.Context, item *Item) (*Item, error)
	GetItem(ctx context.Context, itemID string) (*Item, error)
	ListItems(ctx context.Context) ([]*Item, error)
	ListItemsByStatus(ctx context.Context, status ItemStatus) ([]*Item, error)
	ListItemsBySeller(ctx context.Context, sellerID string) ([]*Item, error)
	SearchItems(ctx context.Context, query string) ([]*Item, error)
}

// BidRepository stores accepted bids. ListBidsForItem orders by amount
// descending, ties by insertion order.
type BidRepository interface {
	SaveBid(ctx context.Context, bid *Bid) (*Bid, error)
	ListBidsForItem(ctx context.Context, itemID string) ([]*Bid, error)
}

// UserDirectory is the read-only upstream identity store. GetUser returns
// (nil, nil) when the user is unknown.
type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (*User, error)
}

// Event interfaces
type EventPublisher interface {
	PublishAuctionEvent(ctx context.Context, event *AuctionEvent) error
}

type EventHandler func(event *AuctionEvent) error

type EventSubscriber interface {
	SubscribeToAuctionEvents(ctx context.Context, handler EventHandler) error
}
