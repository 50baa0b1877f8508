package services

import (
	"context"

	"auction-engine/internal/domain"
	"auction-engine/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidService is the forward (ascending) bid engine. Every accepted bid must
// strictly exceed the item's current price; ties lose.
type BidService struct {
	items  domain.ItemRepository
	bids   domain.BidRepository
	locks  *ItemLocks
	clock  domain.Clock
	events domain.EventPublisher
	log    logger.Logger
}

func NewBidService(
	items domain.ItemRepository,
	bids domain.BidRepository,
	locks *ItemLocks,
	clock domain.Clock,
	events domain.EventPublisher,
	log logger.Logger,
) *BidService {
	return &BidService{
		items:  items,
		bids:   bids,
		locks:  locks,
		clock:  clock,
		events: events,
		log:    log,
	}
}

// PlaceBid validates and applies an ascending bid. The bid-history append and
// the item's price/winner update happen inside the same per-item critical
// section, so concurrent bidders on one item serialize and no accepted bid is
// ever overwritten by a lower one.
func (s *BidService) PlaceBid(ctx context.Context, itemID, bidderID string, amount *decimal.Decimal) (*domain.Bid, error) {
	unlock := s.locks.Lock(itemID)
	defer unlock()

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFoundf("item not found")
	}

	if item.AuctionType != domain.AuctionForward {
		return nil, domain.Invalidf("bidding is only allowed on forward auctions")
	}
	if item.Status != domain.StatusActive {
		return nil, domain.Invalidf("auction is not active")
	}

	now := s.clock.Now()
	expired, err := expireIfPast(ctx, s.items, item, now)
	if err != nil {
		return nil, err
	}
	if expired {
		s.log.Info("Auction lazily expired on bid attempt", "item_id", item.ID)
		publishEvent(ctx, s.events, s.log, domain.EventAuctionEnded, item.ID, "", item.CurrentPrice, now)
		return nil, domain.Invalidf("auction has ended")
	}

	if bidderID == "" {
		return nil, domain.Invalidf("bidderId is required")
	}
	if amount == nil {
		return nil, domain.Invalidf("amount is required")
	}
	if amount.LessThan(item.StartingPrice) {
		return nil, domain.Invalidf("bid must be at least the starting price")
	}
	if amount.Cmp(item.CurrentPrice) <= 0 {
		return nil, domain.Invalidf("bid must be higher than current price")
	}

	bid := &domain.Bid{
		ID:       uuid.NewString(),
		ItemID:   item.ID,
		BidderID: bidderID,
		Amount:   *amount,
		BidTime:  now,
	}

	saved, err := s.bids.SaveBid(ctx, bid)
	if err != nil {
		return nil, err
	}

	item.CurrentPrice = *amount
	item.CurrentWinnerID = &bidderID
	if _, err := s.items.SaveItem(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info("Bid accepted", "item_id", item.ID, "bidder_id", bidderID, "amount", amount.StringFixed(2))
	publishEvent(ctx, s.events, s.log, domain.EventBidAccepted, item.ID, bidderID, *amount, now)
	return saved, nil
}

// ListBids returns the item's accepted bids ordered by amount descending.
func (s *BidService) ListBids(ctx context.Context, itemID string) ([]*domain.Bid, error) {
	return s.bids.ListBidsForItem(ctx, itemID)
}
