package services

import (
	"context"
	"time"

	"auction-engine/internal/domain"
	"auction-engine/pkg/logger"

	"github.com/shopspring/decimal"
)

// DutchService is the descending-price engine. The displayed price is a pure
// function of elapsed time between listing and scheduled end; the stored price
// is only written once, at acceptance.
type DutchService struct {
	items  domain.ItemRepository
	locks  *ItemLocks
	clock  domain.Clock
	events domain.EventPublisher
	log    logger.Logger
}

func NewDutchService(
	items domain.ItemRepository,
	locks *ItemLocks,
	clock domain.Clock,
	events domain.EventPublisher,
	log logger.Logger,
) *DutchService {
	return &DutchService{
		items:  items,
		locks:  locks,
		clock:  clock,
		events: events,
		log:    log,
	}
}

// CurrentPrice returns the time-derived price of a Dutch item. It is a pure
// read: identical (item, now) always yields the identical price and nothing is
// persisted, so it takes no lock and never triggers expiry.
func (s *DutchService) CurrentPrice(ctx context.Context, itemID string) (decimal.Decimal, error) {
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return decimal.Zero, err
	}
	if item == nil {
		return decimal.Zero, domain.NotFoundf("item not found")
	}
	if item.AuctionType != domain.AuctionDutch {
		return decimal.Zero, domain.Invalidf("not a dutch auction")
	}

	return dutchPriceAt(item, s.clock.Now()), nil
}

// dutchPriceAt linearly interpolates the price between starting price and
// minimum price over the item's scheduled lifetime, rounded to two fractional
// digits and clamped so rounding can never dip below the floor.
func dutchPriceAt(item *domain.Item, now time.Time) decimal.Decimal {
	// Decay is undefined without both anchors.
	if item.CreatedAt.IsZero() || item.EndTime == nil {
		return item.CurrentPrice
	}

	start := item.StartingPrice
	min := decimal.Zero
	if item.MinimumPrice != nil {
		min = *item.MinimumPrice
	}

	total := item.EndTime.Sub(item.CreatedAt)
	elapsed := now.Sub(item.CreatedAt)

	if elapsed < 0 {
		return start
	}
	if elapsed >= total {
		return min
	}

	// Nanosecond precision: a coarser unit could truncate a short window to a
	// zero divisor while 0 <= elapsed < total still holds.
	fraction := decimal.NewFromInt(elapsed.Nanoseconds()).Div(decimal.NewFromInt(total.Nanoseconds()))
	price := start.Sub(start.Sub(min).Mul(fraction)).Round(2)
	if price.LessThan(min) {
		price = min
	}
	return price
}

// AcceptDutch commits the first acceptance: the caller buys at the price the
// clock dictates right now. First come, first served; the per-item lock makes
// the observe-and-commit sequence atomic so exactly one acceptance wins.
func (s *DutchService) AcceptDutch(ctx context.Context, itemID, buyerID string) (*domain.Item, error) {
	unlock := s.locks.Lock(itemID)
	defer unlock()

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFoundf("item not found")
	}

	if item.AuctionType != domain.AuctionDutch {
		return nil, domain.Invalidf("not a dutch auction")
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
		s.log.Info("Auction lazily expired on acceptance attempt", "item_id", item.ID)
		publishEvent(ctx, s.events, s.log, domain.EventAuctionEnded, item.ID, "", item.CurrentPrice, now)
		return nil, domain.Invalidf("auction has ended")
	}

	if buyerID == "" {
		return nil, domain.Invalidf("buyerId is required")
	}

	price := dutchPriceAt(item, now)

	item.CurrentPrice = price
	item.Status = domain.StatusEnded
	item.CurrentWinnerID = &buyerID

	saved, err := s.items.SaveItem(ctx, item)
	if err != nil {
		return nil, err
	}

	s.log.Info("Dutch auction accepted", "item_id", saved.ID, "buyer_id", buyerID, "price", price.StringFixed(2))
	publishEvent(ctx, s.events, s.log, domain.EventDutchAccepted, saved.ID, buyerID, price, now)
	return saved, nil
}
