package services

import (
	"context"
	"strings"
	"time"

	"auction-engine/internal/domain"
	"auction-engine/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemService owns the item ledger: creation, queries and forced termination.
type ItemService struct {
	items  domain.ItemRepository
	locks  *ItemLocks
	clock  domain.Clock
	events domain.EventPublisher
	log    logger.Logger
}

func NewItemService(
	items domain.ItemRepository,
	locks *ItemLocks,
	clock domain.Clock,
	events domain.EventPublisher,
	log logger.Logger,
) *ItemService {
	return &ItemService{
		items:  items,
		locks:  locks,
		clock:  clock,
		events: events,
		log:    log,
	}
}

type CreateItemInput struct {
	SellerID      string
	Title         string
	Description   string
	StartingPrice *decimal.Decimal
	MinimumPrice  *decimal.Decimal
	AuctionType   string
	EndTime       *time.Time
}

func (s *ItemService) CreateItem(ctx context.Context, in CreateItemInput) (*domain.Item, error) {
	if in.SellerID == "" {
		return nil, domain.Invalidf("sellerId is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.Invalidf("title is required")
	}
	if in.StartingPrice == nil {
		return nil, domain.Invalidf("startingPrice is required")
	}
	if in.StartingPrice.IsNegative() {
		return nil, domain.Invalidf("startingPrice must not be negative")
	}

	auctionType, err := domain.ParseAuctionType(in.AuctionType)
	if err != nil {
		return nil, err
	}

	item := &domain.Item{
		ID:            uuid.NewString(),
		SellerID:      in.SellerID,
		Title:         in.Title,
		Description:   in.Description,
		StartingPrice: *in.StartingPrice,
		CurrentPrice:  *in.StartingPrice,
		MinimumPrice:  in.MinimumPrice,
		AuctionType:   auctionType,
		Status:        domain.StatusActive,
		CreatedAt:     s.clock.Now(),
		EndTime:       in.EndTime,
		PaymentStatus: domain.PaymentUnpaid,
	}

	saved, err := s.items.SaveItem(ctx, item)
	if err != nil {
		return nil, err
	}

	s.log.Info("Item created", "item_id", saved.ID, "seller_id", saved.SellerID, "auction_type", saved.AuctionType.String())
	return saved, nil
}

func (s *ItemService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	return s.items.ListItems(ctx)
}

func (s *ItemService) ListActiveItems(ctx context.Context) ([]*domain.Item, error) {
	return s.items.ListItemsByStatus(ctx, domain.StatusActive)
}

func (s *ItemService) ListEndedItems(ctx context.Context) ([]*domain.Item, error) {
	return s.items.ListItemsByStatus(ctx, domain.StatusEnded)
}

func (s *ItemService) ListItemsBySeller(ctx context.Context, sellerID string) ([]*domain.Item, error) {
	return s.items.ListItemsBySeller(ctx, sellerID)
}

// SearchItems matches title or description case-insensitively, substring
// semantics. A blank query lists everything.
func (s *ItemService) SearchItems(ctx context.Context, query string) ([]*domain.Item, error) {
	if strings.TrimSpace(query) == "" {
		return s.items.ListItems(ctx)
	}
	return s.items.SearchItems(ctx, query)
}

func (s *ItemService) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFoundf("item not found")
	}
	return item, nil
}

// EndAuction is an idempotent forced close. It never sets a winner.
func (s *ItemService) EndAuction(ctx context.Context, itemID string) (*domain.Item, error) {
	unlock := s.locks.Lock(itemID)
	defer unlock()

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFoundf("item not found")
	}
	if item.Status == domain.StatusEnded {
		return item, nil
	}

	item.Status = domain.StatusEnded
	saved, err := s.items.SaveItem(ctx, item)
	if err != nil {
		return nil, err
	}

	s.log.Info("Auction ended", "item_id", saved.ID)
	publishEvent(ctx, s.events, s.log, domain.EventAuctionEnded, saved.ID, "", saved.CurrentPrice, s.clock.Now())
	return saved, nil
}
