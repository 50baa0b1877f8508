package services

import (
	"context"

	"auction-engine/internal/domain"
	"auction-engine/pkg/logger"
)

// SettlementService gates payment against a concluded auction and assembles
// receipts. Payment is a trusted acknowledgment, not a verified transaction.
type SettlementService struct {
	items  domain.ItemRepository
	users  domain.UserDirectory
	locks  *ItemLocks
	clock  domain.Clock
	events domain.EventPublisher
	log    logger.Logger
}

func NewSettlementService(
	items domain.ItemRepository,
	users domain.UserDirectory,
	locks *ItemLocks,
	clock domain.Clock,
	events domain.EventPublisher,
	log logger.Logger,
) *SettlementService {
	return &SettlementService{
		items:  items,
		users:  users,
		locks:  locks,
		clock:  clock,
		events: events,
		log:    log,
	}
}

// Pay records payment by the auction winner. Paying an already-paid item is an
// idempotent no-op returning the existing receipt; the payment time does not
// move. Method and note are accepted for API compatibility and logged only.
func (s *SettlementService) Pay(ctx context.Context, itemID, payerID, method, note string) (*domain.Receipt, error) {
	unlock := s.locks.Lock(itemID)
	defer unlock()

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFoundf("item not found")
	}

	if item.Status != domain.StatusEnded {
		return nil, domain.Invalidf("auction has not ended yet")
	}
	if item.CurrentWinnerID == nil {
		return nil, domain.Invalidf("no winner for this auction")
	}
	if payerID == "" {
		return nil, domain.Invalidf("payerId is required")
	}
	if *item.CurrentWinnerID != payerID {
		return nil, domain.Invalidf("only the winning bidder can pay for this item")
	}

	if item.PaymentStatus == domain.PaymentPaid {
		return s.buildReceipt(ctx, item), nil
	}

	now := s.clock.Now()
	item.PaymentStatus = domain.PaymentPaid
	item.PaymentTime = &now

	saved, err := s.items.SaveItem(ctx, item)
	if err != nil {
		return nil, err
	}

	s.log.Info("Payment recorded", "item_id", saved.ID, "payer_id", payerID,
		"amount", saved.CurrentPrice.StringFixed(2), "method", method, "note", note)
	publishEvent(ctx, s.events, s.log, domain.EventPaymentReceived, saved.ID, payerID, saved.CurrentPrice, now)
	return s.buildReceipt(ctx, saved), nil
}

// Receipt assembles the settlement view of a concluded item.
func (s *SettlementService) Receipt(ctx context.Context, itemID string) (*domain.Receipt, error) {
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFoundf("item not found")
	}
	if item.Status != domain.StatusEnded {
		return nil, domain.Invalidf("auction has not ended yet")
	}

	return s.buildReceipt(ctx, item), nil
}

func (s *SettlementService) buildReceipt(ctx context.Context, item *domain.Item) *domain.Receipt {
	seller := s.lookupUser(ctx, item.SellerID)

	var buyer *domain.User
	if item.CurrentWinnerID != nil {
		buyer = s.lookupUser(ctx, *item.CurrentWinnerID)
	}

	return &domain.Receipt{
		ItemID:        item.ID,
		Title:         item.Title,
		AuctionType:   item.AuctionType,
		Status:        item.Status,
		FinalPrice:    item.CurrentPrice,
		CreatedAt:     item.CreatedAt,
		EndTime:       item.EndTime,
		Seller:        seller,
		Buyer:         buyer,
		PaymentStatus: item.PaymentStatus,
		PaymentTime:   item.PaymentTime,
	}
}

// lookupUser is best-effort: a directory miss or failure degrades to a nil
// party, never failing the receipt.
func (s *SettlementService) lookupUser(ctx context.Context, userID string) *domain.User {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		s.log.Warn("User directory lookup failed", "user_id", userID, "error", err)
		return nil
	}
	return user
}
