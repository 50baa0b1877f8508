package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AuctionType string

const (
	AuctionForward AuctionType = "FORWARD"
	AuctionDutch   AuctionType = "DUTCH"
)

// ParseAuctionType normalizes and validates an auction type supplied at the
// boundary. An empty value defaults to FORWARD.
func ParseAuctionType(s string) (AuctionType, error) {
	if s == "" {
		return AuctionForward, nil
	}
	switch t := AuctionType(strings.ToUpper(s)); t {
	case AuctionForward, AuctionDutch:
		return t, nil
	default:
		return "", Invalidf("unknown auction type: %s", s)
	}
}

func (t AuctionType) String() string {
	return string(t)
}

type ItemStatus string

const (
	StatusActive ItemStatus = "ACTIVE"
	StatusEnded  ItemStatus = "ENDED"
)

func ParseItemStatus(s string) (ItemStatus, error) {
	switch st := ItemStatus(strings.ToUpper(s)); st {
	case StatusActive, StatusEnded:
		return st, nil
	default:
		return "", Invalidf("unknown item status: %s", s)
	}
}

func (s ItemStatus) String() string {
	return string(s)
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch ps := PaymentStatus(strings.ToUpper(s)); ps {
	case PaymentUnpaid, PaymentPaid:
		return ps, nil
	default:
		return "", Invalidf("unknown payment status: %s", s)
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

// Item is an auctioned listing. CreatedAt is set once at creation and never
// changes; for Dutch items CurrentPrice is only rewritten at acceptance.
type Item struct {
	ID              string
	SellerID        string
	Title           string
	Description     string
	StartingPrice   decimal.Decimal
	CurrentPrice    decimal.Decimal
	MinimumPrice    *decimal.Decimal // Dutch floor, absent for forward items
	AuctionType     AuctionType
	Status          ItemStatus
	CurrentWinnerID *string
	CreatedAt       time.Time
	EndTime         *time.Time
	PaymentStatus   PaymentStatus
	PaymentTime     *time.Time
}

// Clone returns a deep copy so repository callers can mutate freely.
func (i *Item) Clone() *Item {
	c := *i
	if i.MinimumPrice != nil {
		m := *i.MinimumPrice
		c.MinimumPrice = &m
	}
	if i.CurrentWinnerID != nil {
		w := *i.CurrentWinnerID
		c.CurrentWinnerID = &w
	}
	if i.EndTime != nil {
		t := *i.EndTime
		c.EndTime = &t
	}
	if i.PaymentTime != nil {
		t := *i.PaymentTime
		c.PaymentTime = &t
	}
	return &c
}

// Bid is an accepted forward-auction offer. Bids are append-only.
type Bid struct {
	ID       string
	ItemID   string
	BidderID string
	Amount   decimal.Decimal
	BidTime  time.Time
}

// User holds display data from the external user directory.
type User struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// Receipt is a derived projection of a concluded item. Seller or Buyer may be
// nil when the directory lookup misses.
type Receipt struct {
	ItemID        string
	Title         string
	AuctionType   AuctionType
	Status        ItemStatus
	FinalPrice    decimal.Decimal
	CreatedAt     time.Time
	EndTime       *time.Time
	Seller        *User
	Buyer         *User
	PaymentStatus PaymentStatus
	PaymentTime   *time.Time
}

type AuctionEvent struct {
	Type      AuctionEventType `json:"type"`
	ItemID    string           `json:"item_id"`
	UserID    string           `json:"user_id"`
	Amount    decimal.Decimal  `json:"amount"`
	Timestamp time.Time        `json:"timestamp"`
}

type AuctionEventType string

const (
	EventBidAccepted     AuctionEventType = "bid_accepted"
	EventDutchAccepted   AuctionEventType = "dutch_accepted"
	EventAuctionEnded    AuctionEventType = "auction_ended"
	EventPaymentReceived AuctionEventType = "payment_received"
)

func (e *AuctionEvent) String() string {
	return fmt.Sprintf("%s item=%s user=%s amount=%s", e.Type, e.ItemID, e.UserID, e.Amount.StringFixed(2))
}
