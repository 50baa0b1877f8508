package services

import (
	"context"
	"sync"
	"time"

	"auction-engine/internal/domain"
	"auction-engine/internal/infrastructure/memory"
	"auction-engine/pkg/logger"

	"github.com/shopspring/decimal"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

var testEpoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type engineFixture struct {
	clock      *fakeClock
	items      *memory.ItemRepository
	bids       *memory.BidRepository
	users      *memory.UserDirectory
	itemSvc    *ItemService
	bidSvc     *BidService
	dutchSvc   *DutchService
	settlement *SettlementService
}

func newFixture() *engineFixture {
	clock := newFakeClock(testEpoch)
	items := memory.NewItemRepository()
	bids := memory.NewBidRepository()
	users := memory.NewUserDirectory()
	locks := NewItemLocks()
	log := logger.NewNop()
	events := NopEventPublisher{}

	return &engineFixture{
		clock:      clock,
		items:      items,
		bids:       bids,
		users:      users,
		itemSvc:    NewItemService(items, locks, clock, events, log),
		bidSvc:     NewBidService(items, bids, locks, clock, events, log),
		dutchSvc:   NewDutchService(items, locks, clock, events, log),
		settlement: NewSettlementService(items, users, locks, clock, events, log),
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func mustItem(f *engineFixture, in CreateItemInput) *domain.Item {
	item, err := f.itemSvc.CreateItem(context.Background(), in)
	if err != nil {
		panic(err)
	}
	return item
}
