package services

import (
	"context"
	"testing"
	"time"

	"auction-engine/internal/domain"
)

func TestCreateItemDefaults(t *testing.T) {
	f := newFixture()

	item := mustItem(f, CreateItemInput{
		SellerID:      "seller-1",
		Title:         "Antique clock",
		Description:   "Brass mantel clock",
		StartingPrice: decPtr("50"),
	})

	if item.AuctionType != domain.AuctionForward {
		t.Errorf("auction type = %s, want FORWARD", item.AuctionType)
	}
	if item.Status != domain.StatusActive {
		t.Errorf("status = %s, want ACTIVE", item.Status)
	}
	if item.PaymentStatus != domain.PaymentUnpaid {
		t.Errorf("payment status = %s, want UNPAID", item.PaymentStatus)
	}
	if !item.CurrentPrice.Equal(dec("50")) {
		t.Errorf("current price = %s, want 50", item.CurrentPrice)
	}
	if !item.CreatedAt.Equal(testEpoch) {
		t.Errorf("created at = %s, want %s", item.CreatedAt, testEpoch)
	}
	if item.ID == "" {
		t.Error("expected generated item ID")
	}
	if item.CurrentWinnerID != nil {
		t.Error("new item must not have a winner")
	}
}

func TestCreateItemValidation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		in   CreateItemInput
	}{
		{"missing seller", CreateItemInput{Title: "x", StartingPrice: decPtr("10")}},
		{"missing title", CreateItemInput{SellerID: "s", StartingPrice: decPtr("10")}},
		{"blank title", CreateItemInput{SellerID: "s", Title: "   ", StartingPrice: decPtr("10")}},
		{"missing starting price", CreateItemInput{SellerID: "s", Title: "x"}},
		{"negative starting price", CreateItemInput{SellerID: "s", Title: "x", StartingPrice: decPtr("-1")}},
		{"unknown auction type", CreateItemInput{SellerID: "s", Title: "x", StartingPrice: decPtr("10"), AuctionType: "ENGLISH"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.itemSvc.CreateItem(context.Background(), tt.in)
			if !domain.IsInvalid(err) {
				t.Errorf("err = %v, want invalid-request", err)
			}
		})
	}
}

func TestCreateItemNormalizesAuctionType(t *testing.T) {
	f := newFixture()

	item := mustItem(f, CreateItemInput{
		SellerID:      "seller-1",
		Title:         "Tulip bulbs",
		StartingPrice: decPtr("100"),
		MinimumPrice:  decPtr("20"),
		AuctionType:   "dutch",
	})

	if item.AuctionType != domain.AuctionDutch {
		t.Errorf("auction type = %s, want DUTCH", item.AuctionType)
	}
}

func TestGetItemNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.itemSvc.GetItem(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestEndAuctionIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	item := mustItem(f, CreateItemInput{SellerID: "s", Title: "Rug", StartingPrice: decPtr("30")})

	ended, err := f.itemSvc.EndAuction(ctx, item.ID)
	if err != nil {
		t.Fatalf("end auction: %v", err)
	}
	if ended.Status != domain.StatusEnded {
		t.Fatalf("status = %s, want ENDED", ended.Status)
	}
	if ended.CurrentWinnerID != nil {
		t.Error("forced close must not set a winner")
	}

	again, err := f.itemSvc.EndAuction(ctx, item.ID)
	if err != nil {
		t.Fatalf("second end auction: %v", err)
	}
	if again.Status != domain.StatusEnded {
		t.Errorf("status after repeat = %s, want ENDED", again.Status)
	}
}

func TestEndAuctionNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.itemSvc.EndAuction(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestSearchItems(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	mustItem(f, CreateItemInput{SellerID: "s", Title: "Antique Clock", Description: "brass", StartingPrice: decPtr("10")})
	f.clock.Advance(time.Second)
	mustItem(f, CreateItemInput{SellerID: "s", Title: "Wool rug", Description: "handmade persian", StartingPrice: decPtr("10")})

	tests := []struct {
		query string
		want  int
	}{
		{"CLOCK", 1},
		{"persian", 1},
		{"brass", 1},
		{"zzz", 0},
		{"", 2},
		{"   ", 2},
	}

	for _, tt := range tests {
		items, err := f.itemSvc.SearchItems(ctx, tt.query)
		if err != nil {
			t.Fatalf("search %q: %v", tt.query, err)
		}
		if len(items) != tt.want {
			t.Errorf("search %q returned %d items, want %d", tt.query, len(items), tt.want)
		}
	}
}

func TestListItemsByStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	active := mustItem(f, CreateItemInput{SellerID: "s1", Title: "Open", StartingPrice: decPtr("10")})
	f.clock.Advance(time.Second)
	closed := mustItem(f, CreateItemInput{SellerID: "s2", Title: "Closed", StartingPrice: decPtr("10")})
	if _, err := f.itemSvc.EndAuction(ctx, closed.ID); err != nil {
		t.Fatalf("end auction: %v", err)
	}

	activeItems, err := f.itemSvc.ListActiveItems(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(activeItems) != 1 || activeItems[0].ID != active.ID {
		t.Errorf("active listing = %v, want only %s", activeItems, active.ID)
	}

	endedItems, err := f.itemSvc.ListEndedItems(ctx)
	if err != nil {
		t.Fatalf("list ended: %v", err)
	}
	if len(endedItems) != 1 || endedItems[0].ID != closed.ID {
		t.Errorf("ended listing = %v, want only %s", endedItems, closed.ID)
	}

	bySeller, err := f.itemSvc.ListItemsBySeller(ctx, "s1")
	if err != nil {
		t.Fatalf("list by seller: %v", err)
	}
	if len(bySeller) != 1 || bySeller[0].ID != active.ID {
		t.Errorf("seller listing = %v, want only %s", bySeller, active.ID)
	}
}

// An item past its end time stays ACTIVE in listings until a mutating call
// touches it.
func TestExpiredItemStaysActiveInListings(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	mustItem(f, CreateItemInput{
		SellerID:      "s",
		Title:         "Slow seller",
		StartingPrice: decPtr("10"),
		EndTime:       timePtr(testEpoch.Add(time.Minute)),
	})
	f.clock.Advance(time.Hour)

	activeItems, err := f.itemSvc.ListActiveItems(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(activeItems) != 1 {
		t.Fatalf("expected expired-but-untouched item to remain in active listing, got %d items", len(activeItems))
	}
}
