package memory

import (
	"context"
	"testing"
	"time"

	"auction-engine/internal/domain"

	"github.com/shopspring/decimal"
)

func TestListBidsForItemOrdering(t *testing.T) {
	repo := NewBidRepository()
	ctx := context.Background()
	now := time.Now()

	amounts := []string{"60", "100", "80", "80"}
	for i, a := range amounts {
		amount, _ := decimal.NewFromString(a)
		_, err := repo.SaveBid(ctx, &domain.Bid{
			ID:       string(rune('a' + i)),
			ItemID:   "item-1",
			BidderID: "u1",
			Amount:   amount,
			BidTime:  now.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("save bid: %v", err)
		}
	}

	bids, err := repo.ListBidsForItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("list bids: %v", err)
	}

	var got []string
	for _, b := range bids {
		got = append(got, b.Amount.String())
	}
	want := []string{"100", "80", "80", "60"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ordering = %v, want %v", got, want)
		}
	}

	// Equal amounts keep insertion order.
	if bids[1].ID != "c" || bids[2].ID != "d" {
		t.Errorf("tie order = [%s %s], want [c d]", bids[1].ID, bids[2].ID)
	}
}

func TestListBidsForItemIsolation(t *testing.T) {
	repo := NewBidRepository()
	ctx := context.Background()

	amount := decimal.NewFromInt(10)
	repo.SaveBid(ctx, &domain.Bid{ID: "a", ItemID: "item-1", Amount: amount})

	bids, _ := repo.ListBidsForItem(ctx, "item-1")
	bids[0].BidderID = "tampered"

	again, _ := repo.ListBidsForItem(ctx, "item-1")
	if again[0].BidderID == "tampered" {
		t.Error("listing returned shared bid instances")
	}

	if other, _ := repo.ListBidsForItem(ctx, "item-2"); len(other) != 0 {
		t.Errorf("unrelated item has %d bids", len(other))
	}
}
