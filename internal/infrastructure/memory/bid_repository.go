package memory

import (
	"context"
	"sort"
	"sync"

	"auction-engine/internal/domain"
)

// BidRepository is an append-only in-process bid store.
type BidRepository struct {
	mu   sync.RWMutex
	bids map[string][]*domain.Bid // itemID -> bids in insertion order
}

func NewBidRepository() *BidRepository {
	return &BidRepository{bids: make(map[string][]*domain.Bid)}
}

func (r *BidRepository) SaveBid(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *bid
	r.bids[bid.ItemID] = append(r.bids[bid.ItemID], &saved)

	result := saved
	return &result, nil
}

// ListBidsForItem orders by amount descending; ties keep insertion order.
func (r *BidRepository) ListBidsForItem(ctx context.Context, itemID string) ([]*domain.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.bids[itemID]
	result := make([]*domain.Bid, 0, len(stored))
	for _, b := range stored {
		copied := *b
		result = append(result, &copied)
	}

	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Amount.GreaterThan(result[b].Amount)
	})
	return result, nil
}
