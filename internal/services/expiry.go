package services

import (
	"context"
	"time"

	"auction-engine/internal/domain"
)

// expireIfPast transitions an ACTIVE item whose end time has passed to ENDED
// and persists it. Expiry is discovered lazily on mutating access; there is no
// background sweeper, so an item past its end time stays ACTIVE in listings
// until a bid or acceptance attempt touches it. Callers must hold the item's
// lock.
func expireIfPast(ctx context.Context, items domain.ItemRepository, item *domain.Item, now time.Time) (bool, error) {
	if item.Status != domain.StatusActive {
		return false, nil
	}
	if item.EndTime == nil || !now.After(*item.EndTime) {
		return false, nil
	}

	item.Status = domain.StatusEnded
	if _, err := items.SaveItem(ctx, item); err != nil {
		return false, err
	}
	return true, nil
}
