package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"auction-engine/internal/domain"
)

// ItemRepository is an in-process item store. Backs the memory storage mode
// and the engine tests.
type ItemRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Item
	order []string // insertion order for stable listings
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[string]*domain.Item)}
}

func (r *ItemRepository) SaveItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = item.Clone()
	return item.Clone(), nil
}

func (r *ItemRepository) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, nil
	}
	return item.Clone(), nil
}

func (r *ItemRepository) ListItems(ctx context.Context) ([]*domain.Item, error) {
	return r.listWhere(func(*domain.Item) bool { return true }), nil
}

func (r *ItemRepository) ListItemsByStatus(ctx context.Context, status domain.ItemStatus) ([]*domain.Item, error) {
	return r.listWhere(func(i *domain.Item) bool { return i.Status == status }), nil
}

func (r *ItemRepository) ListItemsBySeller(ctx context.Context, sellerID string) ([]*domain.Item, error) {
	return r.listWhere(func(i *domain.Item) bool { return i.SellerID == sellerID }), nil
}

func (r *ItemRepository) SearchItems(ctx context.Context, query string) ([]*domain.Item, error) {
	q := strings.ToLower(query)
	return r.listWhere(func(i *domain.Item) bool {
		return strings.Contains(strings.ToLower(i.Title), q) ||
			strings.Contains(strings.ToLower(i.Description), q)
	}), nil
}

func (r *ItemRepository) listWhere(match func(*domain.Item) bool) []*domain.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Item
	for _, id := range r.order {
		if item := r.items[id]; match(item) {
			result = append(result, item.Clone())
		}
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].CreatedAt.Before(result[b].CreatedAt)
	})
	return result
}
