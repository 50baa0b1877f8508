package memory

import (
	"context"
	"sync"

	"auction-engine/internal/domain"
)

// UserDirectory is an in-process stand-in for the upstream identity service.
type UserDirectory struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserDirectory() *UserDirectory {
	return &UserDirectory{users: make(map[string]*domain.User)}
}

// AddUser seeds a directory entry.
func (d *UserDirectory) AddUser(user *domain.User) {
	d.mu.Lock()
	defer d.mu.Unlock()

	copied := *user
	d.users[user.ID] = &copied
}

func (d *UserDirectory) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}
