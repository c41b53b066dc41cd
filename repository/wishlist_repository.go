package repository

import (
	"context"
	"sync"

	"github.com/yashrajoria/remarket/models"
)

// WishlistRepository defines data access for per-user wishlists. A wishlist
// is an insertion-ordered set of product snapshots.
type WishlistRepository interface {
	Get(ctx context.Context, userID string) ([]models.Product, error)
	Save(ctx context.Context, userID string, items []models.Product) error
	Delete(ctx context.Context, userID string) error
}

type InMemoryWishlistRepository struct {
	mu    sync.RWMutex
	lists map[string][]models.Product
}

func NewInMemoryWishlistRepository() *InMemoryWishlistRepository {
	return &InMemoryWishlistRepository{lists: make(map[string][]models.Product)}
}

func (r *InMemoryWishlistRepository) Get(_ context.Context, userID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.lists[userID]
	out := make([]models.Product, len(items))
	copy(out, items)
	return out, nil
}

func (r *InMemoryWishlistRepository) Save(_ context.Context, userID string, items []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]models.Product, len(items))
	copy(stored, items)
	r.lists[userID] = stored
	return nil
}

func (r *InMemoryWishlistRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.lists, userID)
	return nil
}
