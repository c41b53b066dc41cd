package repository

import (
	"context"
	"sync"
	"time"

	"github.com/yashrajoria/remarket/models"
)

// CartRepository defines data access for per-user carts.
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}

// InMemoryCartRepository stores one cart per user in a mutex-guarded map.
// Carts are session state and vanish on restart.
type InMemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewInMemoryCartRepository() *InMemoryCartRepository {
	return &InMemoryCartRepository{carts: make(map[string]models.Cart)}
}

// GetCart returns the user's cart, or nil if none exists yet.
func (r *InMemoryCartRepository) GetCart(_ context.Context, userID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	out := cart
	out.Items = make([]models.CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return &out, nil
}

func (r *InMemoryCartRepository) SaveCart(_ context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart.UpdatedAt = time.Now()
	stored := *cart
	stored.Items = make([]models.CartItem, len(cart.Items))
	copy(stored.Items, cart.Items)
	r.carts[cart.UserID] = stored
	return nil
}

func (r *InMemoryCartRepository) DeleteCart(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
