package repository

import (
	"context"
	"sync"

	"github.com/yashrajoria/remarket/models"
)

// OrderRepository defines data access for completed orders. Orders are
// immutable once created.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUserID(ctx context.Context, userID string, page, limit int) ([]models.Order, int64, error)
	FindByIDAndUserID(ctx context.Context, orderID, userID string) (*models.Order, error)
}

// InMemoryOrderRepository keeps orders newest-first per user.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string][]models.Order
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{orders: make(map[string][]models.Order)}
}

func (r *InMemoryOrderRepository) Create(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.UserID] = append([]models.Order{*order}, r.orders[order.UserID]...)
	return nil
}

// FindByUserID returns one page of the user's orders, newest first, plus the
// total count.
func (r *InMemoryOrderRepository) FindByUserID(_ context.Context, userID string, page, limit int) ([]models.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.orders[userID]
	total := int64(len(all))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= len(all) {
		return []models.Order{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}

	out := make([]models.Order, end-start)
	copy(out, all[start:end])
	return out, total, nil
}

func (r *InMemoryOrderRepository) FindByIDAndUserID(_ context.Context, orderID, userID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders[userID] {
		if o.ID == orderID {
			out := o
			return &out, nil
		}
	}
	return nil, ErrNotFound
}
