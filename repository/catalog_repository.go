package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/yashrajoria/remarket/models"
)

// ErrNotFound is returned when a record does not exist in a store.
var ErrNotFound = errors.New("record not found")

// CatalogRepository defines data access for product listings.
type CatalogRepository interface {
	Search(ctx context.Context, query string) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindBySellerID(ctx context.Context, sellerID string) ([]models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	ClearNewListingFlag(ctx context.Context, id string) error
}

// InMemoryCatalogRepository holds the catalog as an ordered slice guarded by
// a RWMutex. New listings are prepended; existing order is otherwise stable.
type InMemoryCatalogRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryCatalogRepository creates a catalog seeded with the given
// products.
func NewInMemoryCatalogRepository(seed []models.Product) *InMemoryCatalogRepository {
	products := make([]models.Product, len(seed))
	copy(products, seed)
	return &InMemoryCatalogRepository{products: products}
}

// Search returns products whose title, condition, or location contains the
// query, case-insensitively. A blank query matches everything.
func (r *InMemoryCatalogRepository) Search(_ context.Context, query string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Product{}
	for _, p := range r.products {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Condition), q) ||
			strings.Contains(strings.ToLower(p.Location), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryCatalogRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryCatalogRepository) FindBySellerID(_ context.Context, sellerID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Product{}
	for _, p := range r.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Insert prepends the product so new listings surface first.
func (r *InMemoryCatalogRepository) Insert(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append([]models.Product{*product}, r.products...)
	return nil
}

func (r *InMemoryCatalogRepository) ClearNewListingFlag(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].IsNewListing = false
			return nil
		}
	}
	return ErrNotFound
}
