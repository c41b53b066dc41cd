package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/repository"
)

// CatalogService defines the interface for product listing business logic.
type CatalogService interface {
	ListProducts(ctx context.Context, query string) ([]models.Product, *ServiceError)
	GetProduct(ctx context.Context, id string) (*models.Product, *ServiceError)
	CreateProduct(ctx context.Context, seller *models.User, req *models.CreateProductRequest) (*models.Product, *ServiceError)
	SellerListings(ctx context.Context, sellerID string) ([]models.Product, *ServiceError)
	Close()
}

type catalogServiceImpl struct {
	repo          repository.CatalogRepository
	logger        *zap.Logger
	newListingTTL time.Duration
	listingDelay  time.Duration

	// lifecycle for the new-listing expiry timers; Close cancels any that
	// have not fired yet.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCatalogService creates a CatalogService. newListingTTL is how long a
// fresh listing keeps its "new" badge; listingDelay simulates the submission
// round trip.
func NewCatalogService(repo repository.CatalogRepository, logger *zap.Logger, newListingTTL, listingDelay time.Duration) CatalogService {
	ctx, cancel := context.WithCancel(context.Background())
	return &catalogServiceImpl{
		repo:          repo,
		logger:        logger,
		newListingTTL: newListingTTL,
		listingDelay:  listingDelay,
		ctx:           ctx,
		cancel:        cancel,
	}
}

// ListProducts returns the catalog filtered by the query. A blank query
// returns everything in insertion order.
func (s *catalogServiceImpl) ListProducts(ctx context.Context, query string) ([]models.Product, *ServiceError) {
	products, err := s.repo.Search(ctx, query)
	if err != nil {
		s.logger.Error("Failed to search catalog", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list products"}
	}
	return products, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id string) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to fetch product", zap.String("product_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch product"}
	}
	return product, nil
}

// CreateProduct lists a new item for the seller. The listing carries a "new"
// badge that expires after the configured TTL.
func (s *catalogServiceImpl) CreateProduct(ctx context.Context, seller *models.User, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	simulateLatency(ctx, s.listingDelay)

	product := &models.Product{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		ImageURL:      req.ImageURL,
		Location:      req.Location,
		Condition:     req.Condition,
		Description:   req.Description,
		SellerID:      seller.ID,
		SellerName:    seller.Name,
		SellerRating:  seller.TrustRating,
		IsNewListing:  true,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		s.logger.Error("Failed to insert product", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create listing"}
	}

	s.scheduleNewListingExpiry(product.ID)

	s.logger.Info("Product listed",
		zap.String("product_id", product.ID),
		zap.String("seller_id", seller.ID),
		zap.Int("price", product.Price),
	)
	return product, nil
}

func (s *catalogServiceImpl) SellerListings(ctx context.Context, sellerID string) ([]models.Product, *ServiceError) {
	products, err := s.repo.FindBySellerID(ctx, sellerID)
	if err != nil {
		s.logger.Error("Failed to fetch seller listings", zap.String("seller_id", sellerID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch listings"}
	}
	return products, nil
}

// scheduleNewListingExpiry clears the new-listing badge after the TTL. The
// timer is tied to the service lifetime and is cancelled by Close.
func (s *catalogServiceImpl) scheduleNewListingExpiry(productID string) {
	if s.newListingTTL <= 0 {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		t := time.NewTimer(s.newListingTTL)
		defer t.Stop()
		select {
		case <-t.C:
			if err := s.repo.ClearNewListingFlag(context.Background(), productID); err != nil {
				s.logger.Warn("Failed to clear new-listing flag", zap.String("product_id", productID), zap.Error(err))
			}
		case <-s.ctx.Done():
		}
	}()
}

// Close cancels pending new-listing timers and waits for them to stop.
func (s *catalogServiceImpl) Close() {
	s.cancel()
	s.wg.Wait()
}
