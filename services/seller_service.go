package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/repository"
)

// Demo figures the dashboard shows for engagement metrics the in-memory
// stores cannot derive.
const (
	demoTotalEarnings  = 3420
	demoTotalViews     = 1567
	demoSalesThisMonth = 8
	demoResponseRate   = 95
)

// SellerService computes the seller dashboard overview.
type SellerService interface {
	Stats(ctx context.Context, seller *models.User) (*models.SellerStats, *ServiceError)
}

type sellerServiceImpl struct {
	catalog repository.CatalogRepository
	logger  *zap.Logger
}

func NewSellerService(catalog repository.CatalogRepository, logger *zap.Logger) SellerService {
	return &sellerServiceImpl{catalog: catalog, logger: logger}
}

func (s *sellerServiceImpl) Stats(ctx context.Context, seller *models.User) (*models.SellerStats, *ServiceError) {
	listings, err := s.catalog.FindBySellerID(ctx, seller.ID)
	if err != nil {
		s.logger.Error("Failed to load seller listings", zap.String("seller_id", seller.ID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load seller stats"}
	}

	return &models.SellerStats{
		ActiveListings: len(listings),
		TotalEarnings:  demoTotalEarnings,
		TotalViews:     demoTotalViews,
		TrustRating:    seller.TrustRating,
		SalesThisMonth: demoSalesThisMonth,
		ResponseRate:   demoResponseRate,
	}, nil
}
