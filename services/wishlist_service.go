package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/repository"
)

// ToggleResult reports whether a toggle added or removed the product.
type ToggleResult struct {
	Added bool             `json:"added"`
	Items []models.Product `json:"items"`
}

// WishlistService defines the interface for wishlist business logic. The
// wishlist is a set: toggling a present product removes it, toggling an
// absent one adds a snapshot of it.
type WishlistService interface {
	List(ctx context.Context, userID string) ([]models.Product, *ServiceError)
	Toggle(ctx context.Context, userID, productID string) (*ToggleResult, *ServiceError)
	Remove(ctx context.Context, userID, productID string) ([]models.Product, *ServiceError)
}

type wishlistServiceImpl struct {
	repo    repository.WishlistRepository
	catalog repository.CatalogRepository
	logger  *zap.Logger
}

func NewWishlistService(repo repository.WishlistRepository, catalog repository.CatalogRepository, logger *zap.Logger) WishlistService {
	return &wishlistServiceImpl{repo: repo, catalog: catalog, logger: logger}
}

func (s *wishlistServiceImpl) List(ctx context.Context, userID string) ([]models.Product, *ServiceError) {
	items, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get wishlist", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to get wishlist"}
	}
	return items, nil
}

func (s *wishlistServiceImpl) Toggle(ctx context.Context, userID, productID string) (*ToggleResult, *ServiceError) {
	items, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get wishlist", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to get wishlist"}
	}

	for i, item := range items {
		if item.ID == productID {
			items = append(items[:i], items[i+1:]...)
			if err := s.repo.Save(ctx, userID, items); err != nil {
				s.logger.Error("Failed to save wishlist", zap.String("user_id", userID), zap.Error(err))
				return nil, &ServiceError{StatusCode: 500, Message: "Failed to update wishlist"}
			}
			return &ToggleResult{Added: false, Items: items}, nil
		}
	}

	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}

	items = append(items, *product)
	if err := s.repo.Save(ctx, userID, items); err != nil {
		s.logger.Error("Failed to save wishlist", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update wishlist"}
	}
	return &ToggleResult{Added: true, Items: items}, nil
}

func (s *wishlistServiceImpl) Remove(ctx context.Context, userID, productID string) ([]models.Product, *ServiceError) {
	items, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get wishlist", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to get wishlist"}
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	if err := s.repo.Save(ctx, userID, kept); err != nil {
		s.logger.Error("Failed to save wishlist", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update wishlist"}
	}
	return kept, nil
}
