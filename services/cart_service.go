package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/repository"
)

// CartService defines the interface for cart business logic.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*models.CartSummary, *ServiceError)
	AddItem(ctx context.Context, userID, productID string) (*models.CartSummary, *ServiceError)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) (*models.CartSummary, *ServiceError)
	RemoveItem(ctx context.Context, userID, productID string) (*models.CartSummary, *ServiceError)
	Clear(ctx context.Context, userID string) *ServiceError
}

type cartServiceImpl struct {
	repo    repository.CartRepository
	catalog repository.CatalogRepository
	logger  *zap.Logger
}

func NewCartService(repo repository.CartRepository, catalog repository.CatalogRepository, logger *zap.Logger) CartService {
	return &cartServiceImpl{repo: repo, catalog: catalog, logger: logger}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, userID string) (*models.CartSummary, *ServiceError) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to get cart"}
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}
	return summarize(cart), nil
}

// AddItem puts one unit of the product in the cart. If a line already exists
// its quantity is incremented instead of adding a duplicate line.
func (s *cartServiceImpl) AddItem(ctx context.Context, userID, productID string) (*models.CartSummary, *ServiceError) {
	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}

	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to get cart"}
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:  product.ID,
			Title:      product.Title,
			Price:      product.Price,
			ImageURL:   product.ImageURL,
			Condition:  product.Condition,
			SellerID:   product.SellerID,
			SellerName: product.SellerName,
			Quantity:   1,
		})
	}

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save cart"}
	}
	return summarize(cart), nil
}

// SetQuantity sets an absolute quantity for a line. Zero removes the line;
// an absent product id leaves the cart unchanged.
func (s *cartServiceImpl) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*models.CartSummary, *ServiceError) {
	if quantity < 0 {
		return nil, NewValidationError("Quantity cannot be negative", "quantity")
	}
	if quantity == 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to get cart"}
	}
	if cart == nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Cart not found"}
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			if err := s.repo.SaveCart(ctx, cart); err != nil {
				s.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
				return nil, &ServiceError{StatusCode: 500, Message: "Failed to save cart"}
			}
			return summarize(cart), nil
		}
	}
	return summarize(cart), nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, productID string) (*models.CartSummary, *ServiceError) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to get cart"}
	}
	if cart == nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Cart not found"}
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update cart"}
	}
	return summarize(cart), nil
}

func (s *cartServiceImpl) Clear(ctx context.Context, userID string) *ServiceError {
	if err := s.repo.DeleteCart(ctx, userID); err != nil {
		s.logger.Error("Failed to clear cart", zap.String("user_id", userID), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to clear cart"}
	}
	return nil
}

func summarize(cart *models.Cart) *models.CartSummary {
	subtotal, gst, total := CartQuote(cart.Items)
	return &models.CartSummary{
		Cart:     cart,
		Subtotal: subtotal,
		GST:      gst,
		Total:    total,
	}
}
