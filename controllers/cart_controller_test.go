package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yashrajoria/remarket/controllers"
	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock CartService ---

type mockCartService struct {
	getFn    func(ctx context.Context, userID string) (*models.CartSummary, *services.ServiceError)
	addFn    func(ctx context.Context, userID, productID string) (*models.CartSummary, *services.ServiceError)
	setFn    func(ctx context.Context, userID, productID string, quantity int) (*models.CartSummary, *services.ServiceError)
	removeFn func(ctx context.Context, userID, productID string) (*models.CartSummary, *services.ServiceError)
	clearFn  func(ctx context.Context, userID string) *services.ServiceError
}

func (m *mockCartService) GetCart(ctx context.Context, userID string) (*models.CartSummary, *services.ServiceError) {
	return m.getFn(ctx, userID)
}
func (m *mockCartService) AddItem(ctx context.Context, userID, productID string) (*models.CartSummary, *services.ServiceError) {
	return m.addFn(ctx, userID, productID)
}
func (m *mockCartService) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*models.CartSummary, *services.ServiceError) {
	return m.setFn(ctx, userID, productID, quantity)
}
func (m *mockCartService) RemoveItem(ctx context.Context, userID, productID string) (*models.CartSummary, *services.ServiceError) {
	return m.removeFn(ctx, userID, productID)
}
func (m *mockCartService) Clear(ctx context.Context, userID string) *services.ServiceError {
	return m.clearFn(ctx, userID)
}

// --- Helpers ---

func setupCartRouter(svc services.CartService) *gin.Engine {
	r := gin.New()
	cc := controllers.NewCartController(svc)

	r.Use(func(c *gin.Context) {
		c.Set("userID", "user-test-id")
		c.Set("role", "customer")
		c.Next()
	})

	r.GET("/cart", cc.GetCart)
	r.POST("/cart/items", cc.AddItem)
	r.PUT("/cart/items/:product_id", cc.UpdateQuantity)
	r.DELETE("/cart/items/:product_id", cc.RemoveItem)
	r.DELETE("/cart", cc.ClearCart)
	return r
}

func summaryFixture(items ...models.CartItem) *models.CartSummary {
	subtotal := 0
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}
	gst := float64(subtotal) * 0.18
	return &models.CartSummary{
		Cart:     &models.Cart{UserID: "user-test-id", Items: items},
		Subtotal: subtotal,
		GST:      gst,
		Total:    float64(subtotal) + gst,
	}
}

// --- Tests ---

func TestController_GetCart_Success(t *testing.T) {
	svc := &mockCartService{
		getFn: func(_ context.Context, userID string) (*models.CartSummary, *services.ServiceError) {
			assert.Equal(t, "user-test-id", userID)
			return summaryFixture(models.CartItem{ProductID: "p1", Price: 12500, Quantity: 1}), nil
		},
	}
	r := setupCartRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body models.CartSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 12500, body.Subtotal)
	assert.Equal(t, 14750.0, body.Total)
}

func TestController_AddItem_Success(t *testing.T) {
	svc := &mockCartService{
		addFn: func(_ context.Context, _, productID string) (*models.CartSummary, *services.ServiceError) {
			assert.Equal(t, "p1", productID)
			return summaryFixture(models.CartItem{ProductID: "p1", Price: 12500, Quantity: 1}), nil
		},
	}
	r := setupCartRouter(svc)

	payload, _ := json.Marshal(models.AddItemRequest{ProductID: "p1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_AddItem_MissingProductID(t *testing.T) {
	r := setupCartRouter(&mockCartService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_AddItem_ProductNotFound(t *testing.T) {
	svc := &mockCartService{
		addFn: func(_ context.Context, _, _ string) (*models.CartSummary, *services.ServiceError) {
			return nil, &services.ServiceError{StatusCode: 404, Message: "Product not found"}
		},
	}
	r := setupCartRouter(svc)

	payload, _ := json.Marshal(models.AddItemRequest{ProductID: "nope"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestController_UpdateQuantity_ZeroIsValid(t *testing.T) {
	var gotQuantity int
	svc := &mockCartService{
		setFn: func(_ context.Context, _, productID string, quantity int) (*models.CartSummary, *services.ServiceError) {
			gotQuantity = quantity
			assert.Equal(t, "p1", productID)
			return summaryFixture(), nil
		},
	}
	r := setupCartRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/cart/items/p1", bytes.NewReader([]byte(`{"quantity":0}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, gotQuantity, "Zero passes through to the service, which removes the line")
}

func TestController_UpdateQuantity_MissingQuantityRejected(t *testing.T) {
	r := setupCartRouter(&mockCartService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/cart/items/p1", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_ClearCart_Success(t *testing.T) {
	cleared := false
	svc := &mockCartService{
		clearFn: func(_ context.Context, _ string) *services.ServiceError {
			cleared = true
			return nil
		},
	}
	r := setupCartRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, cleared)
}

func TestController_GetCart_Unauthenticated(t *testing.T) {
	r := gin.New()
	cc := controllers.NewCartController(&mockCartService{})
	r.GET("/cart", cc.GetCart)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
