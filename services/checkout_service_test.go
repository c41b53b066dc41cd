package services_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/repository"
	"github.com/yashrajoria/remarket/services"
)

// --- Helpers ---

type checkoutFixture struct {
	svc    services.CheckoutService
	carts  repository.CartRepository
	orders repository.OrderRepository
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	carts := repository.NewInMemoryCartRepository()
	orders := repository.NewInMemoryOrderRepository()
	return &checkoutFixture{
		svc:    services.NewCheckoutService(carts, orders, testLogger(), 0),
		carts:  carts,
		orders: orders,
	}
}

func (f *checkoutFixture) fillCart(t *testing.T, userID string) {
	t.Helper()
	err := f.carts.SaveCart(context.Background(), &models.Cart{
		UserID: userID,
		Items: []models.CartItem{
			{ProductID: "p1", Title: "Bamboo Study Table", Price: 12500, Quantity: 1},
		},
	})
	assert.NoError(t, err)
}

func validDelivery() *models.DeliveryInfo {
	return &models.DeliveryInfo{
		FullName:     "Asha Rao",
		Phone:        "9876543210",
		Address:      "12 MG Road",
		City:         "Pune",
		Pincode:      "411001",
		DeliveryType: models.DeliveryStandard,
	}
}

func (f *checkoutFixture) advanceToReview(t *testing.T, userID string) {
	t.Helper()
	_, svcErr := f.svc.Begin(context.Background(), userID)
	assert.Nil(t, svcErr)
	_, svcErr = f.svc.SubmitDelivery(context.Background(), userID, validDelivery())
	assert.Nil(t, svcErr)
	_, svcErr = f.svc.SubmitPayment(context.Background(), userID, &models.PaymentDetails{Method: models.PaymentUPI, UPIID: "asha@upi"})
	assert.Nil(t, svcErr)
}

type failingCartRepo struct{}

func (failingCartRepo) GetCart(context.Context, string) (*models.Cart, error) {
	return nil, errors.New("cart store offline")
}
func (failingCartRepo) SaveCart(context.Context, *models.Cart) error {
	return errors.New("cart store offline")
}
func (failingCartRepo) DeleteCart(context.Context, string) error {
	return errors.New("cart store offline")
}

// --- Tests ---

func TestService_Begin_RequiresNonEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, svcErr := f.svc.Begin(context.Background(), "u1")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestService_Begin_CartStoreErrorIsServerError(t *testing.T) {
	svc := services.NewCheckoutService(failingCartRepo{}, repository.NewInMemoryOrderRepository(), testLogger(), 0)

	_, svcErr := svc.Begin(context.Background(), "u1")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode, "A broken store is not an empty cart")
}

func TestService_Begin_StartsAtDeliveryStep(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")

	session, svcErr := f.svc.Begin(context.Background(), "u1")
	assert.Nil(t, svcErr)
	assert.Equal(t, models.StepDelivery, session.Step)
	assert.Equal(t, models.DeliveryStandard, session.Delivery.DeliveryType)
}

func TestService_SubmitDelivery_MissingFieldStaysAtDelivery(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	_, _ = f.svc.Begin(context.Background(), "u1")

	info := validDelivery()
	info.Pincode = "  "
	_, svcErr := f.svc.SubmitDelivery(context.Background(), "u1", info)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Contains(t, svcErr.Fields, "pincode")

	session, _, svcErr := f.svc.Current(context.Background(), "u1")
	assert.Nil(t, svcErr)
	assert.Equal(t, models.StepDelivery, session.Step)
}

func TestService_SubmitDelivery_CompleteFormAdvances(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	_, _ = f.svc.Begin(context.Background(), "u1")

	session, svcErr := f.svc.SubmitDelivery(context.Background(), "u1", validDelivery())
	assert.Nil(t, svcErr)
	assert.Equal(t, models.StepPayment, session.Step)
}

func TestService_SubmitDelivery_WrongStepRejected(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	_, _ = f.svc.Begin(context.Background(), "u1")
	_, _ = f.svc.SubmitDelivery(context.Background(), "u1", validDelivery())

	_, svcErr := f.svc.SubmitDelivery(context.Background(), "u1", validDelivery())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
}

func TestService_SubmitPayment_UPIRequiresID(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	_, _ = f.svc.Begin(context.Background(), "u1")
	_, _ = f.svc.SubmitDelivery(context.Background(), "u1", validDelivery())

	_, svcErr := f.svc.SubmitPayment(context.Background(), "u1", &models.PaymentDetails{Method: models.PaymentUPI})
	assert.NotNil(t, svcErr)
	assert.Contains(t, svcErr.Fields, "upi_id")
}

func TestService_SubmitPayment_CardRequiresAllFields(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	_, _ = f.svc.Begin(context.Background(), "u1")
	_, _ = f.svc.SubmitDelivery(context.Background(), "u1", validDelivery())

	_, svcErr := f.svc.SubmitPayment(context.Background(), "u1", &models.PaymentDetails{
		Method:     models.PaymentCard,
		CardNumber: "4111111111111111",
	})
	assert.NotNil(t, svcErr)
	assert.Contains(t, svcErr.Fields, "expiry_date")
	assert.Contains(t, svcErr.Fields, "cvv")
}

func TestService_SubmitPayment_WalletNeedsNoExtras(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	_, _ = f.svc.Begin(context.Background(), "u1")
	_, _ = f.svc.SubmitDelivery(context.Background(), "u1", validDelivery())

	session, svcErr := f.svc.SubmitPayment(context.Background(), "u1", &models.PaymentDetails{Method: models.PaymentWallet})
	assert.Nil(t, svcErr)
	assert.Equal(t, models.StepReview, session.Step)
}

func TestService_Back_RetreatsOneStep(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	f.advanceToReview(t, "u1")

	session, svcErr := f.svc.Back(context.Background(), "u1")
	assert.Nil(t, svcErr)
	assert.Equal(t, models.StepPayment, session.Step)

	session, svcErr = f.svc.Back(context.Background(), "u1")
	assert.Nil(t, svcErr)
	assert.Equal(t, models.StepDelivery, session.Step)

	// Already at the first step; Back stays put.
	session, svcErr = f.svc.Back(context.Background(), "u1")
	assert.Nil(t, svcErr)
	assert.Equal(t, models.StepDelivery, session.Step)
}

func TestService_PlaceOrder_OnlyFromReview(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	_, _ = f.svc.Begin(context.Background(), "u1")

	_, svcErr := f.svc.PlaceOrder(context.Background(), "u1")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
}

func TestService_PlaceOrder_SynthesizesOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	f.advanceToReview(t, "u1")

	before := time.Now()
	order, svcErr := f.svc.PlaceOrder(context.Background(), "u1")
	assert.Nil(t, svcErr)

	assert.True(t, strings.HasPrefix(order.ID, "RM"))
	assert.Len(t, order.ID, 10)
	assert.Equal(t, 12575, order.Total)
	assert.Equal(t, models.PaymentUPI, order.PaymentMethod)
	assert.Len(t, order.Items, 1)

	wantETA := before.Add(5 * 24 * time.Hour)
	assert.WithinDuration(t, wantETA, order.EstimatedDelivery, time.Minute)
}

func TestService_PlaceOrder_ExpressShortensETA(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	_, _ = f.svc.Begin(context.Background(), "u1")
	info := validDelivery()
	info.DeliveryType = models.DeliveryExpress
	_, _ = f.svc.SubmitDelivery(context.Background(), "u1", info)
	_, _ = f.svc.SubmitPayment(context.Background(), "u1", &models.PaymentDetails{Method: models.PaymentWallet})

	order, svcErr := f.svc.PlaceOrder(context.Background(), "u1")
	assert.Nil(t, svcErr)
	assert.Equal(t, 12500+150+25, order.Total)
	assert.WithinDuration(t, time.Now().Add(2*24*time.Hour), order.EstimatedDelivery, time.Minute)
}

func TestService_PlaceOrder_ConcurrentSubmitCreatesOneOrder(t *testing.T) {
	carts := repository.NewInMemoryCartRepository()
	orders := repository.NewInMemoryOrderRepository()
	f := &checkoutFixture{
		svc:    services.NewCheckoutService(carts, orders, testLogger(), 30*time.Millisecond),
		carts:  carts,
		orders: orders,
	}
	f.fillCart(t, "u1")
	f.advanceToReview(t, "u1")

	var wg sync.WaitGroup
	results := make([]*services.ServiceError, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, svcErr := f.svc.PlaceOrder(context.Background(), "u1")
			results[i] = svcErr
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, svcErr := range results {
		if svcErr == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded, "Exactly one submit wins; the other sees no session")

	_, total, err := f.orders.FindByUserID(context.Background(), "u1", 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total, "One cart yields one order")
}

func TestService_PlaceOrder_ClearsCartAndSession(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	f.advanceToReview(t, "u1")

	order, svcErr := f.svc.PlaceOrder(context.Background(), "u1")
	assert.Nil(t, svcErr)

	cart, err := f.carts.GetCart(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Nil(t, cart)

	_, _, svcErr = f.svc.Current(context.Background(), "u1")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)

	stored, err := f.orders.FindByIDAndUserID(context.Background(), order.ID, "u1")
	assert.NoError(t, err)
	assert.Equal(t, order.Total, stored.Total)
}

func TestService_Cancel_KeepsCart(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	_, _ = f.svc.Begin(context.Background(), "u1")

	f.svc.Cancel(context.Background(), "u1")

	_, _, svcErr := f.svc.Current(context.Background(), "u1")
	assert.NotNil(t, svcErr)

	cart, err := f.carts.GetCart(context.Background(), "u1")
	assert.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Len(t, cart.Items, 1)
}

func TestService_Current_IncludesLiveQuote(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "u1")
	_, _ = f.svc.Begin(context.Background(), "u1")

	_, quote, svcErr := f.svc.Current(context.Background(), "u1")
	assert.Nil(t, svcErr)
	assert.Equal(t, 12500, quote.Subtotal)
	assert.Equal(t, 12575, quote.Total)
}
