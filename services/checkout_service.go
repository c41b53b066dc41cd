package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/repository"
)

// Estimated delivery offsets per tier.
const (
	expressDeliveryDays  = 2
	standardDeliveryDays = 5
)

// CheckoutService drives the 3-step checkout flow: delivery info, payment
// method, review. Steps only advance through SubmitDelivery/SubmitPayment
// and retreat through Back; PlaceOrder is valid only from the review step.
type CheckoutService interface {
	Begin(ctx context.Context, userID string) (*models.CheckoutSession, *ServiceError)
	Current(ctx context.Context, userID string) (*models.CheckoutSession, *models.CheckoutQuote, *ServiceError)
	SubmitDelivery(ctx context.Context, userID string, info *models.DeliveryInfo) (*models.CheckoutSession, *ServiceError)
	SubmitPayment(ctx context.Context, userID string, details *models.PaymentDetails) (*models.CheckoutSession, *ServiceError)
	Back(ctx context.Context, userID string) (*models.CheckoutSession, *ServiceError)
	PlaceOrder(ctx context.Context, userID string) (*models.Order, *ServiceError)
	Cancel(ctx context.Context, userID string)
}

type checkoutServiceImpl struct {
	carts      repository.CartRepository
	orders     repository.OrderRepository
	logger     *zap.Logger
	orderDelay time.Duration

	mu       sync.Mutex
	sessions map[string]*models.CheckoutSession
}

func NewCheckoutService(carts repository.CartRepository, orders repository.OrderRepository, logger *zap.Logger, orderDelay time.Duration) CheckoutService {
	return &checkoutServiceImpl{
		carts:      carts,
		orders:     orders,
		logger:     logger,
		orderDelay: orderDelay,
		sessions:   make(map[string]*models.CheckoutSession),
	}
}

// Begin starts (or restarts) a checkout session at the delivery step. The
// cart must not be empty.
func (s *checkoutServiceImpl) Begin(ctx context.Context, userID string) (*models.CheckoutSession, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to start checkout"}
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Cart is empty"}
	}

	session := &models.CheckoutSession{
		UserID:    userID,
		Step:      models.StepDelivery,
		Delivery:  models.DeliveryInfo{DeliveryType: models.DeliveryStandard},
		StartedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[userID] = session
	s.mu.Unlock()

	return snapshot(session), nil
}

// Current returns the session and the live checkout quote for the cart.
func (s *checkoutServiceImpl) Current(ctx context.Context, userID string) (*models.CheckoutSession, *models.CheckoutQuote, *ServiceError) {
	session, svcErr := s.get(userID)
	if svcErr != nil {
		return nil, nil, svcErr
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		return nil, nil, &ServiceError{StatusCode: 500, Message: "Failed to load checkout"}
	}
	if cart == nil {
		return nil, nil, &ServiceError{StatusCode: 400, Message: "Cart is empty"}
	}
	quote := CheckoutQuoteFor(cart.Items, session.Delivery.DeliveryType)
	return session, &quote, nil
}

// SubmitDelivery validates the delivery form and advances to the payment
// step. A rejected submit leaves the session at the delivery step.
func (s *checkoutServiceImpl) SubmitDelivery(_ context.Context, userID string, info *models.DeliveryInfo) (*models.CheckoutSession, *ServiceError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, &ServiceError{StatusCode: 404, Message: "No checkout in progress"}
	}
	if session.Step != models.StepDelivery {
		return nil, &ServiceError{StatusCode: 409, Message: fmt.Sprintf("Checkout is at the %s step", session.Step)}
	}

	if missing := missingDeliveryFields(info); len(missing) > 0 {
		return nil, NewValidationError("Please fill in all required delivery information", missing...)
	}
	if info.DeliveryType == "" {
		info.DeliveryType = models.DeliveryStandard
	}

	session.Delivery = *info
	session.Step = models.StepPayment
	return snapshot(session), nil
}

// SubmitPayment validates method-specific fields and advances to review.
func (s *checkoutServiceImpl) SubmitPayment(_ context.Context, userID string, details *models.PaymentDetails) (*models.CheckoutSession, *ServiceError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, &ServiceError{StatusCode: 404, Message: "No checkout in progress"}
	}
	if session.Step != models.StepPayment {
		return nil, &ServiceError{StatusCode: 409, Message: fmt.Sprintf("Checkout is at the %s step", session.Step)}
	}

	switch details.Method {
	case models.PaymentUPI:
		if strings.TrimSpace(details.UPIID) == "" {
			return nil, NewValidationError("Please enter your UPI ID", "upi_id")
		}
	case models.PaymentCard:
		missing := []string{}
		if strings.TrimSpace(details.CardNumber) == "" {
			missing = append(missing, "card_number")
		}
		if strings.TrimSpace(details.ExpiryDate) == "" {
			missing = append(missing, "expiry_date")
		}
		if strings.TrimSpace(details.CVV) == "" {
			missing = append(missing, "cvv")
		}
		if len(missing) > 0 {
			return nil, NewValidationError("Please fill in all card details", missing...)
		}
	case models.PaymentWallet, models.PaymentNetBanking:
		// no extra fields
	default:
		return nil, NewValidationError("Unknown payment method", "method")
	}

	session.Payment = *details
	session.PaymentMethod = details.Method
	session.Step = models.StepReview
	return snapshot(session), nil
}

// Back retreats one step. It is a no-op guard violation at the delivery
// step.
func (s *checkoutServiceImpl) Back(_ context.Context, userID string) (*models.CheckoutSession, *ServiceError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, &ServiceError{StatusCode: 404, Message: "No checkout in progress"}
	}
	if session.Step > models.StepDelivery {
		session.Step--
	}
	return snapshot(session), nil
}

// PlaceOrder completes the checkout: it snapshots the cart into an immutable
// order, clears the cart, and ends the session.
func (s *checkoutServiceImpl) PlaceOrder(ctx context.Context, userID string) (*models.Order, *ServiceError) {
	s.mu.Lock()
	session, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return nil, &ServiceError{StatusCode: 404, Message: "No checkout in progress"}
	}
	if session.Step != models.StepReview {
		s.mu.Unlock()
		return nil, &ServiceError{StatusCode: 409, Message: fmt.Sprintf("Checkout is at the %s step", session.Step)}
	}
	// Consume the session before releasing the lock so a concurrent submit
	// cannot pass the review check from the same session.
	delete(s.sessions, userID)
	delivery := session.Delivery
	paymentMethod := session.Payment.Method
	s.mu.Unlock()

	restore := func() {
		s.mu.Lock()
		s.sessions[userID] = session
		s.mu.Unlock()
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		restore()
		s.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order"}
	}
	if cart == nil || len(cart.Items) == 0 {
		restore()
		return nil, &ServiceError{StatusCode: 400, Message: "Cart is empty"}
	}

	simulateLatency(ctx, s.orderDelay)

	now := time.Now()
	quote := CheckoutQuoteFor(cart.Items, delivery.DeliveryType)
	days := standardDeliveryDays
	if delivery.DeliveryType == models.DeliveryExpress {
		days = expressDeliveryDays
	}

	order := &models.Order{
		ID:                newOrderID(now),
		UserID:            userID,
		Items:             cart.Items,
		Delivery:          delivery,
		PaymentMethod:     paymentMethod,
		Total:             quote.Total,
		OrderDate:         now,
		EstimatedDelivery: now.Add(time.Duration(days) * 24 * time.Hour),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		restore()
		s.logger.Error("Failed to record order", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order"}
	}

	_ = s.carts.DeleteCart(ctx, userID)

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Int("total", order.Total),
		zap.String("delivery_type", delivery.DeliveryType),
	)
	return order, nil
}

// Cancel abandons any checkout in progress. The cart is untouched.
func (s *checkoutServiceImpl) Cancel(_ context.Context, userID string) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

func (s *checkoutServiceImpl) get(userID string) (*models.CheckoutSession, *ServiceError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		return nil, &ServiceError{StatusCode: 404, Message: "No checkout in progress"}
	}
	return snapshot(session), nil
}

func missingDeliveryFields(info *models.DeliveryInfo) []string {
	missing := []string{}
	check := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	check("full_name", info.FullName)
	check("phone", info.Phone)
	check("address", info.Address)
	check("city", info.City)
	check("pincode", info.Pincode)
	return missing
}

// newOrderID keeps the original display format: RM followed by the last 8
// digits of the millisecond timestamp.
func newOrderID(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "RM" + ms
}

func snapshot(session *models.CheckoutSession) *models.CheckoutSession {
	out := *session
	return &out
}
