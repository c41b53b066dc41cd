package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/repository"
)

// SupportService handles support tickets and buyer-to-seller messages. Both
// are simulated: stored in memory, always delivered after a fixed delay.
type SupportService interface {
	CreateTicket(ctx context.Context, req *models.CreateTicketRequest) (*models.SupportTicket, *ServiceError)
	TicketsByEmail(ctx context.Context, email string) ([]models.SupportTicket, *ServiceError)
	ContactSeller(ctx context.Context, fromUserID string, req *models.ContactSellerRequest) (*models.SellerMessage, *ServiceError)
	SellerInbox(ctx context.Context, sellerID string) ([]models.SellerMessage, *ServiceError)
}

type supportServiceImpl struct {
	repo        repository.TicketRepository
	catalog     repository.CatalogRepository
	logger      *zap.Logger
	submitDelay time.Duration
}

func NewSupportService(repo repository.TicketRepository, catalog repository.CatalogRepository, logger *zap.Logger, submitDelay time.Duration) SupportService {
	return &supportServiceImpl{repo: repo, catalog: catalog, logger: logger, submitDelay: submitDelay}
}

func (s *supportServiceImpl) CreateTicket(ctx context.Context, req *models.CreateTicketRequest) (*models.SupportTicket, *ServiceError) {
	simulateLatency(ctx, s.submitDelay)

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	ticket := &models.SupportTicket{
		ID:        newTicketID(time.Now()),
		Name:      req.Name,
		Email:     req.Email,
		Category:  req.Category,
		Subject:   req.Subject,
		Message:   req.Message,
		Priority:  priority,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateTicket(ctx, ticket); err != nil {
		s.logger.Error("Failed to create support ticket", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create ticket"}
	}

	s.logger.Info("Support ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("category", string(ticket.Category)),
		zap.String("priority", ticket.Priority),
	)
	return ticket, nil
}

func (s *supportServiceImpl) TicketsByEmail(ctx context.Context, email string) ([]models.SupportTicket, *ServiceError) {
	tickets, err := s.repo.FindTicketsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to fetch tickets", zap.String("email", email), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch tickets"}
	}
	return tickets, nil
}

func (s *supportServiceImpl) ContactSeller(ctx context.Context, fromUserID string, req *models.ContactSellerRequest) (*models.SellerMessage, *ServiceError) {
	product, err := s.catalog.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}

	simulateLatency(ctx, s.submitDelay)

	msg := &models.SellerMessage{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		SellerID:  product.SellerID,
		FromUser:  fromUserID,
		Body:      req.Body,
		SentAt:    time.Now(),
	}

	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		s.logger.Error("Failed to record seller message", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to send message"}
	}

	s.logger.Info("Seller message sent",
		zap.String("product_id", product.ID),
		zap.String("seller_id", product.SellerID),
	)
	return msg, nil
}

// SellerInbox returns every message buyers have sent the seller.
func (s *supportServiceImpl) SellerInbox(ctx context.Context, sellerID string) ([]models.SellerMessage, *ServiceError) {
	messages, err := s.repo.FindMessagesBySellerID(ctx, sellerID)
	if err != nil {
		s.logger.Error("Failed to fetch seller messages", zap.String("seller_id", sellerID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch messages"}
	}
	return messages, nil
}

// newTicketID keeps the original display format: RMK- followed by the last 6
// digits of the millisecond timestamp.
func newTicketID(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "RMK-" + ms
}
