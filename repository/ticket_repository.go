package repository

import (
	"context"
	"sync"

	"github.com/yashrajoria/remarket/models"
)

// TicketRepository defines data access for support tickets and seller
// messages.
type TicketRepository interface {
	CreateTicket(ctx context.Context, ticket *models.SupportTicket) error
	FindTicketsByEmail(ctx context.Context, email string) ([]models.SupportTicket, error)
	CreateMessage(ctx context.Context, msg *models.SellerMessage) error
	FindMessagesBySellerID(ctx context.Context, sellerID string) ([]models.SellerMessage, error)
}

type InMemoryTicketRepository struct {
	mu       sync.RWMutex
	tickets  []models.SupportTicket
	messages []models.SellerMessage
}

func NewInMemoryTicketRepository() *InMemoryTicketRepository {
	return &InMemoryTicketRepository{}
}

func (r *InMemoryTicketRepository) CreateTicket(_ context.Context, ticket *models.SupportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tickets = append(r.tickets, *ticket)
	return nil
}

func (r *InMemoryTicketRepository) FindTicketsByEmail(_ context.Context, email string) ([]models.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.SupportTicket{}
	for _, t := range r.tickets {
		if t.Email == email {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *InMemoryTicketRepository) CreateMessage(_ context.Context, msg *models.SellerMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, *msg)
	return nil
}

func (r *InMemoryTicketRepository) FindMessagesBySellerID(_ context.Context, sellerID string) ([]models.SellerMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.SellerMessage{}
	for _, m := range r.messages {
		if m.SellerID == sellerID {
			out = append(out, m)
		}
	}
	return out, nil
}
