package models

import "time"

// TicketCategory classifies a support request.
type TicketCategory string

const (
	CategoryAccount   TicketCategory = "account"
	CategoryPayment   TicketCategory = "payment"
	CategoryOrders    TicketCategory = "orders"
	CategorySafety    TicketCategory = "safety"
	CategoryTechnical TicketCategory = "technical"
	CategoryOther     TicketCategory = "other"
)

// Ticket priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// SupportTicket is a support request held in memory.
type SupportTicket struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Category  TicketCategory `json:"category"`
	Subject   string         `json:"subject"`
	Message   string         `json:"message"`
	Priority  string         `json:"priority"`
	CreatedAt time.Time      `json:"created_at"`
}

type CreateTicketRequest struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Category TicketCategory `json:"category" binding:"required,oneof=account payment orders safety technical other"`
	Subject  string         `json:"subject" binding:"required"`
	Message  string         `json:"message" binding:"required"`
	Priority string         `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// SellerMessage is a buyer-to-seller message about a listing. Delivery is
// simulated; messages are only recorded in memory.
type SellerMessage struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	SellerID  string    `json:"seller_id"`
	FromUser  string    `json:"from_user"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}

type ContactSellerRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Body      string `json:"body" binding:"required"`
}
