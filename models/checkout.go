package models

import "time"

// CheckoutStep identifies the current step of the checkout flow.
type CheckoutStep int

const (
	StepDelivery CheckoutStep = iota + 1
	StepPayment
	StepReview
)

func (s CheckoutStep) String() string {
	switch s {
	case StepDelivery:
		return "delivery"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// Delivery tiers.
const (
	DeliveryStandard = "standard"
	DeliveryExpress  = "express"
)

// Payment methods.
const (
	PaymentUPI        = "upi"
	PaymentCard       = "card"
	PaymentWallet     = "wallet"
	PaymentNetBanking = "netbanking"
)

// DeliveryInfo is the payload for the delivery step. Required-field checks
// happen in the service so a rejected submit reports which fields are missing.
type DeliveryInfo struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Landmark     string `json:"landmark"`
	DeliveryType string `json:"delivery_type"`
}

// PaymentDetails is the payload for the payment step. Which fields are
// required depends on the chosen method.
type PaymentDetails struct {
	Method     string `json:"method" binding:"required,oneof=upi card wallet netbanking"`
	UPIID      string `json:"upi_id"`
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
	CardName   string `json:"card_name"`
}

// CheckoutSession is the per-user state of the 3-step checkout flow.
// Payment details stay server-side; only the chosen method is echoed.
type CheckoutSession struct {
	UserID        string         `json:"user_id"`
	Step          CheckoutStep   `json:"step"`
	Delivery      DeliveryInfo   `json:"delivery"`
	Payment       PaymentDetails `json:"-"`
	PaymentMethod string         `json:"payment_method,omitempty"`
	StartedAt     time.Time      `json:"started_at"`
}

// CheckoutQuote is the checkout-page price breakdown.
type CheckoutQuote struct {
	Subtotal        int `json:"subtotal"`
	DeliveryCharges int `json:"delivery_charges"`
	PlatformFee     int `json:"platform_fee"`
	Total           int `json:"total"`
}

// Order is the immutable record produced when checkout completes.
type Order struct {
	ID                string       `json:"id"`
	UserID            string       `json:"user_id"`
	Items             []CartItem   `json:"items"`
	Delivery          DeliveryInfo `json:"delivery"`
	PaymentMethod     string       `json:"payment_method"`
	Total             int          `json:"total"`
	OrderDate         time.Time    `json:"order_date"`
	EstimatedDelivery time.Time    `json:"estimated_delivery"`
}
