package services

import "github.com/yashrajoria/remarket/models"

// Pricing constants. The cart view quotes subtotal + GST; the checkout page
// quotes subtotal + delivery charge + platform fee. The two figures are
// independent and are kept that way on purpose; orders use the checkout
// quote.
const (
	GSTRate = 0.18

	StandardDeliveryCharge = 50
	ExpressDeliveryCharge  = 150
	PlatformFee            = 25
)

// Subtotal sums price x quantity over all lines.
func Subtotal(items []models.CartItem) int {
	sum := 0
	for _, item := range items {
		sum += item.Price * item.Quantity
	}
	return sum
}

// CartQuote computes the cart-view totals (GST applied).
func CartQuote(items []models.CartItem) (subtotal int, gst, total float64) {
	subtotal = Subtotal(items)
	gst = float64(subtotal) * GSTRate
	total = float64(subtotal) + gst
	return subtotal, gst, total
}

// DeliveryCharge returns the flat charge for a delivery tier. Unknown tiers
// fall back to standard, matching the original default.
func DeliveryCharge(deliveryType string) int {
	if deliveryType == models.DeliveryExpress {
		return ExpressDeliveryCharge
	}
	return StandardDeliveryCharge
}

// CheckoutQuoteFor computes the checkout-page totals for a cart and delivery
// tier.
func CheckoutQuoteFor(items []models.CartItem, deliveryType string) models.CheckoutQuote {
	subtotal := Subtotal(items)
	delivery := DeliveryCharge(deliveryType)
	return models.CheckoutQuote{
		Subtotal:        subtotal,
		DeliveryCharges: delivery,
		PlatformFee:     PlatformFee,
		Total:           subtotal + delivery + PlatformFee,
	}
}
