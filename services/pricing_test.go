package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/services"
)

func TestSubtotal_SumsPriceTimesQuantity(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "p1", Price: 100, Quantity: 2},
		{ProductID: "p2", Price: 350, Quantity: 1},
	}
	assert.Equal(t, 550, services.Subtotal(items))
}

func TestSubtotal_EmptyCartIsZero(t *testing.T) {
	assert.Equal(t, 0, services.Subtotal(nil))
}

func TestCartQuote_AppliesGST(t *testing.T) {
	items := []models.CartItem{{ProductID: "p1", Price: 12500, Quantity: 1}}

	subtotal, gst, total := services.CartQuote(items)

	assert.Equal(t, 12500, subtotal)
	assert.Equal(t, 2250.0, gst)
	assert.Equal(t, 14750.0, total)
}

func TestCheckoutQuote_StandardDelivery(t *testing.T) {
	items := []models.CartItem{{ProductID: "p1", Price: 12500, Quantity: 1}}

	quote := services.CheckoutQuoteFor(items, models.DeliveryStandard)

	assert.Equal(t, 12500, quote.Subtotal)
	assert.Equal(t, 50, quote.DeliveryCharges)
	assert.Equal(t, 25, quote.PlatformFee)
	assert.Equal(t, 12575, quote.Total)
}

func TestCheckoutQuote_ExpressDelivery(t *testing.T) {
	items := []models.CartItem{{ProductID: "p1", Price: 12500, Quantity: 1}}

	quote := services.CheckoutQuoteFor(items, models.DeliveryExpress)

	assert.Equal(t, 150, quote.DeliveryCharges)
	assert.Equal(t, 12675, quote.Total)
}

func TestDeliveryCharge_UnknownTierFallsBackToStandard(t *testing.T) {
	assert.Equal(t, 50, services.DeliveryCharge("drone"))
	assert.Equal(t, 50, services.DeliveryCharge(""))
}
