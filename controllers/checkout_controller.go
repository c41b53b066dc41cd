package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/remarket/middleware"
	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/services"
)

// CheckoutController exposes the 3-step checkout flow.
type CheckoutController struct {
	checkoutService services.CheckoutService
}

func NewCheckoutController(checkoutService services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

func respondServiceError(ctx *gin.Context, svcErr *services.ServiceError) {
	body := gin.H{"error": svcErr.Message}
	if len(svcErr.Fields) > 0 {
		body["fields"] = svcErr.Fields
	}
	ctx.JSON(svcErr.StatusCode, body)
}

// Begin handles POST /checkout.
func (cc *CheckoutController) Begin(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, svcErr := cc.checkoutService.Begin(ctx.Request.Context(), userID)
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"checkout": session})
}

// Current handles GET /checkout. The response includes the live quote for
// the selected delivery tier.
func (cc *CheckoutController) Current(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, quote, svcErr := cc.checkoutService.Current(ctx.Request.Context(), userID)
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"checkout": session, "quote": quote})
}

// SubmitDelivery handles POST /checkout/delivery.
func (cc *CheckoutController) SubmitDelivery(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var info models.DeliveryInfo
	if err := ctx.ShouldBindJSON(&info); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	session, svcErr := cc.checkoutService.SubmitDelivery(ctx.Request.Context(), userID, &info)
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"checkout": session})
}

// SubmitPayment handles POST /checkout/payment.
func (cc *CheckoutController) SubmitPayment(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var details models.PaymentDetails
	if err := ctx.ShouldBindJSON(&details); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	session, svcErr := cc.checkoutService.SubmitPayment(ctx.Request.Context(), userID, &details)
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"checkout": session})
}

// Back handles POST /checkout/back.
func (cc *CheckoutController) Back(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, svcErr := cc.checkoutService.Back(ctx.Request.Context(), userID)
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"checkout": session})
}

// PlaceOrder handles POST /checkout/place-order.
func (cc *CheckoutController) PlaceOrder(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, svcErr := cc.checkoutService.PlaceOrder(ctx.Request.Context(), userID)
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"order": order})
}

// Cancel handles DELETE /checkout. The cart is untouched.
func (cc *CheckoutController) Cancel(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cc.checkoutService.Cancel(ctx.Request.Context(), userID)
	ctx.JSON(http.StatusOK, gin.H{"message": "checkout cancelled"})
}
