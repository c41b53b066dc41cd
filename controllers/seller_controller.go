package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/remarket/middleware"
	"github.com/yashrajoria/remarket/repository"
	"github.com/yashrajoria/remarket/services"
)

// SellerController serves the seller dashboard overview and inbox.
type SellerController struct {
	sellerService  services.SellerService
	supportService services.SupportService
	userRepo       repository.UserRepository
}

func NewSellerController(sellerService services.SellerService, supportService services.SupportService, userRepo repository.UserRepository) *SellerController {
	return &SellerController{sellerService: sellerService, supportService: supportService, userRepo: userRepo}
}

// Stats handles GET /seller/stats.
func (sc *SellerController) Stats(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	seller, err := sc.userRepo.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
		return
	}

	stats, svcErr := sc.sellerService.Stats(ctx.Request.Context(), seller)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"stats": stats})
}

// Messages handles GET /seller/messages.
func (sc *SellerController) Messages(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	messages, svcErr := sc.supportService.SellerInbox(ctx.Request.Context(), userID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}
