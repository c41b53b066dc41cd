package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/remarket/middleware"
	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/services"
)

// SupportController handles support tickets and buyer-to-seller messages.
type SupportController struct {
	supportService services.SupportService
}

func NewSupportController(supportService services.SupportService) *SupportController {
	return &SupportController{supportService: supportService}
}

// CreateTicket handles POST /support/tickets.
func (sc *SupportController) CreateTicket(ctx *gin.Context) {
	var req models.CreateTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	ticket, svcErr := sc.supportService.CreateTicket(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"ticket": ticket})
}

// MyTickets handles GET /support/tickets. The lookup is scoped to the
// caller's token email so one user cannot read another's tickets.
func (sc *SupportController) MyTickets(ctx *gin.Context) {
	email, err := middleware.GetUserEmail(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tickets, svcErr := sc.supportService.TicketsByEmail(ctx.Request.Context(), email)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tickets": tickets, "count": len(tickets)})
}

// ContactSeller handles POST /support/contact-seller.
func (sc *SupportController) ContactSeller(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.ContactSellerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	msg, svcErr := sc.supportService.ContactSeller(ctx.Request.Context(), userID, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": msg})
}
