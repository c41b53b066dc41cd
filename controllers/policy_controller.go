package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/remarket/services"
)

// PolicyController serves the static help and policy documents.
type PolicyController struct {
	policyService services.PolicyService
}

func NewPolicyController(policyService services.PolicyService) *PolicyController {
	return &PolicyController{policyService: policyService}
}

// ListTypes handles GET /policies.
func (pc *PolicyController) ListTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"types": pc.policyService.Types(ctx.Request.Context())})
}

// Get handles GET /policies/:type.
func (pc *PolicyController) Get(ctx *gin.Context) {
	policy, svcErr := pc.policyService.Get(ctx.Request.Context(), ctx.Param("type"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"policy": policy})
}
