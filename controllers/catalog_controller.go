package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/remarket/middleware"
	"github.com/yashrajoria/remarket/models"
	"github.com/yashrajoria/remarket/repository"
	"github.com/yashrajoria/remarket/services"
)

// CatalogController handles product browsing, search, and listing creation.
type CatalogController struct {
	catalogService services.CatalogService
	users          repository.UserRepository
}

func NewCatalogController(catalogService services.CatalogService, users repository.UserRepository) *CatalogController {
	return &CatalogController{catalogService: catalogService, users: users}
}

// ListProducts handles GET /products?q=<query>. A blank query returns the
// whole catalog.
func (cc *CatalogController) ListProducts(ctx *gin.Context) {
	query := ctx.Query("q")

	products, svcErr := cc.catalogService.ListProducts(ctx.Request.Context(), query)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GetProduct handles GET /products/:id.
func (cc *CatalogController) GetProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	product, svcErr := cc.catalogService.GetProduct(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct handles POST /products (sellers only).
func (cc *CatalogController) CreateProduct(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	seller, err := cc.users.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown seller account"})
		return
	}

	product, svcErr := cc.catalogService.CreateProduct(ctx.Request.Context(), seller, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"product": product})
}

// SellerListings handles GET /seller/listings (sellers only).
func (cc *CatalogController) SellerListings(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	listings, svcErr := cc.catalogService.SellerListings(ctx.Request.Context(), userID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"listings": listings, "count": len(listings)})
}
