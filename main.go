package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yashrajoria/remarket/controllers"
	"github.com/yashrajoria/remarket/middleware"
	"github.com/yashrajoria/remarket/repository"
	"github.com/yashrajoria/remarket/routes"
	"github.com/yashrajoria/remarket/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Config load failed", zap.Error(err))
	}

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimitMiddleware())

	// Structured HTTP request logging
	r.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		switch {
		case status >= 500:
			logger.Error("http_request", fields...)
		case status >= 400:
			logger.Warn("http_request", fields...)
		default:
			logger.Info("http_request", fields...)
		}
	})

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- In-memory stores ---
	catalogRepo := repository.NewInMemoryCatalogRepository(repository.SeedProducts())
	cartRepo := repository.NewInMemoryCartRepository()
	wishlistRepo := repository.NewInMemoryWishlistRepository()
	orderRepo := repository.NewInMemoryOrderRepository()
	userRepo := repository.NewInMemoryUserRepository()
	ticketRepo := repository.NewInMemoryTicketRepository()

	// --- Dependency injection ---
	jwtSecret := []byte(cfg.JWTSecret)

	catalogService := services.NewCatalogService(catalogRepo, logger, cfg.NewListingTTL, cfg.ListingDelay)
	cartService := services.NewCartService(cartRepo, catalogRepo, logger)
	checkoutService := services.NewCheckoutService(cartRepo, orderRepo, logger, cfg.OrderDelay)
	wishlistService := services.NewWishlistService(wishlistRepo, catalogRepo, logger)
	orderService := services.NewOrderService(orderRepo, logger)
	authService := services.NewAuthService(userRepo, cartRepo, wishlistRepo, logger, jwtSecret, cfg.SignInDelay)
	supportService := services.NewSupportService(ticketRepo, catalogRepo, logger, cfg.SupportDelay)
	sellerService := services.NewSellerService(catalogRepo, logger)
	policyService := services.NewPolicyService()

	routes.Register(r, routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Catalog:  controllers.NewCatalogController(catalogService, userRepo),
		Cart:     controllers.NewCartController(cartService),
		Checkout: controllers.NewCheckoutController(checkoutService),
		Wishlist: controllers.NewWishlistController(wishlistService),
		Order:    controllers.NewOrderController(orderService),
		Support:  controllers.NewSupportController(supportService),
		Seller:   controllers.NewSellerController(sellerService, supportService, userRepo),
		Policy:   controllers.NewPolicyController(policyService),
	}, jwtSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "remarket"})
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("ReMarket server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	catalogService.Close()

	log.Println("ReMarket server stopped gracefully")
}
