package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/remarket/controllers"
	"github.com/yashrajoria/remarket/middleware"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Catalog  *controllers.CatalogController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
	Wishlist *controllers.WishlistController
	Order    *controllers.OrderController
	Support  *controllers.SupportController
	Seller   *controllers.SellerController
	Policy   *controllers.PolicyController
}

// Register mounts all marketplace routes on the engine.
func Register(r *gin.Engine, c Controllers, jwtSecret []byte) {
	auth := middleware.AuthMiddleware(jwtSecret)

	// Public routes
	r.POST("/auth/signup", c.Auth.SignUp)
	r.POST("/auth/signin", c.Auth.SignIn)

	r.GET("/products", c.Catalog.ListProducts)
	r.GET("/products/:id", c.Catalog.GetProduct)

	r.GET("/policies", c.Policy.ListTypes)
	r.GET("/policies/:type", c.Policy.Get)

	r.POST("/support/tickets", c.Support.CreateTicket)

	// Authenticated routes
	authed := r.Group("")
	authed.Use(auth)
	{
		authed.POST("/auth/logout", c.Auth.Logout)

		cart := authed.Group("/cart")
		{
			cart.GET("", c.Cart.GetCart)
			cart.POST("/items", c.Cart.AddItem)
			cart.PUT("/items/:product_id", c.Cart.UpdateQuantity)
			cart.DELETE("/items/:product_id", c.Cart.RemoveItem)
			cart.DELETE("", c.Cart.ClearCart)
		}

		checkout := authed.Group("/checkout")
		{
			checkout.POST("", c.Checkout.Begin)
			checkout.GET("", c.Checkout.Current)
			checkout.POST("/delivery", c.Checkout.SubmitDelivery)
			checkout.POST("/payment", c.Checkout.SubmitPayment)
			checkout.POST("/back", c.Checkout.Back)
			checkout.POST("/place-order", c.Checkout.PlaceOrder)
			checkout.DELETE("", c.Checkout.Cancel)
		}

		wishlist := authed.Group("/wishlist")
		{
			wishlist.GET("", c.Wishlist.List)
			wishlist.POST("/:product_id", c.Wishlist.Toggle)
			wishlist.DELETE("/:product_id", c.Wishlist.Remove)
		}

		orders := authed.Group("/orders")
		{
			orders.GET("", c.Order.GetOrders)
			orders.GET("/:order_id", c.Order.GetOrder)
		}

		authed.GET("/support/tickets", c.Support.MyTickets)
		authed.POST("/support/contact-seller", c.Support.ContactSeller)

		// Seller-only routes
		seller := authed.Group("/seller")
		seller.Use(middleware.SellerOnly())
		{
			seller.POST("/listings", c.Catalog.CreateProduct)
			seller.GET("/listings", c.Catalog.SellerListings)
			seller.GET("/stats", c.Seller.Stats)
			seller.GET("/messages", c.Seller.Messages)
		}
	}
}
