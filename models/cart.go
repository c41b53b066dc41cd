package models

import "time"

// CartItem is one line in a user's cart. Seller fields are copied from the
// product at add time so the cart remains stable if the listing changes.
type CartItem struct {
	ProductID  string `json:"product_id"`
	Title      string `json:"title"`
	Price      int    `json:"price"`
	ImageURL   string `json:"image_url"`
	Condition  string `json:"condition"`
	SellerID   string `json:"seller_id"`
	SellerName string `json:"seller_name"`
	Quantity   int    `json:"quantity"`
}

type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddItemRequest adds a product to the cart (quantity defaults to 1).
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateQuantityRequest sets an absolute quantity; 0 removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// CartSummary is the cart-view quote: subtotal plus 18% GST. The checkout
// page quotes differently (delivery charge + platform fee, no GST); the two
// figures are intentionally kept separate.
type CartSummary struct {
	Cart     *Cart   `json:"cart"`
	Subtotal int     `json:"subtotal"`
	GST      float64 `json:"gst"`
	Total    float64 `json:"total"`
}
