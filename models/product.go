package models

import "time"

// Product represents a single marketplace listing. Prices are whole rupees.
type Product struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Price         int       `json:"price"`
	OriginalPrice int       `json:"original_price,omitempty"`
	ImageURL      string    `json:"image_url"`
	Location      string    `json:"location"`
	Condition     string    `json:"condition"`
	Description   string    `json:"description,omitempty"`
	SellerID      string    `json:"seller_id"`
	SellerName    string    `json:"seller_name"`
	SellerRating  float64   `json:"seller_rating"`
	IsNewListing  bool      `json:"is_new_listing"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateProductRequest is the payload for listing a new item.
type CreateProductRequest struct {
	Title         string `json:"title" binding:"required,min=3,max=160"`
	Price         int    `json:"price" binding:"required,gt=0"`
	OriginalPrice int    `json:"original_price" binding:"omitempty,gt=0"`
	ImageURL      string `json:"image_url"`
	Location      string `json:"location" binding:"required"`
	Condition     string `json:"condition" binding:"required"`
	Description   string `json:"description"`
}
