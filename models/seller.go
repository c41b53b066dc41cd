package models

// SellerStats is the dashboard overview for a seller. Listing and earnings
// figures are derived from live state; engagement numbers are demo fixtures.
type SellerStats struct {
	ActiveListings int     `json:"active_listings"`
	TotalEarnings  int     `json:"total_earnings"`
	TotalViews     int     `json:"total_views"`
	TrustRating    float64 `json:"trust_rating"`
	SalesThisMonth int     `json:"sales_this_month"`
	ResponseRate   int     `json:"response_rate"`
}

// Policy is a static content document (buyer/seller guides, legal pages).
type Policy struct {
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}
