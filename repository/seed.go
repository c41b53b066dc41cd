package repository

import (
	"time"

	"github.com/yashrajoria/remarket/models"
)

// SeedProducts returns the demo catalog fixture. IDs are stable so the data
// set is predictable across runs.
func SeedProducts() []models.Product {
	now := time.Now()
	day := 24 * time.Hour
	return []models.Product{
		{
			ID:            "1",
			Title:         "Bamboo Study Table - Eco-Friendly & Durable",
			Price:         12500,
			OriginalPrice: 18000,
			ImageURL:      "https://images.unsplash.com/photo-1570866056002-03b2dbf7737a",
			Location:      "Pune",
			Condition:     "Like New",
			Description:   "Handcrafted bamboo study table made from sustainable bamboo wood. FSC certified, smooth finish, 120cm x 60cm x 75cm.",
			SellerID:      "seller-priya",
			SellerName:    "Priya S.",
			SellerRating:  4.8,
			CreatedAt:     now.Add(-2 * day),
		},
		{
			ID:            "2",
			Title:         "Solar Power Bank - 20000mAh Eco Charger",
			Price:         2800,
			OriginalPrice: 4500,
			ImageURL:      "https://images.unsplash.com/photo-1589276215887-9f690f8e1b89",
			Location:      "Bangalore",
			Condition:     "Good",
			Description:   "High-capacity solar power bank with dual USB ports and built-in panels. Waterproof, charges via solar or USB-C.",
			SellerID:      "seller-arjun",
			SellerName:    "Arjun K.",
			SellerRating:  4.5,
			CreatedAt:     now.Add(-5 * day),
		},
		{
			ID:            "3",
			Title:         "Organic Cotton Kurta Set - Handwoven",
			Price:         1800,
			OriginalPrice: 3200,
			ImageURL:      "https://images.unsplash.com/photo-1554967651-3997ad1c43b0",
			Location:      "Jaipur",
			Condition:     "Very Good",
			Description:   "Handwoven organic cotton kurta set in natural dye. GOTS certified, size M, includes matching pajama.",
			SellerID:      "seller-meera",
			SellerName:    "Meera R.",
			SellerRating:  4.9,
			CreatedAt:     now.Add(-7 * day),
		},
		{
			ID:            "4",
			Title:         "Electric Bicycle - Zero Emission Transport",
			Price:         35000,
			OriginalPrice: 55000,
			ImageURL:      "https://images.unsplash.com/photo-1581940495169-868ac7b49a88",
			Location:      "Mumbai",
			Condition:     "Excellent",
			Description:   "Electric bicycle with 50km range per charge. Lithium-ion battery, 3 speed modes, includes charger and warranty papers.",
			SellerID:      "seller-rohit",
			SellerName:    "Rohit M.",
			SellerRating:  4.7,
			CreatedAt:     now.Add(-3 * day),
		},
		{
			ID:            "5",
			Title:         "Stainless Steel Water Bottles Set - BPA Free",
			Price:         850,
			OriginalPrice: 1400,
			ImageURL:      "https://images.unsplash.com/photo-1605274280925-9dd1baacb97b",
			Location:      "Delhi",
			Condition:     "Good",
			Description:   "Set of 3 insulated stainless steel bottles (500ml, 750ml, 1L). Leak-proof and easy to clean.",
			SellerID:      "seller-anjali",
			SellerName:    "Anjali T.",
			SellerRating:  4.6,
			CreatedAt:     now.Add(-7 * day),
		},
		{
			ID:            "6",
			Title:         "Compost Bin - Kitchen Waste to Fertilizer",
			Price:         1200,
			OriginalPrice: 2000,
			ImageURL:      "https://images.unsplash.com/photo-1542739674-b449a8938b59",
			Location:      "Chennai",
			Condition:     "Like New",
			Description:   "Compact kitchen compost bin with odor-free carbon filter. Made from recycled plastic, includes starter guide.",
			SellerID:      "seller-suresh",
			SellerName:    "Suresh V.",
			SellerRating:  4.8,
			CreatedAt:     now.Add(-4 * day),
		},
		{
			ID:            "7",
			Title:         "LED Bulb Set - 90% Energy Efficient",
			Price:         650,
			OriginalPrice: 1200,
			ImageURL:      "https://images.unsplash.com/photo-1638307119060-d918b2d5e9ca",
			Location:      "Hyderabad",
			Condition:     "Very Good",
			Description:   "Pack of 8 energy-efficient LED bulbs, warm white. Various wattages: 9W, 12W, 15W.",
			SellerID:      "seller-kavita",
			SellerName:    "Kavita L.",
			SellerRating:  4.4,
			CreatedAt:     now.Add(-6 * day),
		},
		{
			ID:            "8",
			Title:         "Hemp Backpack - Plastic-Free Travel",
			Price:         2200,
			OriginalPrice: 3800,
			ImageURL:      "https://images.unsplash.com/photo-1592289924034-c423dd2f1c5d",
			Location:      "Kochi",
			Condition:     "Good",
			Description:   "Durable hemp fabric backpack, biodegradable and plastic-free. Water-resistant natural wax coating, laptop compartment.",
			SellerID:      "seller-maya",
			SellerName:    "Maya P.",
			SellerRating:  4.5,
			CreatedAt:     now.Add(-7 * day),
		},
		{
			ID:            "9",
			Title:         "Vintage Wooden Clock - 1950s Mantle Clock",
			Price:         8500,
			OriginalPrice: 15000,
			ImageURL:      "https://images.unsplash.com/photo-1724230758634-8f88fa320c59",
			Location:      "Lucknow",
			Condition:     "Excellent",
			Description:   "1950s mantle clock in working condition. Carved mahogany, brass fittings, Westminster chime recently serviced.",
			SellerID:      "seller-rakesh",
			SellerName:    "Rakesh J.",
			SellerRating:  4.9,
			CreatedAt:     now.Add(-3 * day),
		},
		{
			ID:            "10",
			Title:         "Antique Brass Telescope - 19th Century Replica",
			Price:         15500,
			OriginalPrice: 28000,
			ImageURL:      "https://images.unsplash.com/photo-1639731458504-2a37ec687965",
			Location:      "Shimla",
			Condition:     "Very Good",
			Description:   "Brass telescope with wooden tripod stand, functional optics, original leather case and cleaning kit.",
			SellerID:      "seller-singh",
			SellerName:    "Colonel A. Singh",
			SellerRating:  4.8,
			CreatedAt:     now.Add(-7 * day),
		},
		{
			ID:            "11",
			Title:         "Vintage Typewriter - Royal Quiet De Luxe 1960s",
			Price:         12000,
			OriginalPrice: 22000,
			ImageURL:      "https://images.unsplash.com/photo-1622132403916-d4786bf0e7ee",
			Location:      "Kolkata",
			Condition:     "Good",
			Description:   "Royal Quiet De Luxe typewriter in working condition, ribbon recently replaced, original carrying case.",
			SellerID:      "seller-arun",
			SellerName:    "Arun B.",
			SellerRating:  4.6,
			CreatedAt:     now.Add(-5 * day),
		},
		{
			ID:            "12",
			Title:         "Vintage Gramophone - Working 1940s Phonograph",
			Price:         25000,
			OriginalPrice: 45000,
			ImageURL:      "https://images.unsplash.com/photo-1635719918981-489600a42ebd",
			Location:      "Mumbai",
			Condition:     "Excellent",
			Description:   "Working 1940s gramophone, plays 78 RPM records. Ornate brass horn, wooden base, includes vintage records.",
			SellerID:      "seller-ravi",
			SellerName:    "Ravi M.",
			SellerRating:  4.9,
			CreatedAt:     now.Add(-2 * day),
		},
	}
}
