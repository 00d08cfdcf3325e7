package models

import "time"

// ProductOption is a variation or addon attached to a product.
type ProductOption struct {
	ID    string  `json:"id" firestore:"id"`
	Name  string  `json:"name" firestore:"name"`
	Price float64 `json:"price" firestore:"price"`
}

// Product belongs to a cuisine and references its category by name, not id;
// renaming a category does not cascade to its products.
type Product struct {
	ID            string          `json:"id" firestore:"-"`
	Name          string          `json:"name" firestore:"name"`
	Price         float64         `json:"price" firestore:"price"`
	DiscountPrice *float64        `json:"discount_price" firestore:"discountPrice"`
	Description   string          `json:"description" firestore:"description"`
	Image         string          `json:"image" firestore:"image"`
	Rating        float64         `json:"rating" firestore:"rating"`
	ReviewCount   int             `json:"review_count" firestore:"reviewCount"`
	Category      string          `json:"category" firestore:"category"`
	SubCategory   string          `json:"sub_category,omitempty" firestore:"subCategory,omitempty"`
	IsVeg         bool            `json:"is_veg" firestore:"isVeg"`
	IsAvailable   bool            `json:"is_available" firestore:"isAvailable"`
	CuisineID     string          `json:"cuisine_id" firestore:"cuisineId"`
	Variations    []ProductOption `json:"variations" firestore:"variations"`
	Addons        []ProductOption `json:"addons" firestore:"addons"`
	CreatedAt     time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time       `json:"updated_at" firestore:"updatedAt"`
}
