package models

import "time"

// Category groups products inside a cuisine. CuisineID is nil for legacy
// documents created before categories were attached to cuisines.
type Category struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name"`
	Image       string    `json:"image" firestore:"image"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	CuisineID   *string   `json:"cuisine_id" firestore:"cuisineId"`
	ItemCount   int       `json:"item_count" firestore:"itemCount"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
