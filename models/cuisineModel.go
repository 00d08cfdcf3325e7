package models

import "time"

type Cuisine struct {
	ID              string    `json:"id" firestore:"-"`
	Name            string    `json:"name" firestore:"name"`
	Image           string    `json:"image" firestore:"image"`
	Description     string    `json:"description,omitempty" firestore:"description,omitempty"`
	LongDescription string    `json:"long_description,omitempty" firestore:"longDescription,omitempty"`
	RestaurantCount int       `json:"restaurant_count" firestore:"restaurantCount"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}
