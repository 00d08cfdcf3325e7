package models

import "time"

// Admin is a back-office account for the management app.
type Admin struct {
	ID           string    `json:"id" firestore:"-"`
	FirstName    *string   `json:"first_name" firestore:"firstName" validate:"required,min=2,max=100"`
	LastName     *string   `json:"last_name" firestore:"lastName" validate:"required,min=2,max=100"`
	Email        *string   `json:"email" firestore:"email" validate:"required,email"`
	Password     *string   `json:"password,omitempty" firestore:"password" validate:"required,min=6"`
	Phone        *string   `json:"phone" firestore:"phone"`
	Token        *string   `json:"token,omitempty" firestore:"token"`
	RefreshToken *string   `json:"refresh_token,omitempty" firestore:"refreshToken"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}
