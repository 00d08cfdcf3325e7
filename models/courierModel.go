package models

import "time"

// Courier is a delivery agent. DeliveriesCompleted is incremented every time
// an order the courier delivered is marked completed.
type Courier struct {
	ID                  string    `json:"id" firestore:"-"`
	Name                string    `json:"name" firestore:"name"`
	Phone               string    `json:"phone" firestore:"phone"`
	DeliveriesCompleted int       `json:"deliveries_completed" firestore:"deliveriesCompleted"`
	CreatedAt           time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt           time.Time `json:"updated_at" firestore:"updatedAt"`
}
