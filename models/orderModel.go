package models

import "time"

// OrderStatus is the lifecycle state of an order. Pending orders move to
// in-progress, then to completed; cancellation is only meaningful before a
// terminal state is reached.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in-progress"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s is an end state.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Coordinates struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

type OrderItem struct {
	ID       string  `json:"id,omitempty" firestore:"id,omitempty"`
	Name     string  `json:"name" firestore:"name"`
	Quantity int     `json:"quantity" firestore:"quantity"`
	Price    float64 `json:"price" firestore:"price"`
}

// Order is a customer order. It lives in the users/{userId}/orders
// sub-collection, so the document itself does not carry its own id or the
// owning user id; both are filled in from the document reference.
type Order struct {
	ID              string             `json:"id" firestore:"-"`
	UserID          string             `json:"user_id" firestore:"-"`
	DriverID        string             `json:"driver_id,omitempty" firestore:"driverId,omitempty"`
	CustomerName    string             `json:"customer_name" firestore:"customerName"`
	CustomerPhone   string             `json:"customer_phone" firestore:"customerPhone"`
	Address         string             `json:"address" firestore:"address"`
	Coordinates     Coordinates        `json:"coordinates" firestore:"coordinates"`
	Status          OrderStatus        `json:"status" firestore:"status"`
	Total           float64            `json:"total" firestore:"total"`
	ETA             string             `json:"eta,omitempty" firestore:"eta,omitempty"`
	Distance        string             `json:"distance,omitempty" firestore:"distance,omitempty"`
	Note            string             `json:"note,omitempty" firestore:"note,omitempty"`
	Items           []OrderItem        `json:"items" firestore:"items"`
	DeliveryDetails *OrderDeliveryData `json:"delivery_details,omitempty" firestore:"deliveryDetails,omitempty"`
	CreatedAt       time.Time          `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time          `json:"updated_at" firestore:"updatedAt"`
}

// OrderDeliveryData is the proof-of-delivery payload attached to an order
// when it is completed. DeliveredBy is the courier's document id.
type OrderDeliveryData struct {
	ReceivedBy         string    `json:"received_by" firestore:"receivedBy"`
	Notes              string    `json:"notes" firestore:"notes"`
	AmountCollected    float64   `json:"amount_collected" firestore:"amountCollected"`
	SignatureURL       string    `json:"signature_url" firestore:"signatureUrl"`
	ProofOfDeliveryURL string    `json:"proof_of_delivery_url" firestore:"proofOfDeliveryUrl"`
	DeliveredAt        time.Time `json:"delivered_at" firestore:"deliveredAt"`
	DeliveredBy        string    `json:"delivered_by" firestore:"deliveredBy"`
	DeliverymanName    string    `json:"deliveryman_name" firestore:"deliverymanName"`
}
