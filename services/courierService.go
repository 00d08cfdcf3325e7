package services

import (
	"context"
	"log"
	"time"

	"github.com/HafidLAADIMI/admin-restau-app/models"
	"github.com/HafidLAADIMI/admin-restau-app/store"
)

// CourierService manages delivery-agent records. The completed-deliveries
// counter itself is written by the order service when an order completes.
type CourierService struct {
	store CatalogStore
}

func NewCourierService(st CatalogStore) *CourierService {
	return &CourierService{store: st}
}

type CourierInput struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Phone string `json:"phone"`
}

func (s *CourierService) Couriers(ctx context.Context) []models.Courier {
	docs, err := s.store.ListDocs(ctx, store.CollCouriers)
	if err != nil {
		log.Printf("[Couriers] listing failed: %v", err)
		return []models.Courier{}
	}
	couriers := make([]models.Courier, 0, len(docs))
	for _, d := range docs {
		couriers = append(couriers, NormalizeCourier(d))
	}
	return couriers
}

func (s *CourierService) CourierByID(ctx context.Context, courierID string) *models.Courier {
	if courierID == "" {
		log.Printf("[CourierByID] empty courier id")
		return nil
	}
	doc, ok, err := s.store.GetDoc(ctx, store.CollCouriers, courierID)
	if err != nil {
		log.Printf("[CourierByID] fetching %s failed: %v", courierID, err)
		return nil
	}
	if !ok {
		return nil
	}
	courier := NormalizeCourier(doc)
	return &courier
}

func (s *CourierService) AddCourier(ctx context.Context, in CourierInput) (string, error) {
	now := time.Now()
	return s.store.AddDoc(ctx, store.CollCouriers, map[string]interface{}{
		"name":                in.Name,
		"phone":               in.Phone,
		"deliveriesCompleted": 0,
		"createdAt":           now,
		"updatedAt":           now,
	})
}

func (s *CourierService) DeleteCourier(ctx context.Context, courierID string) error {
	return s.store.DeleteDoc(ctx, store.CollCouriers, courierID)
}
