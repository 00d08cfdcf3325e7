package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/HafidLAADIMI/admin-restau-app/models"
	"github.com/HafidLAADIMI/admin-restau-app/services"
)

// CourierServicer defines the service methods needed by the courier
// handlers. Satisfied by *services.CourierService.
type CourierServicer interface {
	Couriers(ctx context.Context) []models.Courier
	CourierByID(ctx context.Context, courierID string) *models.Courier
	AddCourier(ctx context.Context, in services.CourierInput) (string, error)
	DeleteCourier(ctx context.Context, courierID string) error
}

type CourierController struct {
	svc CourierServicer
}

func NewCourierController(svc CourierServicer) *CourierController {
	return &CourierController{svc: svc}
}

// Get all couriers
func (c *CourierController) GetCouriers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	couriers := c.svc.Couriers(ctx)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Couriers retrieved successfully",
		"data":    couriers,
	})
}

// Get a single courier
func (c *CourierController) GetCourier(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	courierId := mux.Vars(r)["courier_id"]

	courier := c.svc.CourierByID(ctx, courierId)
	if courier == nil {
		http.Error(w, `{"success": false, "message": "Courier not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Courier retrieved successfully",
		"data":    courier,
	})
}

// Create a courier
func (c *CourierController) CreateCourier(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var input services.CourierInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(input); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	courierId, err := c.svc.AddCourier(ctx, input)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Courier could not be created"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Courier created successfully",
		"data":    map[string]interface{}{"courier_id": courierId},
	})
}

// Delete a courier
func (c *CourierController) DeleteCourier(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	courierId := mux.Vars(r)["courier_id"]

	if err := c.svc.DeleteCourier(ctx, courierId); err != nil {
		http.Error(w, `{"success": false, "message": "Courier deletion failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Courier deleted successfully",
	})
}
