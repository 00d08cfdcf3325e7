package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/HafidLAADIMI/admin-restau-app/models"
	"github.com/HafidLAADIMI/admin-restau-app/services"
)

// OrderServicer defines the service methods needed by the order handlers.
// Satisfied by *services.OrderService; narrow interface for testability.
type OrderServicer interface {
	Orders(ctx context.Context) []models.Order
	Order(ctx context.Context, tenantID, orderID string) *models.Order
	SetStatus(ctx context.Context, tenantID, orderID string, status models.OrderStatus, delivery *models.OrderDeliveryData) error
	AdvanceStatus(ctx context.Context, tenantID, orderID string, status models.OrderStatus, delivery *models.OrderDeliveryData) error
}

type OrderController struct {
	svc OrderServicer
}

func NewOrderController(svc OrderServicer) *OrderController {
	return &OrderController{svc: svc}
}

// Get all orders across every user, newest first, with pagination
func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	allOrders := c.svc.Orders(ctx)
	totalOrders := len(allOrders)

	startIndex := (page - 1) * recordPerPage
	if startIndex > totalOrders {
		startIndex = totalOrders
	}
	endIndex := startIndex + recordPerPage
	if endIndex > totalOrders {
		endIndex = totalOrders
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    allOrders[startIndex:endIndex],
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_orders":     totalOrders,
			"total_pages":      (totalOrders + recordPerPage - 1) / recordPerPage,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Get a single order by user id and order id
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)
	userId := params["user_id"]
	orderId := params["order_id"]

	if userId == "" || orderId == "" {
		http.Error(w, `{"success": false, "message": "Invalid user or order ID"}`, http.StatusBadRequest)
		return
	}

	order := c.svc.Order(ctx, userId, orderId)
	if order == nil {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

type statusUpdateRequest struct {
	Status   string                    `json:"status" validate:"required"`
	Delivery *models.OrderDeliveryData `json:"delivery"`
}

// Set an order's status unconditionally (admin override)
func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	c.updateStatus(w, r, false)
}

// Advance an order's status along the allowed transition path
func (c *OrderController) AdvanceOrderStatus(w http.ResponseWriter, r *http.Request) {
	c.updateStatus(w, r, true)
}

func (c *OrderController) updateStatus(w http.ResponseWriter, r *http.Request, guarded bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)
	userId := params["user_id"]
	orderId := params["order_id"]

	var requestBody statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(requestBody); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	status := models.OrderStatus(requestBody.Status)

	var err error
	if guarded {
		err = c.svc.AdvanceStatus(ctx, userId, orderId, status, requestBody.Delivery)
	} else {
		err = c.svc.SetStatus(ctx, userId, orderId, status, requestBody.Delivery)
	}

	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		http.Error(w, `{"success": false, "message": "Invalid order status"}`, http.StatusBadRequest)
		return
	case errors.Is(err, services.ErrInvalidTransition):
		http.Error(w, `{"success": false, "message": "Status transition not allowed"}`, http.StatusConflict)
		return
	case errors.Is(err, services.ErrOrderNotFound):
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, `{"success": false, "message": "Failed to update order status"}`, http.StatusInternalServerError)
		return
	}

	order := c.svc.Order(ctx, userId, orderId)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order status updated successfully",
		"data":    order,
	})
}
