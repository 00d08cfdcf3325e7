package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"

	"github.com/HafidLAADIMI/admin-restau-app/services"
)

var validate = validator.New()

type ProductController struct {
	svc CatalogServicer
}

func NewProductController(svc CatalogServicer) *ProductController {
	return &ProductController{svc: svc}
}

// Get a single product
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	productId := mux.Vars(r)["product_id"]

	product := c.svc.ProductByID(ctx, productId)
	if product == nil {
		http.Error(w, `{"success": false, "message": "Product not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// Create a product
func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var input services.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(input); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	// The owning cuisine must exist
	if cuisine := c.svc.CuisineByID(ctx, input.CuisineID); cuisine == nil {
		http.Error(w, `{"success": false, "message": "Invalid cuisine ID, cuisine not found"}`, http.StatusNotFound)
		return
	}

	productId, err := c.svc.AddProduct(ctx, input)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Product could not be created"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Product created successfully",
		"data":    map[string]interface{}{"product_id": productId},
	})
}

// Update a product
func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	productId := mux.Vars(r)["product_id"]

	var input services.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if input.CuisineID != nil {
		if cuisine := c.svc.CuisineByID(ctx, *input.CuisineID); cuisine == nil {
			http.Error(w, `{"success": false, "message": "Invalid cuisine ID, cuisine not found"}`, http.StatusNotFound)
			return
		}
	}

	if err := c.svc.UpdateProduct(ctx, productId, input); err != nil {
		http.Error(w, `{"success": false, "message": "Product update failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Product updated successfully",
		"data":    c.svc.ProductByID(ctx, productId),
	})
}

// Delete a product
func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	productId := mux.Vars(r)["product_id"]

	if err := c.svc.DeleteProduct(ctx, productId); err != nil {
		http.Error(w, `{"success": false, "message": "Product deletion failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Product deleted successfully",
	})
}
