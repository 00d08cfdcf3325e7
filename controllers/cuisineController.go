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

// CatalogServicer defines the service methods needed by the catalog
// handlers. Satisfied by *services.CatalogService.
type CatalogServicer interface {
	Cuisines(ctx context.Context) []models.Cuisine
	CuisineByID(ctx context.Context, cuisineID string) *models.Cuisine
	AddCuisine(ctx context.Context, in services.CuisineInput) (string, error)
	UpdateCuisine(ctx context.Context, cuisineID string, in services.CuisineUpdate) error
	DeleteCuisine(ctx context.Context, cuisineID string) error

	Categories(ctx context.Context) []models.Category
	CategoryByID(ctx context.Context, categoryID string) *models.Category
	AddCategory(ctx context.Context, in services.CategoryInput) (string, error)
	UpdateCategory(ctx context.Context, categoryID string, in services.CategoryUpdate) error
	DeleteCategory(ctx context.Context, categoryID string) error
	CuisineFromCategory(ctx context.Context, categoryID string) *models.Cuisine

	ProductByID(ctx context.Context, productID string) *models.Product
	ProductsByCuisine(ctx context.Context, cuisineID string) []models.Product
	ProductsByCategory(ctx context.Context, categoryID string) []models.Product
	AddProduct(ctx context.Context, in services.ProductInput) (string, error)
	UpdateProduct(ctx context.Context, productID string, in services.ProductUpdate) error
	DeleteProduct(ctx context.Context, productID string) error
}

type CuisineController struct {
	svc CatalogServicer
}

func NewCuisineController(svc CatalogServicer) *CuisineController {
	return &CuisineController{svc: svc}
}

// Get all cuisines
func (c *CuisineController) GetCuisines(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	cuisines := c.svc.Cuisines(ctx)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cuisines retrieved successfully",
		"data":    cuisines,
	})
}

// Get a single cuisine
func (c *CuisineController) GetCuisine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	cuisineId := mux.Vars(r)["cuisine_id"]

	cuisine := c.svc.CuisineByID(ctx, cuisineId)
	if cuisine == nil {
		http.Error(w, `{"success": false, "message": "Cuisine not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cuisine retrieved successfully",
		"data":    cuisine,
	})
}

// Create a cuisine
func (c *CuisineController) CreateCuisine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var input services.CuisineInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(input); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	cuisineId, err := c.svc.AddCuisine(ctx, input)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Cuisine could not be created"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cuisine created successfully",
		"data":    map[string]interface{}{"cuisine_id": cuisineId},
	})
}

// Update a cuisine
func (c *CuisineController) UpdateCuisine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	cuisineId := mux.Vars(r)["cuisine_id"]

	var input services.CuisineUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.svc.UpdateCuisine(ctx, cuisineId, input); err != nil {
		http.Error(w, `{"success": false, "message": "Cuisine update failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cuisine updated successfully",
		"data":    c.svc.CuisineByID(ctx, cuisineId),
	})
}

// Delete a cuisine
func (c *CuisineController) DeleteCuisine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	cuisineId := mux.Vars(r)["cuisine_id"]

	if err := c.svc.DeleteCuisine(ctx, cuisineId); err != nil {
		http.Error(w, `{"success": false, "message": "Cuisine deletion failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cuisine deleted successfully",
	})
}

// Get all products that belong to a cuisine
func (c *CuisineController) GetCuisineProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	cuisineId := mux.Vars(r)["cuisine_id"]

	products := c.svc.ProductsByCuisine(ctx, cuisineId)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Products retrieved successfully",
		"data":    products,
	})
}
