package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/HafidLAADIMI/admin-restau-app/services"
)

type CategoryController struct {
	svc CatalogServicer
}

func NewCategoryController(svc CatalogServicer) *CategoryController {
	return &CategoryController{svc: svc}
}

// Get all categories
func (c *CategoryController) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	categories := c.svc.Categories(ctx)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// Get a single category
func (c *CategoryController) GetCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	category := c.svc.CategoryByID(ctx, categoryId)
	if category == nil {
		http.Error(w, `{"success": false, "message": "Category not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Category retrieved successfully",
		"data":    category,
	})
}

// Get the cuisine a category belongs to
func (c *CategoryController) GetCategoryCuisine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	cuisine := c.svc.CuisineFromCategory(ctx, categoryId)
	if cuisine == nil {
		http.Error(w, `{"success": false, "message": "No cuisine found for this category"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cuisine retrieved successfully",
		"data":    cuisine,
	})
}

// Get all products that belong to a category
func (c *CategoryController) GetCategoryProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	products := c.svc.ProductsByCategory(ctx, categoryId)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// Create a category
func (c *CategoryController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var input services.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(input); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	// The owning cuisine must exist before attaching a category to it
	if cuisine := c.svc.CuisineByID(ctx, input.CuisineID); cuisine == nil {
		http.Error(w, `{"success": false, "message": "Invalid cuisine ID, cuisine not found"}`, http.StatusNotFound)
		return
	}

	categoryId, err := c.svc.AddCategory(ctx, input)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Category could not be created"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Category created successfully",
		"data":    map[string]interface{}{"category_id": categoryId},
	})
}

// Update a category
func (c *CategoryController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	var input services.CategoryUpdate
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

	if err := c.svc.UpdateCategory(ctx, categoryId, input); err != nil {
		http.Error(w, `{"success": false, "message": "Category update failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Category updated successfully",
		"data":    c.svc.CategoryByID(ctx, categoryId),
	})
}

// Delete a category
func (c *CategoryController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	if err := c.svc.DeleteCategory(ctx, categoryId); err != nil {
		http.Error(w, `{"success": false, "message": "Category deletion failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Category deleted successfully",
	})
}
