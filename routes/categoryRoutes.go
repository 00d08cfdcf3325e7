package routes

import (
	"net/http"

	controller "github.com/HafidLAADIMI/admin-restau-app/controllers"

	"github.com/gorilla/mux"
)

func CategoryProtectedRoutes(router *mux.Router, categories *controller.CategoryController) {

	router.HandleFunc("/categories", categories.GetCategories).Methods(http.MethodGet)
	router.HandleFunc("/categories", categories.CreateCategory).Methods(http.MethodPost)

	router.HandleFunc("/categories/{category_id}", categories.GetCategory).Methods(http.MethodGet)
	router.HandleFunc("/categories/{category_id}", categories.UpdateCategory).Methods(http.MethodPatch)
	router.HandleFunc("/categories/{category_id}", categories.DeleteCategory).Methods(http.MethodDelete)

	router.HandleFunc("/categories/{category_id}/cuisine", categories.GetCategoryCuisine).Methods(http.MethodGet)
	router.HandleFunc("/categories/{category_id}/products", categories.GetCategoryProducts).Methods(http.MethodGet)
}
