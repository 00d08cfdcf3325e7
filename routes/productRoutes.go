package routes

import (
	"net/http"

	controller "github.com/HafidLAADIMI/admin-restau-app/controllers"

	"github.com/gorilla/mux"
)

func ProductProtectedRoutes(router *mux.Router, products *controller.ProductController) {
	router.HandleFunc("/products", products.CreateProduct).Methods(http.MethodPost)
	router.HandleFunc("/products/{product_id}", products.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/products/{product_id}", products.UpdateProduct).Methods(http.MethodPatch)
	router.HandleFunc("/products/{product_id}", products.DeleteProduct).Methods(http.MethodDelete)
}
