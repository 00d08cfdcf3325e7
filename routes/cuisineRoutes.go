package routes

import (
	"net/http"

	controller "github.com/HafidLAADIMI/admin-restau-app/controllers"

	"github.com/gorilla/mux"
)

func CuisineProtectedRoutes(router *mux.Router, cuisines *controller.CuisineController) {

	router.HandleFunc("/cuisines", cuisines.GetCuisines).Methods(http.MethodGet)
	router.HandleFunc("/cuisines", cuisines.CreateCuisine).Methods(http.MethodPost)

	router.HandleFunc("/cuisines/{cuisine_id}", cuisines.GetCuisine).Methods(http.MethodGet)
	router.HandleFunc("/cuisines/{cuisine_id}", cuisines.UpdateCuisine).Methods(http.MethodPatch)
	router.HandleFunc("/cuisines/{cuisine_id}", cuisines.DeleteCuisine).Methods(http.MethodDelete)

	router.HandleFunc("/cuisines/{cuisine_id}/products", cuisines.GetCuisineProducts).Methods(http.MethodGet)
}
