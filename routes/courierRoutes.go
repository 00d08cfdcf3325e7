package routes

import (
	"net/http"

	controller "github.com/HafidLAADIMI/admin-restau-app/controllers"

	"github.com/gorilla/mux"
)

func CourierProtectedRoutes(router *mux.Router, couriers *controller.CourierController) {
	router.HandleFunc("/deliverymen", couriers.GetCouriers).Methods(http.MethodGet)
	router.HandleFunc("/deliverymen", couriers.CreateCourier).Methods(http.MethodPost)
	router.HandleFunc("/deliverymen/{courier_id}", couriers.GetCourier).Methods(http.MethodGet)
	router.HandleFunc("/deliverymen/{courier_id}", couriers.DeleteCourier).Methods(http.MethodDelete)
}
