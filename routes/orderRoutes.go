package routes

import (
	"net/http"

	controller "github.com/HafidLAADIMI/admin-restau-app/controllers"

	"github.com/gorilla/mux"
)

func OrderProtectedRoutes(router *mux.Router, orders *controller.OrderController) {

	router.HandleFunc("/orders", orders.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{user_id}/{order_id}", orders.GetOrder).Methods(http.MethodGet)

	router.HandleFunc("/orders/{user_id}/{order_id}/status", orders.UpdateOrderStatus).Methods(http.MethodPatch)
	router.HandleFunc("/orders/{user_id}/{order_id}/status/advance", orders.AdvanceOrderStatus).Methods(http.MethodPatch)
}
