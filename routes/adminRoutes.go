package routes

import (
	"net/http"

	controller "github.com/HafidLAADIMI/admin-restau-app/controllers"

	"github.com/gorilla/mux"
)

// AdminPublicRoutes registers the unauthenticated signup and login endpoints.
func AdminPublicRoutes(router *mux.Router, admins *controller.AdminController) {
	router.HandleFunc("/admin/signup", admins.SignUp).Methods(http.MethodPost)
	router.HandleFunc("/admin/login", admins.Login).Methods(http.MethodPost)
}
