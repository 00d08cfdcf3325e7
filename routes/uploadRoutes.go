package routes

import (
	"net/http"

	controller "github.com/HafidLAADIMI/admin-restau-app/controllers"

	"github.com/gorilla/mux"
)

func UploadProtectedRoutes(router *mux.Router, uploads *controller.UploadController) {
	router.HandleFunc("/uploads/images", uploads.UploadImage).Methods(http.MethodPost)
}
