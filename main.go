package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	config "github.com/HafidLAADIMI/admin-restau-app/config"
	controller "github.com/HafidLAADIMI/admin-restau-app/controllers"
	middleware "github.com/HafidLAADIMI/admin-restau-app/middlewares"
	routes "github.com/HafidLAADIMI/admin-restau-app/routes"
	"github.com/HafidLAADIMI/admin-restau-app/services"
	"github.com/HafidLAADIMI/admin-restau-app/store"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	fsClient := config.NewFirestoreClient(ctx, cfg)
	defer fsClient.Close()

	st := store.New(fsClient)

	uploader := services.NewCloudinaryService(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)
	orderService := services.NewOrderService(st)
	catalogService := services.NewCatalogService(st, uploader)
	courierService := services.NewCourierService(st)

	orderController := controller.NewOrderController(orderService)
	cuisineController := controller.NewCuisineController(catalogService)
	categoryController := controller.NewCategoryController(catalogService)
	productController := controller.NewProductController(catalogService)
	courierController := controller.NewCourierController(courierService)
	adminController := controller.NewAdminController(st, cfg.SecretKey)
	uploadController := controller.NewUploadController(uploader)

	router := mux.NewRouter()

	// Public Routes (No Authentication)
	routes.AdminPublicRoutes(router, adminController)

	// Apply Authentication Middleware to Protected Routes
	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication(cfg.SecretKey))
	routes.OrderProtectedRoutes(securedRoutes, orderController)
	routes.CuisineProtectedRoutes(securedRoutes, cuisineController)
	routes.CategoryProtectedRoutes(securedRoutes, categoryController)
	routes.ProductProtectedRoutes(securedRoutes, productController)
	routes.CourierProtectedRoutes(securedRoutes, courierController)
	routes.UploadProtectedRoutes(securedRoutes, uploadController)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)

	log.Printf("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal(err)
	}
}
