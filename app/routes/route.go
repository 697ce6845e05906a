package routes

import (
	"github.com/ardhimaulana/go-foodorder/app/handlers"
	"github.com/ardhimaulana/go-foodorder/app/middlewares"
	"github.com/ardhimaulana/go-foodorder/app/repositories"
	"github.com/ardhimaulana/go-foodorder/app/utils/renderer"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares.RequestLogMiddleware)
	router.Use(middlewares.RecoverMiddleware)

	rnd := renderer.New()
	validate := handlers.NewValidator()

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db, orderItemRepo)

	categoryHandler := handlers.NewCategoryHandler(categoryRepo, rnd, validate)
	productHandler := handlers.NewProductHandler(productRepo, rnd, validate)
	orderHandler := handlers.NewOrderHandler(orderRepo, rnd, validate)
	healthHandler := handlers.NewHealthHandler(rnd)

	router.HandleFunc("/categories", categoryHandler.GetAll).Methods("GET")
	router.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	router.HandleFunc("/categories/{id:[0-9]+}", categoryHandler.GetByID).Methods("GET")
	router.HandleFunc("/categories/{id:[0-9]+}", categoryHandler.Update).Methods("PUT")
	router.HandleFunc("/categories/{id:[0-9]+}", categoryHandler.Delete).Methods("DELETE")

	router.HandleFunc("/products", productHandler.GetAll).Methods("GET")
	router.HandleFunc("/products", productHandler.Create).Methods("POST")
	router.HandleFunc("/products/category/{id:[0-9]+}", productHandler.GetByCategory).Methods("GET")
	router.HandleFunc("/products/{id:[0-9]+}", productHandler.GetByID).Methods("GET")
	router.HandleFunc("/products/{id:[0-9]+}", productHandler.Update).Methods("PUT")
	router.HandleFunc("/products/{id:[0-9]+}", productHandler.Delete).Methods("DELETE")

	router.HandleFunc("/orders", orderHandler.GetAll).Methods("GET")
	router.HandleFunc("/orders", orderHandler.Create).Methods("POST")
	router.HandleFunc("/orders/{id:[0-9]+}", orderHandler.GetByID).Methods("GET")
	router.HandleFunc("/orders/{id:[0-9]+}/status", orderHandler.UpdateStatus).Methods("PUT")
	router.HandleFunc("/orders/{id:[0-9]+}", orderHandler.Delete).Methods("DELETE")

	router.HandleFunc("/health", healthHandler.Check).Methods("GET")

	return router
}
