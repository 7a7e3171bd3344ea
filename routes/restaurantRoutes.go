package routes

import (
	"net/http"

	controller "github.com/Dhamodran16/SwadExpress/controllers"

	"github.com/gorilla/mux"
)

func RestaurantPublicRoutes(router *mux.Router) {
	router.HandleFunc("/restaurants", controller.GetRestaurants).Methods(http.MethodGet)
	router.HandleFunc("/restaurants/cuisine/{cuisine}", controller.GetRestaurantsByCuisine).Methods(http.MethodGet)
	router.HandleFunc("/restaurants/search/{query}", controller.SearchRestaurants).Methods(http.MethodGet)
	router.HandleFunc("/restaurants/{restaurant_id}", controller.GetRestaurant).Methods(http.MethodGet)
}

func RestaurantProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/restaurants", controller.CreateRestaurant).Methods(http.MethodPost)
	router.HandleFunc("/restaurants/{restaurant_id}", controller.UpdateRestaurant).Methods(http.MethodPut)
	router.HandleFunc("/restaurants/{restaurant_id}", controller.DeleteRestaurant).Methods(http.MethodDelete)
}
