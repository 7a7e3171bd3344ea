package routes

import (
	"net/http"

	controller "github.com/Dhamodran16/SwadExpress/controllers"

	"github.com/gorilla/mux"
)

func HealthRoutes(router *mux.Router) {
	router.HandleFunc("/health", controller.HealthCheck).Methods(http.MethodGet)
}
