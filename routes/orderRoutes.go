package routes

import (
	"net/http"

	controller "github.com/Dhamodran16/SwadExpress/controllers"

	"github.com/gorilla/mux"
)

func OrderProtectedRoutes(router *mux.Router) {

	router.HandleFunc("/orders", controller.CreateOrder).Methods(http.MethodPost)

	router.HandleFunc("/orders/user/{user_id}", controller.GetOrdersByUserId).Methods(http.MethodGet)
	router.HandleFunc("/orders/firebase/{firebase_uid}", controller.GetOrdersByFirebaseUid).Methods(http.MethodGet)

	router.HandleFunc("/orders/{order_id}", controller.GetOrderById).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}/status", controller.UpdateOrderStatus).Methods(http.MethodPatch)
	router.HandleFunc("/orders/{order_id}/track", controller.TrackOrder).Methods(http.MethodGet)
}
