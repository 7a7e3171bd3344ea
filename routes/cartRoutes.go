package routes

import (
	"net/http"

	controller "github.com/Dhamodran16/SwadExpress/controllers"

	"github.com/gorilla/mux"
)

func CartProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/cart/{firebase_uid}", controller.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart/{firebase_uid}", controller.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/cart/{firebase_uid}/items", controller.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/{firebase_uid}/items/{item_id}", controller.UpdateCartItem).Methods(http.MethodPatch)
	router.HandleFunc("/cart/{firebase_uid}/items/{item_id}", controller.RemoveCartItem).Methods(http.MethodDelete)
}
