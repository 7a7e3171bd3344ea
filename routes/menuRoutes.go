package routes

import (
	"net/http"

	controller "github.com/Dhamodran16/SwadExpress/controllers"

	"github.com/gorilla/mux"
)

func MenuPublicRoutes(router *mux.Router) {
	router.HandleFunc("/menu", controller.GetMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menu/restaurant/{restaurant_id}", controller.GetMenuItemsByRestaurant).Methods(http.MethodGet)
	router.HandleFunc("/menu/category/{category}", controller.GetMenuItemsByCategory).Methods(http.MethodGet)
	router.HandleFunc("/menu/search/{query}", controller.SearchMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menu/{menu_item_id}", controller.GetMenuItem).Methods(http.MethodGet)
}

func MenuProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/menu", controller.CreateMenuItem).Methods(http.MethodPost)
	router.HandleFunc("/menu/{menu_item_id}", controller.UpdateMenuItem).Methods(http.MethodPatch)
	router.HandleFunc("/menu/{menu_item_id}", controller.DeleteMenuItem).Methods(http.MethodDelete)
}
