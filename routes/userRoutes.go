package routes

import (
	"net/http"

	controller "github.com/Dhamodran16/SwadExpress/controllers"

	"github.com/gorilla/mux"
)

func UserPublicRoutes(router *mux.Router) {
	router.HandleFunc("/users", controller.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/users/{firebase_uid}/token", controller.IssueToken).Methods(http.MethodPost)
}

func UserProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/users/{firebase_uid}", controller.GetUserByFirebaseUid).Methods(http.MethodGet)
	router.HandleFunc("/users/{firebase_uid}", controller.UpdateUser).Methods(http.MethodPatch)
	router.HandleFunc("/users/{firebase_uid}", controller.DeleteUser).Methods(http.MethodDelete)
	router.HandleFunc("/users/{firebase_uid}/address", controller.UpsertAddress).Methods(http.MethodPatch)
	router.HandleFunc("/users/{firebase_uid}/address/{address_id}", controller.DeleteAddress).Methods(http.MethodDelete)
	router.HandleFunc("/users/{firebase_uid}/password", controller.ChangePassword).Methods(http.MethodPatch)
}
