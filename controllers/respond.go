package controller

import (
	"encoding/json"
	"net/http"

	middleware "github.com/Dhamodran16/SwadExpress/middlewares"

	"github.com/gorilla/mux"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// requireOwner rejects requests whose bearer token does not match the
// firebase_uid in the URL. It returns the uid on success.
func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	firebaseUid := mux.Vars(r)["firebase_uid"]
	if !middleware.AuthorizedFor(r, firebaseUid) {
		respondError(w, http.StatusForbidden, "Token does not match requested user")
		return "", false
	}
	return firebaseUid, true
}
