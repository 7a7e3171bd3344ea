package middleware

import (
	"context"
	"net/http"
	"strings"

	helper "github.com/Dhamodran16/SwadExpress/helper"
)

// Context keys to store user information
type contextKey string

const (
	FirebaseUidKey contextKey = "firebaseUid"
	EmailKey       contextKey = "email"
)

// Authentication middleware for Gorilla Mux
func Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientToken := r.Header.Get("Authorization")
		if clientToken == "" {
			http.Error(w, "No Authorization header provided", http.StatusUnauthorized)
			return
		}

		// Token format should be "Bearer <token>"
		tokenParts := strings.Split(clientToken, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization format", http.StatusUnauthorized)
			return
		}

		tokenString := tokenParts[1]
		claims, err := helper.ValidateToken(tokenString)
		if err != "" {
			http.Error(w, err, http.StatusUnauthorized)
			return
		}

		// Store user details in the request context
		ctx := context.WithValue(r.Context(), FirebaseUidKey, claims.FirebaseUid)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)

		// Pass modified request with context to the next handler
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext retrieves user data from the request context
func GetUserFromContext(r *http.Request) (firebaseUid, email string) {
	firebaseUid, _ = r.Context().Value(FirebaseUidKey).(string)
	email, _ = r.Context().Value(EmailKey).(string)
	return
}

// AuthorizedFor reports whether the authenticated caller owns the given uid.
func AuthorizedFor(r *http.Request, firebaseUid string) bool {
	uid, _ := GetUserFromContext(r)
	return uid != "" && uid == firebaseUid
}
