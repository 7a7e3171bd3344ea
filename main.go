package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	middleware "github.com/Dhamodran16/SwadExpress/middlewares"
	routes "github.com/Dhamodran16/SwadExpress/routes"
	"github.com/joho/godotenv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// LoadEnv loads environment variables from the .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

func main() {
	// Load environment variables
	LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := mux.NewRouter()

	// Public Routes (No Authentication)
	routes.HealthRoutes(router)
	routes.RestaurantPublicRoutes(router)
	routes.MenuPublicRoutes(router)
	routes.UserPublicRoutes(router)

	// Apply Authentication Middleware to Protected Routes
	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication)
	routes.RestaurantProtectedRoutes(securedRoutes)
	routes.MenuProtectedRoutes(securedRoutes)
	routes.OrderProtectedRoutes(securedRoutes)
	routes.CartProtectedRoutes(securedRoutes)
	routes.UserProtectedRoutes(securedRoutes)

	// The browser client runs on another origin
	allowedOrigins := []string{"http://localhost:5174"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	log.Printf("Server running on port %s", port)
	if err := http.ListenAndServe(":"+port, corsHandler.Handler(router)); err != nil {
		log.Fatal(err)
	}
}
