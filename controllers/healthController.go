package controller

import (
	"context"
	"net/http"
	"os"
	"time"

	database "github.com/Dhamodran16/SwadExpress/config"
)

// HealthCheck reports process and database health.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dbStatus := "connected"
	if err := database.Client.Ping(ctx, nil); err != nil {
		dbStatus = "disconnected"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"database":    dbStatus,
		"environment": environment,
	})
}
