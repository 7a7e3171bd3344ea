package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	database "github.com/Dhamodran16/SwadExpress/config"
	"github.com/Dhamodran16/SwadExpress/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var menuCollection *mongo.Collection = database.OpenCollection(database.Client, "menuitems")

func findMenuItems(ctx context.Context, w http.ResponseWriter, filter bson.M) {
	cursor, err := menuCollection.Find(ctx, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching menu items")
		return
	}
	defer cursor.Close(ctx)

	menuItems := []models.MenuItem{}
	if err := cursor.All(ctx, &menuItems); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding menu items")
		return
	}

	respondJSON(w, http.StatusOK, menuItems)
}

// Get all menu items
func GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	findMenuItems(ctx, w, bson.M{})
}

// Get menu items for a specific restaurant
func GetMenuItemsByRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	restaurantID, err := primitive.ObjectIDFromHex(mux.Vars(r)["restaurant_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid restaurant ID")
		return
	}

	findMenuItems(ctx, w, bson.M{"restaurantId": restaurantID})
}

// Get a single menu item
func GetMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(mux.Vars(r)["menu_item_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	var menuItem models.MenuItem
	err = menuCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&menuItem)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "Menu item not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching menu item")
		return
	}

	respondJSON(w, http.StatusOK, menuItem)
}

func CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var menuItem models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&menuItem); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErr := validate.Struct(menuItem); validationErr != nil {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	menuItem.ID = primitive.NewObjectID()
	menuItem.IsAvailable = true
	menuItem.CreatedAt = time.Now()
	menuItem.UpdatedAt = time.Now()

	if _, err := menuCollection.InsertOne(ctx, menuItem); err != nil {
		respondError(w, http.StatusInternalServerError, "Menu item creation failed")
		return
	}

	respondJSON(w, http.StatusCreated, menuItem)
}

// UpdateMenuItem overlays the request body onto the stored document.
func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(mux.Vars(r)["menu_item_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	var menuItem models.MenuItem
	err = menuCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&menuItem)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "Menu item not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching menu item")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&menuItem); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	menuItem.ID = objectID
	menuItem.UpdatedAt = time.Now()

	if validationErr := validate.Struct(menuItem); validationErr != nil {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	if _, err := menuCollection.ReplaceOne(ctx, bson.M{"_id": objectID}, menuItem); err != nil {
		respondError(w, http.StatusInternalServerError, "Menu item update failed")
		return
	}

	respondJSON(w, http.StatusOK, menuItem)
}

func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(mux.Vars(r)["menu_item_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	result, err := menuCollection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting menu item")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Menu item deleted successfully"})
}

// Filter menu items by category
func GetMenuItemsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	findMenuItems(ctx, w, bson.M{"category": mux.Vars(r)["category"]})
}

// Search menu items by name, case-insensitive
func SearchMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	findMenuItems(ctx, w, bson.M{"name": bson.M{"$regex": mux.Vars(r)["query"], "$options": "i"}})
}
