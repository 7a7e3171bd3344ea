package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	database "github.com/Dhamodran16/SwadExpress/config"
	"github.com/Dhamodran16/SwadExpress/models"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var restaurantCollection *mongo.Collection = database.OpenCollection(database.Client, "restaurants")
var validate = validator.New()

// Get all restaurants
func GetRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cursor, err := restaurantCollection.Find(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching restaurants")
		return
	}
	defer cursor.Close(ctx)

	restaurants := []models.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding restaurants")
		return
	}

	respondJSON(w, http.StatusOK, restaurants)
}

// Get a single restaurant by ID
func GetRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(mux.Vars(r)["restaurant_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid restaurant ID")
		return
	}

	var restaurant models.Restaurant
	err = restaurantCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "Restaurant not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching restaurant")
		return
	}

	respondJSON(w, http.StatusOK, restaurant)
}

func CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var restaurant models.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErr := validate.Struct(restaurant); validationErr != nil {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	restaurant.ID = primitive.NewObjectID()
	restaurant.IsActive = true
	restaurant.CreatedAt = time.Now()
	restaurant.UpdatedAt = time.Now()

	if _, err := restaurantCollection.InsertOne(ctx, restaurant); err != nil {
		respondError(w, http.StatusInternalServerError, "Restaurant creation failed")
		return
	}

	respondJSON(w, http.StatusCreated, restaurant)
}

// UpdateRestaurant overlays the request body onto the stored document.
func UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(mux.Vars(r)["restaurant_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid restaurant ID")
		return
	}

	var restaurant models.Restaurant
	err = restaurantCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "Restaurant not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching restaurant")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	restaurant.ID = objectID
	restaurant.UpdatedAt = time.Now()

	if validationErr := validate.Struct(restaurant); validationErr != nil {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	if _, err := restaurantCollection.ReplaceOne(ctx, bson.M{"_id": objectID}, restaurant); err != nil {
		respondError(w, http.StatusInternalServerError, "Restaurant update failed")
		return
	}

	respondJSON(w, http.StatusOK, restaurant)
}

func DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(mux.Vars(r)["restaurant_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid restaurant ID")
		return
	}

	result, err := restaurantCollection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting restaurant")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Restaurant not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Restaurant deleted successfully"})
}

// Filter restaurants by cuisine
func GetRestaurantsByCuisine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cursor, err := restaurantCollection.Find(ctx, bson.M{"cuisine": mux.Vars(r)["cuisine"]})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching restaurants")
		return
	}
	defer cursor.Close(ctx)

	restaurants := []models.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding restaurants")
		return
	}

	respondJSON(w, http.StatusOK, restaurants)
}

// Search restaurants by name, case-insensitive
func SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{"name": bson.M{"$regex": mux.Vars(r)["query"], "$options": "i"}}
	cursor, err := restaurantCollection.Find(ctx, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error searching restaurants")
		return
	}
	defer cursor.Close(ctx)

	restaurants := []models.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding restaurants")
		return
	}

	respondJSON(w, http.StatusOK, restaurants)
}
