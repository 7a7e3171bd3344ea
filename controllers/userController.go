package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	database "github.com/Dhamodran16/SwadExpress/config"
	"github.com/Dhamodran16/SwadExpress/helper"
	"github.com/Dhamodran16/SwadExpress/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "users")

func findUser(ctx context.Context, firebaseUid string) (models.User, error) {
	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"firebaseUid": firebaseUid}).Decode(&user)
	return user, err
}

// syncDefaultAddress keeps the flattened defaultAddress string aligned with
// the default entry of the addresses array.
func syncDefaultAddress(user *models.User) {
	if formatted := helper.FormatDefaultAddress(user.Addresses); formatted != "" {
		user.DefaultAddress = formatted
	}
}

// Get user profile by identity-provider uid
func GetUserByFirebaseUid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	user, err := findUser(ctx, firebaseUid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching user")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErr := validate.Struct(user); validationErr != nil {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	count, err := userCollection.CountDocuments(ctx, bson.M{"firebaseUid": user.FirebaseUid})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error checking user")
		return
	}
	if count > 0 {
		respondError(w, http.StatusConflict, "User already exists")
		return
	}

	user.ID = primitive.NewObjectID()
	user.PreferredPaymentMethod = "Cash on Delivery"
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	syncDefaultAddress(&user)

	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		respondError(w, http.StatusInternalServerError, "User creation failed")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// UpdateUser overlays the request body onto the stored profile.
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	user, err := findUser(ctx, firebaseUid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching user")
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user.FirebaseUid = firebaseUid

	// The overlay can blank required fields; re-check before replacing.
	if validationErr := validate.Struct(user); validationErr != nil {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	user.UpdatedAt = time.Now()
	syncDefaultAddress(&user)

	if _, err := userCollection.ReplaceOne(ctx, bson.M{"firebaseUid": firebaseUid}, user); err != nil {
		respondError(w, http.StatusInternalServerError, "User update failed")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	result, err := userCollection.DeleteOne(ctx, bson.M{"firebaseUid": firebaseUid})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting user")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

// UpsertAddress adds a new address, or edits an existing one when the body
// carries an addressId.
func UpsertAddress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	user, err := findUser(ctx, firebaseUid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching user")
		return
	}

	var requestBody struct {
		Address   models.Address `json:"address"`
		AddressID string         `json:"addressId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if requestBody.AddressID != "" {
		addressID, err := primitive.ObjectIDFromHex(requestBody.AddressID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid address ID")
			return
		}
		found := false
		for i := range user.Addresses {
			if user.Addresses[i].ID == addressID {
				requestBody.Address.ID = addressID
				user.Addresses[i] = requestBody.Address
				found = true
				break
			}
		}
		if !found {
			respondError(w, http.StatusNotFound, "Address not found")
			return
		}
	} else {
		requestBody.Address.ID = primitive.NewObjectID()
		user.Addresses = append(user.Addresses, requestBody.Address)
	}

	user.UpdatedAt = time.Now()
	syncDefaultAddress(&user)

	if _, err := userCollection.ReplaceOne(ctx, bson.M{"firebaseUid": firebaseUid}, user); err != nil {
		respondError(w, http.StatusInternalServerError, "Address update failed")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func DeleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	user, err := findUser(ctx, firebaseUid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching user")
		return
	}

	addressID, err := primitive.ObjectIDFromHex(mux.Vars(r)["address_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid address ID")
		return
	}

	kept := user.Addresses[:0]
	for _, address := range user.Addresses {
		if address.ID != addressID {
			kept = append(kept, address)
		}
	}
	user.Addresses = kept
	user.UpdatedAt = time.Now()
	syncDefaultAddress(&user)

	if _, err := userCollection.ReplaceOne(ctx, bson.M{"firebaseUid": firebaseUid}, user); err != nil {
		respondError(w, http.StatusInternalServerError, "Address delete failed")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// ChangePassword verifies the current password before storing a bcrypt hash
// of the new one.
func ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	user, err := findUser(ctx, firebaseUid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching user")
		return
	}

	var requestBody struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if requestBody.NewPassword == "" {
		respondError(w, http.StatusBadRequest, "New password is required")
		return
	}

	if user.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(requestBody.CurrentPassword)); err != nil {
			respondError(w, http.StatusBadRequest, "Current password does not match")
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(requestBody.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	update := bson.M{"$set": bson.M{"password": string(hashed), "updatedAt": time.Now()}}
	if _, err := userCollection.UpdateOne(ctx, bson.M{"firebaseUid": firebaseUid}, update); err != nil {
		respondError(w, http.StatusInternalServerError, "Password update failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

// IssueToken exchanges a known identity for a signed bearer token.
func IssueToken(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	user, err := findUser(ctx, mux.Vars(r)["firebase_uid"])
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching user")
		return
	}

	token, err := helper.GenerateToken(user.FirebaseUid, user.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
