package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Dhamodran16/SwadExpress/cart"
	database "github.com/Dhamodran16/SwadExpress/config"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var cartCollection *mongo.Collection = database.OpenCollection(database.Client, "carts")

// mongoCartStorage keeps one document per owner holding the full serialized
// line array, the server-backed equivalent of the browser's single storage
// key. It satisfies the cart engine's storage port.
type mongoCartStorage struct {
	firebaseUid string
}

type cartDocument struct {
	FirebaseUid string      `bson:"firebaseUid"`
	Items       []cart.Line `bson:"items"`
	UpdatedAt   time.Time   `bson:"updatedAt"`
}

func (s mongoCartStorage) Load() ([]cart.Line, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var document cartDocument
	err := cartCollection.FindOne(ctx, bson.M{"firebaseUid": s.firebaseUid}).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return document.Items, nil
}

func (s mongoCartStorage) Save(lines []cart.Line) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if lines == nil {
		lines = []cart.Line{}
	}
	document := cartDocument{FirebaseUid: s.firebaseUid, Items: lines, UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	_, err := cartCollection.ReplaceOne(ctx, bson.M{"firebaseUid": s.firebaseUid}, document, opts)
	return err
}

func cartEngineFor(firebaseUid string) *cart.Engine {
	return cart.NewEngine(mongoCartStorage{firebaseUid: firebaseUid})
}

func respondCart(w http.ResponseWriter, status int, engine *cart.Engine) {
	respondJSON(w, status, map[string]interface{}{
		"items":      engine.Items(),
		"totalPrice": engine.TotalPrice(),
		"itemCount":  engine.ItemCount(),
	})
}

// Get the cart for a user
func GetCart(w http.ResponseWriter, r *http.Request) {
	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}
	respondCart(w, http.StatusOK, cartEngineFor(firebaseUid))
}

// AddCartItem appends a line or merges quantities into an existing one.
func AddCartItem(w http.ResponseWriter, r *http.Request) {
	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var line cart.Line
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if line.ID == "" || line.Price < 0 || line.Quantity <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid cart item")
		return
	}

	engine := cartEngineFor(firebaseUid)
	engine.AddItem(line)
	respondCart(w, http.StatusOK, engine)
}

// UpdateCartItem sets a line's quantity; zero or less removes the line.
func UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var requestBody struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	engine := cartEngineFor(firebaseUid)
	engine.UpdateQuantity(mux.Vars(r)["item_id"], requestBody.Quantity)
	respondCart(w, http.StatusOK, engine)
}

func RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}
	engine := cartEngineFor(firebaseUid)
	engine.RemoveItem(mux.Vars(r)["item_id"])
	respondCart(w, http.StatusOK, engine)
}

func ClearCart(w http.ResponseWriter, r *http.Request) {
	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}
	engine := cartEngineFor(firebaseUid)
	engine.Clear()
	respondCart(w, http.StatusOK, engine)
}
