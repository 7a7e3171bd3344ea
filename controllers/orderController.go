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
	"github.com/Dhamodran16/SwadExpress/tracking"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "orders")

// orderStatusStore lets the tracking reconciler push derived stages back
// into the orders collection.
type orderStatusStore struct{}

func (orderStatusStore) UpdateStatus(ctx context.Context, orderID string, status string) error {
	objectID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return err
	}
	_, err = orderCollection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{"status": status, "updatedAt": time.Now()},
	})
	return err
}

var statusReconciler = tracking.NewReconciler(orderStatusStore{})

// validOrderStatuses are the accepted lifecycle labels: the submission
// default plus the four delivery stages.
var validOrderStatuses = map[string]bool{
	"processing":                 true,
	tracking.StageConfirmed:      true,
	tracking.StagePreparing:      true,
	tracking.StageOutForDelivery: true,
	tracking.StageDelivered:      true,
}

func deliveryRanges(items []models.OrderItem) []string {
	ranges := make([]string, 0, len(items))
	for _, item := range items {
		ranges = append(ranges, item.DeliveryTime)
	}
	return ranges
}

// CreateOrder materializes a cart into an immutable order. The total and
// order number are assigned here, never taken from the client.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErr := validate.Struct(order); validationErr != nil {
		respondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	if err := helper.ValidatePaymentMethod(&order.PaymentMethod); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Totals are frozen at submission and never recomputed.
	order.Total = helper.OrderTotal(helper.Subtotal(order.Items))
	order.OrderNumber = helper.GenerateOrderNumber()
	if order.Status == "" {
		order.Status = "processing"
	}
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		respondError(w, http.StatusInternalServerError, "Order creation failed")
		return
	}

	// Follow the order through its stage boundaries so the stored status
	// advances even when no client polls the tracking endpoint.
	avg := tracking.AverageEstimate(deliveryRanges(order.Items))
	watcher := tracking.NewWatcher(statusReconciler, order.ID.Hex(), order.CreatedAt, avg)
	watcher.Start(order.Status)

	respondJSON(w, http.StatusCreated, order)
}

func findOrders(ctx context.Context, w http.ResponseWriter, filter bson.M) {
	cursor, err := orderCollection.Find(ctx, filter, helper.OrderHistorySort())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		respondError(w, http.StatusInternalServerError, "Error decoding orders")
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// Get all orders for a user by legacy user id, newest first
func GetOrdersByUserId(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	findOrders(ctx, w, bson.M{"userId": mux.Vars(r)["user_id"]})
}

// Get all orders for a user by identity-provider uid, newest first
func GetOrdersByFirebaseUid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	firebaseUid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	findOrders(ctx, w, bson.M{"userFirebaseUid": firebaseUid})
}

func GetOrderById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(mux.Vars(r)["order_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	err = orderCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus patches the status field after validating the label.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(mux.Vars(r)["order_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var requestBody struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validOrderStatuses[requestBody.Status] {
		respondError(w, http.StatusBadRequest, "Invalid order status")
		return
	}

	update := bson.M{"$set": bson.M{"status": requestBody.Status, "updatedAt": time.Now()}}
	result, err := orderCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	if result.MatchedCount == 0 {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	var order models.Order
	if err := orderCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order); err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching updated order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// TrackOrder derives the current delivery stage from the order's age and its
// items' declared delivery-time ranges, reconciles the stored status, and
// returns the full timeline.
func TrackOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(mux.Vars(r)["order_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	err = orderCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching order")
		return
	}

	ranges := deliveryRanges(order.Items)
	avg := tracking.AverageEstimate(ranges)
	now := time.Now()

	stage := statusReconciler.Reconcile(ctx, order.ID.Hex(), order.Status, order.CreatedAt, now, avg)
	order.Status = stage

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order":             order,
		"status":            stage,
		"estimatedDelivery": tracking.EstimateLabel(ranges),
		"paymentMethod":     helper.FormatPaymentMethod(order.PaymentMethod),
		"timeline":          tracking.TimelineAt(order.CreatedAt, now, avg),
	})
}
