package helper

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Dhamodran16/SwadExpress/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DeliveryFee is the flat fee applied to every order.
	DeliveryFee = 3.99
	// TaxRate is applied to the item subtotal.
	TaxRate = 0.08
)

// RoundToCents rounds a currency amount to two decimals.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Subtotal is the sum of price times quantity over the order items.
func Subtotal(items []models.OrderItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// OrderTotal computes the frozen order total: subtotal plus the flat
// delivery fee plus tax, rounded to cents. It is computed once at submission
// and never recomputed.
func OrderTotal(subtotal float64) float64 {
	return RoundToCents(subtotal + DeliveryFee + TaxRate*subtotal)
}

// OrderHistorySort returns the find options for order listings: newest first
// by creation time. Every history query goes through this.
func OrderHistorySort() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// GenerateOrderNumber produces a human-readable order number of the form
// ORD-nnnnnn with six random decimal digits. Uniqueness is not enforced.
func GenerateOrderNumber() string {
	return fmt.Sprintf("ORD-%d", 100000+rand.Intn(900000))
}
