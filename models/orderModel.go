package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a frozen snapshot of a cart line at submission time. It does
// not reference the live MenuItem document.
type OrderItem struct {
	MenuItemID     string  `bson:"menuItemId" json:"menuItemId" validate:"required"`
	Name           string  `bson:"name" json:"name" validate:"required"`
	Price          float64 `bson:"price" json:"price" validate:"gte=0"`
	Quantity       int     `bson:"quantity" json:"quantity" validate:"gt=0"`
	RestaurantName string  `bson:"restaurantName" json:"restaurantName"`
	Image          string  `bson:"image,omitempty" json:"image,omitempty"`
	DeliveryTime   string  `bson:"deliveryTime,omitempty" json:"deliveryTime,omitempty"`
}

type PaymentDetails struct {
	CardNumber         string `bson:"cardNumber,omitempty" json:"cardNumber,omitempty"`
	CardName           string `bson:"cardName,omitempty" json:"cardName,omitempty"`
	CardExpiry         string `bson:"cardExpiry,omitempty" json:"cardExpiry,omitempty"`
	CardCVV            string `bson:"cardCVV,omitempty" json:"cardCVV,omitempty"`
	DigitalPaymentCode string `bson:"digitalPaymentCode,omitempty" json:"digitalPaymentCode,omitempty"`
}

// PaymentMethod is a tagged variant: "credit", "digital" or "cash".
type PaymentMethod struct {
	Type    string         `bson:"type" json:"type" validate:"required,oneof=credit digital cash"`
	Details PaymentDetails `bson:"details" json:"details"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID          string             `bson:"userId" json:"userId" validate:"required"`
	Items           []OrderItem        `bson:"items" json:"items" validate:"required,min=1,dive"`
	Total           float64            `bson:"total" json:"total"`
	Status          string             `bson:"status" json:"status"`
	OrderNumber     string             `bson:"orderNumber" json:"orderNumber"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
	DeliveryAddress Address            `bson:"deliveryAddress" json:"deliveryAddress"`
	PaymentMethod   PaymentMethod      `bson:"paymentMethod" json:"paymentMethod" validate:"required"`
	UserFirebaseUid string             `bson:"userFirebaseUid" json:"userFirebaseUid" validate:"required"`
}
