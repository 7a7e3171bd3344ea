package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Label      string             `bson:"label,omitempty" json:"label,omitempty"`
	Street     string             `bson:"street" json:"street"`
	City       string             `bson:"city" json:"city"`
	State      string             `bson:"state" json:"state"`
	PostalCode string             `bson:"postalCode" json:"postalCode"`
	IsDefault  bool               `bson:"isDefault" json:"isDefault"`
}

type User struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirebaseUid            string             `bson:"firebaseUid" json:"firebaseUid" validate:"required"`
	DisplayName            string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Email                  string             `bson:"email" json:"email" validate:"required,email"`
	Phone                  string             `bson:"phone,omitempty" json:"phone,omitempty"`
	PhotoURL               string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Addresses              []Address          `bson:"addresses" json:"addresses"`
	HomeAddress            string             `bson:"address,omitempty" json:"address,omitempty"`
	DeliveryAddress        string             `bson:"deliveryAddress,omitempty" json:"deliveryAddress,omitempty"`
	DefaultAddress         string             `bson:"defaultAddress,omitempty" json:"defaultAddress,omitempty"`
	SpecialInstructions    string             `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`
	PreferredPaymentMethod string             `bson:"preferredPaymentMethod" json:"preferredPaymentMethod"`
	Password               string             `bson:"password,omitempty" json:"-"`
	CreatedAt              time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time          `bson:"updatedAt" json:"updatedAt"`
}
