package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description  string             `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price" validate:"gte=0"`
	Category     string             `bson:"category" json:"category"`
	Image        string             `bson:"image" json:"image"`
	RestaurantID primitive.ObjectID `bson:"restaurantId" json:"restaurantId" validate:"required"`
	IsAvailable  bool               `bson:"isAvailable" json:"isAvailable"`
	DeliveryTime string             `bson:"deliveryTime,omitempty" json:"deliveryTime,omitempty"` // e.g. "25-30"
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
