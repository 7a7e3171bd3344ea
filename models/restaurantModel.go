package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantAddress struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
}

type Restaurant struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Cuisine      string             `bson:"cuisine" json:"cuisine" validate:"required"`
	Rating       float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	DeliveryTime string             `bson:"deliveryTime" json:"deliveryTime"` // e.g. "30-45 min"
	MinOrder     float64            `bson:"minOrder" json:"minOrder" validate:"gte=0"`
	Distance     float64            `bson:"distance" json:"distance"`
	Image        string             `bson:"image" json:"image"`
	Address      RestaurantAddress  `bson:"address" json:"address"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
