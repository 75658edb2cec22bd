package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is an inventory product that can be put in a cart.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"product_name" json:"product_name"`
	UnitPrice   float64            `bson:"unit_price" json:"unit_price"`
	Quantity    int                `bson:"quantity" json:"quantity"` // stock on hand
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
