package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Delivery struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ReceiverName string             `bson:"recieverName" json:"recieverName"`
	OrderID      string             `bson:"orderID" json:"orderID"`
	Address      string             `bson:"address" json:"address"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
