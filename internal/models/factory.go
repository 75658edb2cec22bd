// server/internal/models/factory.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Factory struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FID            string             `bson:"fId" json:"fId"` // business identifier, e.g. "FAC001"
	Name           string             `bson:"fName" json:"fName"`
	Location       string             `bson:"fLocation" json:"fLocation"`
	NumOfEmployees int                `bson:"numOfEmployees" json:"numOfEmployees"`
	NumOfMachines  int                `bson:"numOfMachines" json:"numOfMachines"`
	NumOfVehicles  int                `bson:"numOfVehicles" json:"numOfVehicles"`
	CreatedDate    string             `bson:"createdDate" json:"createdDate"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
