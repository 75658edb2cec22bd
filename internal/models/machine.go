// server/internal/models/machine.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Machine struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	MID              string             `bson:"mId" json:"mId"`           // business identifier, e.g. "MCH001"
	Factory          string             `bson:"mFactory" json:"mFactory"` // Factory.FID or Factory.ID, not enforced
	Product          string             `bson:"product" json:"product"`
	MaxRunningHrs    float64            `bson:"maxRunningHrs" json:"maxRunningHrs"` // weekly
	InstalledDate    string             `bson:"installedDate" json:"installedDate"`
	TotalProductions float64            `bson:"totalProductions" json:"totalProductions"`
	TotalRunningHrs  float64            `bson:"totalRunningHrs" json:"totalRunningHrs"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
