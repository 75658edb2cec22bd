package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IncomeRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderID     string             `bson:"Order_id" json:"Order_id"`
	TotalAmount float64            `bson:"total_Amount" json:"total_Amount"`
	Date        time.Time          `bson:"Date" json:"Date"`
}

// MonthlyIncome is one bucket of the income overview.
type MonthlyIncome struct {
	Date   string  `json:"date"`
	Income float64 `json:"income"`
}

// MonthlyUsage is one bucket of the account usage report.
type MonthlyUsage struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}
