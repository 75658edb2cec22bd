package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one product line in a customer's cart.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CustomerID string             `bson:"customer_id" json:"customer_id"`
	ProductID  string             `bson:"Item_number" json:"Item_number"`
	Quantity   int                `bson:"quantity" json:"quantity"`
}

// CartLine is a cart item joined with its product.
type CartLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// BillLine is one row of an e-bill.
type BillLine struct {
	ProductID    string  `json:"product_ID"`
	ProductName  string  `json:"product_Name"`
	Quantity     int     `json:"quantity"`
	ProductPrice float64 `json:"product_price"`
	TotalAmount  float64 `json:"total_Amount"`
}
