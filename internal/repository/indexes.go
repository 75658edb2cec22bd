package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes backing the handler-level uniqueness checks.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := []struct {
		coll  string
		field string
	}{
		{UsersCollection, "email"},
		{EmployeesCollection, "email"},
		{FactoriesCollection, "fId"},
		{MachinesCollection, "mId"},
	}

	for _, u := range unique {
		_, err := db.Collection(u.coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: u.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("repository.EnsureIndexes %s.%s: %w", u.coll, u.field, err)
		}
	}

	_, err := db.Collection(CartsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "Item_number", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("repository.EnsureIndexes carts: %w", err)
	}

	_, err = db.Collection(IncomeCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "Date", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("repository.EnsureIndexes income: %w", err)
	}
	return nil
}
