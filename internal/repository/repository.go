// Package repository holds the MongoDB-backed stores for every collection.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jiffy-backoffice-api-server/internal/metrics"
)

const (
	UsersCollection      = "users"
	EmployeesCollection  = "employees"
	FactoriesCollection  = "factories"
	MachinesCollection   = "machines"
	CartsCollection      = "carts"
	ProductsCollection   = "inventoryproducts"
	IncomeCollection     = "incomehistories"
	DeliveriesCollection = "delivaries"
	SuppliersCollection  = "suppliers"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

func wrap(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, ErrDuplicateKey)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func returnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, op string, filter any) (*T, error) {
	defer metrics.ObserveDBRequest(op, time.Now())

	var out T
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, wrap(op, err)
	}
	return &out, nil
}

// findAll never returns a nil slice so handlers serialize [] instead of null.
func findAll[T any](ctx context.Context, coll *mongo.Collection, op string, filter any, opts ...*options.FindOptions) ([]T, error) {
	defer metrics.ObserveDBRequest(op, time.Now())

	if filter == nil {
		filter = bson.M{}
	}
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, wrap(op+" decode", err)
	}
	return out, nil
}

func updateOne[T any](ctx context.Context, coll *mongo.Collection, op string, filter any, set bson.M) (*T, error) {
	defer metrics.ObserveDBRequest(op, time.Now())

	var out T
	err := coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, returnAfter()).Decode(&out)
	if err != nil {
		return nil, wrap(op, err)
	}
	return &out, nil
}

func deleteOne[T any](ctx context.Context, coll *mongo.Collection, op string, filter any) (*T, error) {
	defer metrics.ObserveDBRequest(op, time.Now())

	var out T
	if err := coll.FindOneAndDelete(ctx, filter).Decode(&out); err != nil {
		return nil, wrap(op, err)
	}
	return &out, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, op string, doc any) (any, error) {
	defer metrics.ObserveDBRequest(op, time.Now())

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, wrap(op, err)
	}
	return res.InsertedID, nil
}
