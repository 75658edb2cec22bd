package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jiffy-backoffice-api-server/internal/models"
)

type CartRepository interface {
	Add(ctx context.Context, item *models.CartItem) error
	ListByCustomer(ctx context.Context, customerID string) ([]models.CartItem, error)
	FindItem(ctx context.Context, customerID, productID string) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, customerID, productID string, quantity int) (*models.CartItem, error)
	DeleteItem(ctx context.Context, customerID, productID string) (*models.CartItem, error)
}

type cartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) CartRepository {
	return &cartRepository{coll: db.Collection(CartsCollection)}
}

func itemFilter(customerID, productID string) bson.M {
	return bson.M{"customer_id": customerID, "Item_number": productID}
}

func (r *cartRepository) Add(ctx context.Context, item *models.CartItem) error {
	id, err := insertOne(ctx, r.coll, "repository.Cart.Add", item)
	if err != nil {
		return err
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

func (r *cartRepository) ListByCustomer(ctx context.Context, customerID string) ([]models.CartItem, error) {
	return findAll[models.CartItem](ctx, r.coll, "repository.Cart.ListByCustomer", bson.M{"customer_id": customerID})
}

func (r *cartRepository) FindItem(ctx context.Context, customerID, productID string) (*models.CartItem, error) {
	return findOne[models.CartItem](ctx, r.coll, "repository.Cart.FindItem", itemFilter(customerID, productID))
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, customerID, productID string, quantity int) (*models.CartItem, error) {
	return updateOne[models.CartItem](ctx, r.coll, "repository.Cart.UpdateQuantity",
		itemFilter(customerID, productID), bson.M{"quantity": quantity})
}

func (r *cartRepository) DeleteItem(ctx context.Context, customerID, productID string) (*models.CartItem, error) {
	return deleteOne[models.CartItem](ctx, r.coll, "repository.Cart.DeleteItem", itemFilter(customerID, productID))
}
