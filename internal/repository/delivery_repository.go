package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jiffy-backoffice-api-server/internal/models"
)

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *models.Delivery) error
}

type deliveryRepository struct {
	coll *mongo.Collection
}

func NewDeliveryRepository(db *mongo.Database) DeliveryRepository {
	return &deliveryRepository{coll: db.Collection(DeliveriesCollection)}
}

func (r *deliveryRepository) Create(ctx context.Context, delivery *models.Delivery) error {
	delivery.CreatedAt = time.Now()

	id, err := insertOne(ctx, r.coll, "repository.Delivery.Create", delivery)
	if err != nil {
		return err
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		delivery.ID = oid
	}
	return nil
}
