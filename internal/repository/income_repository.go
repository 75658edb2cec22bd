package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jiffy-backoffice-api-server/internal/models"
)

type IncomeRepository interface {
	Create(ctx context.Context, record *models.IncomeRecord) error
	// ListSince returns records dated at or after from.
	ListSince(ctx context.Context, from time.Time) ([]models.IncomeRecord, error)
}

type incomeRepository struct {
	coll *mongo.Collection
}

func NewIncomeRepository(db *mongo.Database) IncomeRepository {
	return &incomeRepository{coll: db.Collection(IncomeCollection)}
}

func (r *incomeRepository) Create(ctx context.Context, record *models.IncomeRecord) error {
	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	id, err := insertOne(ctx, r.coll, "repository.Income.Create", record)
	if err != nil {
		return err
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		record.ID = oid
	}
	return nil
}

func (r *incomeRepository) ListSince(ctx context.Context, from time.Time) ([]models.IncomeRecord, error) {
	return findAll[models.IncomeRecord](ctx, r.coll, "repository.Income.ListSince", bson.M{"Date": bson.M{"$gte": from}})
}
