package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jiffy-backoffice-api-server/internal/models"
)

type FactoryRepository interface {
	Create(ctx context.Context, factory *models.Factory) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Factory, error)
	FindByFID(ctx context.Context, fID string) (*models.Factory, error)
	List(ctx context.Context) ([]models.Factory, error)
	Update(ctx context.Context, id primitive.ObjectID, factory *models.Factory) (*models.Factory, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Factory, error)
}

type factoryRepository struct {
	coll *mongo.Collection
}

func NewFactoryRepository(db *mongo.Database) FactoryRepository {
	return &factoryRepository{coll: db.Collection(FactoriesCollection)}
}

func (r *factoryRepository) Create(ctx context.Context, factory *models.Factory) error {
	now := time.Now()
	factory.CreatedAt, factory.UpdatedAt = now, now

	id, err := insertOne(ctx, r.coll, "repository.Factory.Create", factory)
	if err != nil {
		return err
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		factory.ID = oid
	}
	return nil
}

func (r *factoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Factory, error) {
	return findOne[models.Factory](ctx, r.coll, "repository.Factory.FindByID", bson.M{"_id": id})
}

func (r *factoryRepository) FindByFID(ctx context.Context, fID string) (*models.Factory, error) {
	return findOne[models.Factory](ctx, r.coll, "repository.Factory.FindByFID", bson.M{"fId": fID})
}

func (r *factoryRepository) List(ctx context.Context) ([]models.Factory, error) {
	return findAll[models.Factory](ctx, r.coll, "repository.Factory.List", bson.M{})
}

func (r *factoryRepository) Update(ctx context.Context, id primitive.ObjectID, f *models.Factory) (*models.Factory, error) {
	return updateOne[models.Factory](ctx, r.coll, "repository.Factory.Update", bson.M{"_id": id}, bson.M{
		"fId":            f.FID,
		"fName":          f.Name,
		"fLocation":      f.Location,
		"numOfEmployees": f.NumOfEmployees,
		"numOfMachines":  f.NumOfMachines,
		"numOfVehicles":  f.NumOfVehicles,
		"createdDate":    f.CreatedDate,
		"updatedAt":      time.Now(),
	})
}

func (r *factoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Factory, error) {
	return deleteOne[models.Factory](ctx, r.coll, "repository.Factory.Delete", bson.M{"_id": id})
}
