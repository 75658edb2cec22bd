package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jiffy-backoffice-api-server/internal/models"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Supplier, error)
	List(ctx context.Context) ([]models.Supplier, error)
	Update(ctx context.Context, id primitive.ObjectID, supplier *models.Supplier) (*models.Supplier, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Supplier, error)
}

type supplierRepository struct {
	coll *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) SupplierRepository {
	return &supplierRepository{coll: db.Collection(SuppliersCollection)}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	now := time.Now()
	supplier.CreatedAt, supplier.UpdatedAt = now, now
	if supplier.Materials == nil {
		supplier.Materials = []string{}
	}

	id, err := insertOne(ctx, r.coll, "repository.Supplier.Create", supplier)
	if err != nil {
		return err
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		supplier.ID = oid
	}
	return nil
}

func (r *supplierRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Supplier, error) {
	return findOne[models.Supplier](ctx, r.coll, "repository.Supplier.FindByID", bson.M{"_id": id})
}

func (r *supplierRepository) List(ctx context.Context) ([]models.Supplier, error) {
	return findAll[models.Supplier](ctx, r.coll, "repository.Supplier.List", bson.M{})
}

func (r *supplierRepository) Update(ctx context.Context, id primitive.ObjectID, s *models.Supplier) (*models.Supplier, error) {
	materials := s.Materials
	if materials == nil {
		materials = []string{}
	}
	return updateOne[models.Supplier](ctx, r.coll, "repository.Supplier.Update", bson.M{"_id": id}, bson.M{
		"name":      s.Name,
		"email":     s.Email,
		"phone":     s.Phone,
		"address":   s.Address,
		"materials": materials,
		"updatedAt": time.Now(),
	})
}

func (r *supplierRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Supplier, error) {
	return deleteOne[models.Supplier](ctx, r.coll, "repository.Supplier.Delete", bson.M{"_id": id})
}
