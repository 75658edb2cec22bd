package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jiffy-backoffice-api-server/internal/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

type productRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepository{coll: db.Collection(ProductsCollection)}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.CreatedAt, product.UpdatedAt = now, now

	id, err := insertOne(ctx, r.coll, "repository.Product.Create", product)
	if err != nil {
		return err
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return findOne[models.Product](ctx, r.coll, "repository.Product.FindByID", bson.M{"_id": id})
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	return findAll[models.Product](ctx, r.coll, "repository.Product.FindByIDs", bson.M{"_id": bson.M{"$in": ids}})
}

func (r *productRepository) List(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "product_name", Value: 1}})
	return findAll[models.Product](ctx, r.coll, "repository.Product.List", bson.M{}, opts)
}

func (r *productRepository) Update(ctx context.Context, id primitive.ObjectID, p *models.Product) (*models.Product, error) {
	return updateOne[models.Product](ctx, r.coll, "repository.Product.Update", bson.M{"_id": id}, bson.M{
		"product_name": p.Name,
		"unit_price":   p.UnitPrice,
		"quantity":     p.Quantity,
		"description":  p.Description,
		"updatedAt":    time.Now(),
	})
}

func (r *productRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return deleteOne[models.Product](ctx, r.coll, "repository.Product.Delete", bson.M{"_id": id})
}
