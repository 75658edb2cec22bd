package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jiffy-backoffice-api-server/internal/models"
)

type MachineRepository interface {
	Create(ctx context.Context, machine *models.Machine) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Machine, error)
	FindByMID(ctx context.Context, mID string) (*models.Machine, error)
	// List returns every machine, or only those of factory when it is non-empty.
	List(ctx context.Context, factory string) ([]models.Machine, error)
	Update(ctx context.Context, id primitive.ObjectID, machine *models.Machine) (*models.Machine, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Machine, error)
}

type machineRepository struct {
	coll *mongo.Collection
}

func NewMachineRepository(db *mongo.Database) MachineRepository {
	return &machineRepository{coll: db.Collection(MachinesCollection)}
}

func (r *machineRepository) Create(ctx context.Context, machine *models.Machine) error {
	now := time.Now()
	machine.CreatedAt, machine.UpdatedAt = now, now

	id, err := insertOne(ctx, r.coll, "repository.Machine.Create", machine)
	if err != nil {
		return err
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		machine.ID = oid
	}
	return nil
}

func (r *machineRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Machine, error) {
	return findOne[models.Machine](ctx, r.coll, "repository.Machine.FindByID", bson.M{"_id": id})
}

func (r *machineRepository) FindByMID(ctx context.Context, mID string) (*models.Machine, error) {
	return findOne[models.Machine](ctx, r.coll, "repository.Machine.FindByMID", bson.M{"mId": mID})
}

func (r *machineRepository) List(ctx context.Context, factory string) ([]models.Machine, error) {
	filter := bson.M{}
	if factory != "" {
		filter["mFactory"] = factory
	}
	return findAll[models.Machine](ctx, r.coll, "repository.Machine.List", filter)
}

func (r *machineRepository) Update(ctx context.Context, id primitive.ObjectID, m *models.Machine) (*models.Machine, error) {
	return updateOne[models.Machine](ctx, r.coll, "repository.Machine.Update", bson.M{"_id": id}, bson.M{
		"mId":              m.MID,
		"mFactory":         m.Factory,
		"product":          m.Product,
		"maxRunningHrs":    m.MaxRunningHrs,
		"installedDate":    m.InstalledDate,
		"totalProductions": m.TotalProductions,
		"totalRunningHrs":  m.TotalRunningHrs,
		"updatedAt":        time.Now(),
	})
}

func (r *machineRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Machine, error) {
	return deleteOne[models.Machine](ctx, r.coll, "repository.Machine.Delete", bson.M{"_id": id})
}
