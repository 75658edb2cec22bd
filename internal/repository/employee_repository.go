package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jiffy-backoffice-api-server/internal/metrics"
	"jiffy-backoffice-api-server/internal/models"
)

type EmployeeUpdate struct {
	ProfileUpdate
	DOB  string
	Role string
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	Update(ctx context.Context, id primitive.ObjectID, u EmployeeUpdate) (*models.Employee, error)
	TouchLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
}

type employeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) EmployeeRepository {
	return &employeeRepository{coll: db.Collection(EmployeesCollection)}
}

func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	now := time.Now()
	employee.CreatedAt, employee.UpdatedAt = now, now

	id, err := insertOne(ctx, r.coll, "repository.Employee.Create", employee)
	if err != nil {
		return err
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		employee.ID = oid
	}
	return nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	return findOne[models.Employee](ctx, r.coll, "repository.Employee.FindByID", bson.M{"_id": id})
}

func (r *employeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	return findOne[models.Employee](ctx, r.coll, "repository.Employee.FindByEmail", bson.M{"email": email})
}

func (r *employeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastLogin", Value: -1}})
	return findAll[models.Employee](ctx, r.coll, "repository.Employee.List", bson.M{}, opts)
}

func (r *employeeRepository) Update(ctx context.Context, id primitive.ObjectID, u EmployeeUpdate) (*models.Employee, error) {
	return updateOne[models.Employee](ctx, r.coll, "repository.Employee.Update", bson.M{"_id": id}, bson.M{
		"name":      u.Name,
		"email":     u.Email,
		"dob":       u.DOB,
		"role":      u.Role,
		"address":   u.Address,
		"phone":     u.Phone,
		"updatedAt": time.Now(),
	})
}

func (r *employeeRepository) TouchLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	const op = "repository.Employee.TouchLastLogin"
	defer metrics.ObserveDBRequest(op, time.Now())

	if _, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"lastLogin": at}}); err != nil {
		return wrap(op, err)
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	return deleteOne[models.Employee](ctx, r.coll, "repository.Employee.Delete", bson.M{"_id": id})
}
