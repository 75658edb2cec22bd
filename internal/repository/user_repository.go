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

// ProfileUpdate carries the editable contact fields shared by users and employees.
type ProfileUpdate struct {
	Name    string
	Email   string
	Address string
	Phone   string
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, p ProfileUpdate) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// LoginCountsByMonth groups users whose lastLogin is in [from, to) by "YYYY-MM" (UTC).
	LoginCountsByMonth(ctx context.Context, from, to time.Time) (map[string]int, error)
}

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection(UsersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now

	id, err := insertOne(ctx, r.coll, "repository.User.Create", user)
	if err != nil {
		return err
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return findOne[models.User](ctx, r.coll, "repository.User.FindByID", bson.M{"_id": id})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.coll, "repository.User.FindByEmail", bson.M{"email": email})
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastLogin", Value: -1}})
	return findAll[models.User](ctx, r.coll, "repository.User.List", bson.M{}, opts)
}

func (r *userRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, p ProfileUpdate) (*models.User, error) {
	return updateOne[models.User](ctx, r.coll, "repository.User.UpdateProfile", bson.M{"_id": id}, bson.M{
		"name":      p.Name,
		"email":     p.Email,
		"address":   p.Address,
		"phone":     p.Phone,
		"updatedAt": time.Now(),
	})
}

func (r *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) (*models.User, error) {
	return updateOne[models.User](ctx, r.coll, "repository.User.UpdatePassword", bson.M{"_id": id}, bson.M{
		"password":  hash,
		"updatedAt": time.Now(),
	})
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	const op = "repository.User.TouchLastLogin"
	defer metrics.ObserveDBRequest(op, time.Now())

	if _, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"lastLogin": at}}); err != nil {
		return wrap(op, err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return deleteOne[models.User](ctx, r.coll, "repository.User.Delete", bson.M{"_id": id})
}

func (r *userRepository) LoginCountsByMonth(ctx context.Context, from, to time.Time) (map[string]int, error) {
	const op = "repository.User.LoginCountsByMonth"
	defer metrics.ObserveDBRequest(op, time.Now())

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"lastLogin": bson.M{"$gte": from, "$lt": to}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$lastLogin", "timezone": "UTC"}},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Month string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, wrap(op+" decode", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Month] = row.Count
	}
	return out, nil
}
