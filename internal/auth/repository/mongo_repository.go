package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kakineha/coffee-backend/internal/auth/domain"
	"github.com/kakineha/coffee-backend/internal/platform/database"
	"github.com/kakineha/coffee-backend/internal/platform/logger"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailExists = errors.New("user with this email already exists")

const collectionName = "user"

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *database.Mongo) UserRepository {
	return &mongoUserRepository{coll: db.Collection(collectionName)}
}

// CreateUser rejects duplicate emails with ErrEmailExists. The existence
// check and the insert are not atomic; the store has no unique index, so a
// concurrent registration race is accepted here like in the rest of the app.
func (r *mongoUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		logger.Error("CreateUser: email lookup failed", err)
		return err
	}
	if count > 0 {
		return ErrEmailExists
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		logger.Error("CreateUser: failed to insert user", err)
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUserBy(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return r.getUserBy(ctx, bson.M{"_id": oid})
}

func (r *mongoUserRepository) getUserBy(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		logger.Error("getUserBy: query failed", err)
		return nil, err
	}
	return &user, nil
}
