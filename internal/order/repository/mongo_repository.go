package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kakineha/coffee-backend/internal/order/domain"
	"github.com/kakineha/coffee-backend/internal/platform/database"
	"github.com/kakineha/coffee-backend/internal/platform/logger"
)

var ErrOrderNotFound = errors.New("Order not found")

const collectionName = "order"

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error)
}

type mongoOrderRepository struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(db *database.Mongo) OrderRepository {
	return &mongoOrderRepository{coll: db.Collection(collectionName)}
}

func (r *mongoOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		logger.Error("CreateOrder: failed to insert order", err)
		return err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoOrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetLimit(filter.Limit))
	if err != nil {
		logger.Error("ListOrders: query failed", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		logger.Error("ListOrders: cursor decode failed", err)
		return nil, err
	}
	return orders, nil
}

func (r *mongoOrderRepository) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	var order domain.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		logger.Error("GetOrderByID: query failed", err)
		return nil, err
	}
	return &order, nil
}

// UpdateOrder sets the status unconditionally, writes notes only when
// present, stamps updated_at, and refetches the document. The update and
// the refetch are separate round-trips.
func (r *mongoOrderRepository) UpdateOrder(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	set := bson.M{
		"status":     update.Status,
		"updated_at": time.Now().UTC(),
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		logger.Error("UpdateOrder: update failed", err)
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrOrderNotFound
	}

	var order domain.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		logger.Error("UpdateOrder: refetch failed", err)
		return nil, err
	}
	return &order, nil
}
