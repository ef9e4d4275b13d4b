package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kakineha/coffee-backend/internal/catalog/domain"
	"github.com/kakineha/coffee-backend/internal/platform/database"
	"github.com/kakineha/coffee-backend/internal/platform/logger"
)

var ErrProductNotFound = errors.New("Product not found")

const collectionName = "product"

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	UpdatePrice(ctx context.Context, id string, price float64) error
	UpdateFields(ctx context.Context, id string, set bson.M) (*domain.Product, error)
}

type mongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(db *database.Mongo) ProductRepository {
	return &mongoProductRepository{coll: db.Collection(collectionName)}
}

func (r *mongoProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		logger.Error("CreateProduct: failed to insert product", err)
		return err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListProducts returns products in store-insertion order, optionally
// narrowed by brand and category equality filters.
func (r *mongoProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := bson.M{}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		logger.Error("ListProducts: cursor decode failed", err)
		return nil, err
	}
	return products, nil
}

func (r *mongoProductRepository) UpdatePrice(ctx context.Context, id string, price float64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProductNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"price":      price,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		logger.Error("UpdatePrice: update failed", err)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

// UpdateFields applies a prepared $set document and returns the updated
// product. The update and the refetch are two store round-trips; a
// concurrent reader may observe the state in between.
func (r *mongoProductRepository) UpdateFields(ctx context.Context, id string, set bson.M) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	set["updated_at"] = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		logger.Error("UpdateFields: update failed", err)
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrProductNotFound
	}

	var product domain.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		logger.Error("UpdateFields: refetch failed", err)
		return nil, err
	}
	return &product, nil
}
