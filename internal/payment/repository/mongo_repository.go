package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kakineha/coffee-backend/internal/payment/domain"
	"github.com/kakineha/coffee-backend/internal/platform/database"
	"github.com/kakineha/coffee-backend/internal/platform/logger"
)

var ErrPaymentNotFound = errors.New("Payment not found")

const collectionName = "payment"

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) error
	GetPaymentByReference(ctx context.Context, reference string) (*domain.Payment, error)
}

type mongoPaymentRepository struct {
	coll *mongo.Collection
}

func NewMongoPaymentRepository(db *database.Mongo) PaymentRepository {
	return &mongoPaymentRepository{coll: db.Collection(collectionName)}
}

func (r *mongoPaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	payment.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		logger.Error("CreatePayment: failed to insert payment", err)
		return err
	}
	payment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoPaymentRepository) GetPaymentByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.coll.FindOne(ctx, bson.M{"reference": reference}).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPaymentNotFound
		}
		logger.Error("GetPaymentByReference: query failed", err)
		return nil, err
	}
	return &payment, nil
}
