package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kakineha/coffee-backend/internal/payment/domain"
	"github.com/kakineha/coffee-backend/internal/payment/repository"
)

var ErrPhoneRequired = errors.New("Phone is required for mobile money")

// referencePrefix tags every generated payment reference. The suffix is a
// fresh ObjectID, which gives enough entropy that collisions are negligible.
const referencePrefix = "PMT-"

type PaymentService interface {
	InitPayment(ctx context.Context, req domain.InitPaymentRequest) (*domain.InitPaymentResponse, error)
	GetPaymentStatus(ctx context.Context, reference string) *domain.PaymentStatusResponse
}

type paymentServiceImpl struct {
	repo repository.PaymentRepository
}

func NewPaymentService(repo repository.PaymentRepository) PaymentService {
	return &paymentServiceImpl{repo: repo}
}

func (s *paymentServiceImpl) InitPayment(ctx context.Context, req domain.InitPaymentRequest) (*domain.InitPaymentResponse, error) {
	if req.Method == domain.MethodMobileMoney && strings.TrimSpace(req.Phone) == "" {
		return nil, ErrPhoneRequired
	}

	payment := &domain.Payment{
		OrderID:   req.OrderID,
		Method:    req.Method,
		Amount:    *req.Amount,
		Phone:     req.Phone,
		Status:    domain.StatusInitiated,
		Reference: referencePrefix + primitive.NewObjectID().Hex(),
	}

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	return &domain.InitPaymentResponse{
		Reference: payment.Reference,
		Status:    payment.Status,
	}, nil
}

// GetPaymentStatus reports a static "pending" and never consults storage.
// This mirrors the behavior of the upstream gateway stub; a real
// integration would resolve the stored intent via GetPaymentByReference.
func (s *paymentServiceImpl) GetPaymentStatus(_ context.Context, reference string) *domain.PaymentStatusResponse {
	return &domain.PaymentStatusResponse{
		Reference: reference,
		Status:    domain.StatusPending,
	}
}
