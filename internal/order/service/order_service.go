package service

import (
	"context"
	"errors"
	"math"

	"github.com/kakineha/coffee-backend/internal/order/domain"
	"github.com/kakineha/coffee-backend/internal/order/repository"
)

var ErrSubtotalMismatch = errors.New("Subtotal mismatch")

const (
	// Tolerance in currency units for the subtotal check.
	subtotalTolerance = 0.01

	defaultListLimit = 100
)

type OrderService interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.CreateOrderResponse, error)
	ListOrders(ctx context.Context, status string, limit int64) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error)
}

type orderServiceImpl struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderServiceImpl{repo: repo}
}

// validateSubtotal checks that the claimed subtotal agrees with the sum of
// the line totals. The line totals themselves are taken on trust; no
// quantity * unit_price recomputation happens here.
func validateSubtotal(items []domain.OrderItem, subtotal float64) error {
	var calc float64
	for _, item := range items {
		calc += item.Total
	}
	if math.Abs(calc-subtotal) > subtotalTolerance {
		return ErrSubtotalMismatch
	}
	return nil
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.CreateOrderResponse, error) {
	if err := validateSubtotal(req.Items, *req.Subtotal); err != nil {
		return nil, err
	}

	order := &domain.Order{
		Customer:      req.Customer,
		Items:         req.Items,
		Subtotal:      *req.Subtotal,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		Notes:         req.Notes,
	}
	if order.Status == "" {
		order.Status = domain.StatusPending
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	// The response always reports "pending" regardless of the persisted
	// status; only an admin transition changes what callers see later.
	return &domain.CreateOrderResponse{
		OrderID: order.ID.Hex(),
		Status:  domain.StatusPending,
	}, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, status string, limit int64) ([]domain.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.ListOrders(ctx, domain.OrderFilter{Status: status, Limit: limit})
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *orderServiceImpl) UpdateOrder(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error) {
	return s.repo.UpdateOrder(ctx, id, update)
}
