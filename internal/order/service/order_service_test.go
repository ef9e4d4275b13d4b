package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kakineha/coffee-backend/internal/order/domain"
	"github.com/kakineha/coffee-backend/internal/order/repository"
	"github.com/kakineha/coffee-backend/internal/order/repository/mocks"
)

func floatPtr(f float64) *float64 { return &f }

func testOrderRequest(subtotal float64) domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		Customer: domain.Customer{
			FullName: "Jane Doe",
			Phone:    "0700123456",
		},
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Wuga Arabica Beans", Quantity: 2, UnitPrice: 5000, Total: 10000},
			{ProductID: "p2", Name: "Ground Robusta", Quantity: 3, UnitPrice: 5000, Total: 15000},
		},
		Subtotal:      floatPtr(subtotal),
		PaymentMethod: "mobile_money",
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.TODO()

	t.Run("Matching subtotal succeeds with pending status", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		orderService := NewOrderService(mockRepo)

		mockRepo.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()

		resp, err := orderService.CreateOrder(ctx, testOrderRequest(25000))

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.OrderID)
		assert.Equal(t, domain.StatusPending, resp.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Mismatched subtotal is rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		orderService := NewOrderService(mockRepo)

		resp, err := orderService.CreateOrder(ctx, testOrderRequest(25500))

		assert.Nil(t, resp)
		assert.EqualError(t, err, ErrSubtotalMismatch.Error())
		mockRepo.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("Deviation within tolerance is accepted", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		orderService := NewOrderService(mockRepo)

		mockRepo.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()

		resp, err := orderService.CreateOrder(ctx, testOrderRequest(25000.009))

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Deviation just past tolerance is rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		orderService := NewOrderService(mockRepo)

		resp, err := orderService.CreateOrder(ctx, testOrderRequest(25000.02))

		assert.Nil(t, resp)
		assert.EqualError(t, err, ErrSubtotalMismatch.Error())
		mockRepo.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("Empty items with zero subtotal is accepted", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		orderService := NewOrderService(mockRepo)

		mockRepo.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()

		req := testOrderRequest(0)
		req.Items = nil

		resp, err := orderService.CreateOrder(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, resp.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Explicit status is persisted but response reports pending", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		orderService := NewOrderService(mockRepo)

		var persisted *domain.Order
		mockRepo.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*domain.Order)
			}).
			Return(nil).Once()

		req := testOrderRequest(25000)
		req.Status = domain.StatusPaid

		resp, err := orderService.CreateOrder(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, persisted.Status)
		assert.Equal(t, domain.StatusPending, resp.Status)
		mockRepo.AssertExpectations(t)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.TODO()

	t.Run("Defaults limit to 100", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		orderService := NewOrderService(mockRepo)

		mockRepo.On("ListOrders", ctx, domain.OrderFilter{Status: "", Limit: 100}).
			Return([]domain.Order{}, nil).Once()

		orders, err := orderService.ListOrders(ctx, "", 0)

		assert.NoError(t, err)
		assert.Empty(t, orders)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Passes status filter and limit through", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		orderService := NewOrderService(mockRepo)

		expected := []domain.Order{{Status: domain.StatusPaid}}
		mockRepo.On("ListOrders", ctx, domain.OrderFilter{Status: "paid", Limit: 5}).
			Return(expected, nil).Once()

		orders, err := orderService.ListOrders(ctx, "paid", 5)

		assert.NoError(t, err)
		assert.Equal(t, expected, orders)
		mockRepo.AssertExpectations(t)
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	ctx := context.TODO()

	t.Run("Missing order propagates not found", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		orderService := NewOrderService(mockRepo)

		update := domain.OrderUpdate{Status: domain.StatusCancelled}
		mockRepo.On("UpdateOrder", ctx, "missing", update).
			Return(nil, repository.ErrOrderNotFound).Once()

		order, err := orderService.UpdateOrder(ctx, "missing", update)

		assert.Nil(t, order)
		assert.ErrorIs(t, err, repository.ErrOrderNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Any status may follow any status", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		orderService := NewOrderService(mockRepo)

		// fulfilled straight from cancelled: deliberately unconstrained.
		update := domain.OrderUpdate{Status: domain.StatusFulfilled}
		updated := &domain.Order{Status: domain.StatusFulfilled}
		mockRepo.On("UpdateOrder", ctx, "order-1", update).Return(updated, nil).Once()

		order, err := orderService.UpdateOrder(ctx, "order-1", update)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusFulfilled, order.Status)
		mockRepo.AssertExpectations(t)
	})
}
