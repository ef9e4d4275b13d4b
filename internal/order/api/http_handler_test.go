package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kakineha/coffee-backend/internal/order/domain"
	"github.com/kakineha/coffee-backend/internal/order/service"
)

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.CreateOrderResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*domain.CreateOrderResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderService) ListOrders(ctx context.Context, status string, limit int64) ([]domain.Order, error) {
	args := m.Called(ctx, status, limit)
	if o := args.Get(0); o != nil {
		return o.([]domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderService) UpdateOrder(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error) {
	args := m.Called(ctx, id, update)
	if o := args.Get(0); o != nil {
		return o.(*domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func setupOrderRouter(os service.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewOrderHandler(os).RegisterRoutes(router.Group("/api"))
	return router
}

func postOrder(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("Empty items list binds and is accepted", func(t *testing.T) {
		mockService := new(mockOrderService)
		mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("domain.CreateOrderRequest")).
			Return(&domain.CreateOrderResponse{
				OrderID: "66b1e2f3a4b5c6d7e8f90123",
				Status:  domain.StatusPending,
			}, nil).Once()
		router := setupOrderRouter(mockService)

		w := postOrder(router, `{
			"customer": {"full_name": "Jane Doe", "phone": "0700123456"},
			"items": [],
			"subtotal": 0,
			"payment_method": "card"
		}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Subtotal mismatch maps to 400", func(t *testing.T) {
		mockService := new(mockOrderService)
		mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("domain.CreateOrderRequest")).
			Return(nil, service.ErrSubtotalMismatch).Once()
		router := setupOrderRouter(mockService)

		w := postOrder(router, `{
			"customer": {"full_name": "Jane Doe", "phone": "0700123456"},
			"items": [{"product_id": "p1", "name": "Beans", "quantity": 1, "unit_price": 10000, "total": 10000}],
			"subtotal": 10500,
			"payment_method": "card"
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), service.ErrSubtotalMismatch.Error())
		mockService.AssertExpectations(t)
	})
}
