package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/kakineha/coffee-backend/internal/catalog/domain"
	"github.com/kakineha/coffee-backend/internal/catalog/repository"
	"github.com/kakineha/coffee-backend/internal/catalog/repository/mocks"
)

func floatPtr(f float64) *float64 { return &f }

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.TODO()

	t.Run("Applies defaults", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		catalogService := NewCatalogService(mockRepo)

		mockRepo.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).Return(nil).Once()

		product, err := catalogService.CreateProduct(ctx, domain.CreateProductRequest{
			Name:     "Wuga Arabica Beans",
			Price:    floatPtr(25000),
			Category: "beans",
			Brand:    "Kakineha",
		})

		assert.NoError(t, err)
		assert.Equal(t, "kg", product.Unit)
		assert.True(t, product.InStock)
		assert.False(t, product.ID.IsZero())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Keeps explicit unit and stock flag", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		catalogService := NewCatalogService(mockRepo)

		mockRepo.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).Return(nil).Once()

		inStock := false
		product, err := catalogService.CreateProduct(ctx, domain.CreateProductRequest{
			Name:     "Hot Coffee",
			Price:    floatPtr(5000),
			Category: "beverage",
			Brand:    "Kakineha",
			Unit:     "cup",
			InStock:  &inStock,
		})

		assert.NoError(t, err)
		assert.Equal(t, "cup", product.Unit)
		assert.False(t, product.InStock)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.TODO()

	t.Run("Passes filters through", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		catalogService := NewCatalogService(mockRepo)

		filter := domain.ProductFilter{Brand: "Nucafe", Category: "ground"}
		expected := []domain.Product{{Name: "Ground Robusta", Brand: "Nucafe", Category: "ground"}}
		mockRepo.On("ListProducts", ctx, filter).Return(expected, nil).Once()

		products, err := catalogService.ListProducts(ctx, filter)

		assert.NoError(t, err)
		assert.Equal(t, expected, products)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_UpdateProductFields(t *testing.T) {
	ctx := context.TODO()

	t.Run("Empty update set is rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		catalogService := NewCatalogService(mockRepo)

		product, err := catalogService.UpdateProductFields(ctx, "66b1e2f3a4b5c6d7e8f90123", domain.ProductUpdate{})

		assert.Nil(t, product)
		assert.EqualError(t, err, ErrEmptyUpdate.Error())
		mockRepo.AssertNotCalled(t, "UpdateFields")
	})

	t.Run("Only present fields reach the store", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		catalogService := NewCatalogService(mockRepo)

		name := "Omukaga Arabica"
		update := domain.ProductUpdate{Name: &name, Price: floatPtr(30000)}
		expected := &domain.Product{Name: name, Price: 30000}

		mockRepo.On("UpdateFields", ctx, "66b1e2f3a4b5c6d7e8f90123",
			bson.M{"name": name, "price": 30000.0}).Return(expected, nil).Once()

		product, err := catalogService.UpdateProductFields(ctx, "66b1e2f3a4b5c6d7e8f90123", update)

		assert.NoError(t, err)
		assert.Equal(t, expected, product)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing product propagates not found", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		catalogService := NewCatalogService(mockRepo)

		name := "Ghost"
		mockRepo.On("UpdateFields", ctx, "missing", bson.M{"name": name}).
			Return(nil, repository.ErrProductNotFound).Once()

		product, err := catalogService.UpdateProductFields(ctx, "missing", domain.ProductUpdate{Name: &name})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_UpdateProductPrice(t *testing.T) {
	ctx := context.TODO()

	t.Run("Missing id returns not found", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		catalogService := NewCatalogService(mockRepo)

		mockRepo.On("UpdatePrice", ctx, "missing", 5000.0).
			Return(repository.ErrProductNotFound).Once()

		err := catalogService.UpdateProductPrice(ctx, "missing", 5000)

		assert.ErrorIs(t, err, repository.ErrProductNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_BulkUpdatePrices(t *testing.T) {
	ctx := context.TODO()

	t.Run("Counts matches and skips misses", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		catalogService := NewCatalogService(mockRepo)

		mockRepo.On("UpdatePrice", ctx, "validA", 5000.0).Return(nil).Once()
		mockRepo.On("UpdatePrice", ctx, "missing", 6000.0).
			Return(repository.ErrProductNotFound).Once()

		result, err := catalogService.BulkUpdatePrices(ctx, domain.BulkPriceUpdate{
			Items: []domain.BulkPriceItem{
				{ProductID: "validA", Price: floatPtr(5000)},
				{ProductID: "missing", Price: floatPtr(6000)},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, &domain.BulkPriceResult{Updated: 1, Total: 2}, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Store failure aborts the batch", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		catalogService := NewCatalogService(mockRepo)

		storeErr := errors.New("connection reset")
		mockRepo.On("UpdatePrice", ctx, "validA", 5000.0).Return(storeErr).Once()

		result, err := catalogService.BulkUpdatePrices(ctx, domain.BulkPriceUpdate{
			Items: []domain.BulkPriceItem{
				{ProductID: "validA", Price: floatPtr(5000)},
				{ProductID: "validB", Price: floatPtr(6000)},
			},
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, storeErr)
		mockRepo.AssertExpectations(t)
	})
}
