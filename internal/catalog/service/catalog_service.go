package service

import (
	"context"
	"errors"

	"github.com/kakineha/coffee-backend/internal/catalog/domain"
	"github.com/kakineha/coffee-backend/internal/catalog/repository"
	"github.com/kakineha/coffee-backend/internal/platform/logger"
)

var ErrEmptyUpdate = errors.New("No fields to update")

type CatalogService interface {
	CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	UpdateProductPrice(ctx context.Context, id string, price float64) error
	UpdateProductFields(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error)
	BulkUpdatePrices(ctx context.Context, update domain.BulkPriceUpdate) (*domain.BulkPriceResult, error)
}

type catalogServiceImpl struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{repo: repo}
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Brand:       req.Brand,
		Type:        req.Type,
		Unit:        req.Unit,
		InStock:     true,
		ImageURL:    req.ImageURL,
	}
	if product.Unit == "" {
		product.Unit = domain.DefaultUnit
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, filter)
}

func (s *catalogServiceImpl) UpdateProductPrice(ctx context.Context, id string, price float64) error {
	return s.repo.UpdatePrice(ctx, id, price)
}

func (s *catalogServiceImpl) UpdateProductFields(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	set := update.SetDocument()
	if len(set) == 0 {
		return nil, ErrEmptyUpdate
	}
	return s.repo.UpdateFields(ctx, id, set)
}

// BulkUpdatePrices applies each item independently. An id that matches no
// product is counted as a miss and does not abort the rest; store failures
// still do.
func (s *catalogServiceImpl) BulkUpdatePrices(ctx context.Context, update domain.BulkPriceUpdate) (*domain.BulkPriceResult, error) {
	result := &domain.BulkPriceResult{Total: len(update.Items)}
	for _, item := range update.Items {
		err := s.repo.UpdatePrice(ctx, item.ProductID, *item.Price)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				logger.Warn("BulkUpdatePrices: no product matched id %s", item.ProductID)
				continue
			}
			return nil, err
		}
		result.Updated++
	}
	return result, nil
}
