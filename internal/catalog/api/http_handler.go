package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kakineha/coffee-backend/internal/catalog/domain"
	"github.com/kakineha/coffee-backend/internal/catalog/repository"
	"github.com/kakineha/coffee-backend/internal/catalog/service"
	"github.com/kakineha/coffee-backend/internal/platform/logger"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(cs service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// RegisterRoutes mounts the public product routes.
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.POST("", h.CreateProduct)
		productRoutes.GET("", h.ListProducts)
	}
}

// RegisterAdminRoutes mounts the admin-gated product routes; the caller is
// expected to attach the auth middleware to the group.
func (h *CatalogHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.PATCH("/:id/price", h.UpdateProductPrice)
		productRoutes.PATCH("/:id", h.UpdateProductFields)
		productRoutes.POST("/bulk-price", h.BulkUpdatePrices)
	}
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		logger.Error("CreateProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": product.ID.Hex()})
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := domain.ProductFilter{
		Brand:    c.Query("brand"),
		Category: c.Query("category"),
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		logger.Error("ListProducts: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) UpdateProductPrice(c *gin.Context) {
	var payload domain.PriceUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	productID := c.Param("id")
	err := h.catalogService.UpdateProductPrice(c.Request.Context(), productID, *payload.Price)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("UpdateProductPrice: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product price"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": productID, "price": *payload.Price})
}

func (h *CatalogHandler) UpdateProductFields(c *gin.Context) {
	var payload domain.ProductUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	product, err := h.catalogService.UpdateProductFields(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("UpdateProductFields: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) BulkUpdatePrices(c *gin.Context) {
	var payload domain.BulkPriceUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	result, err := h.catalogService.BulkUpdatePrices(c.Request.Context(), payload)
	if err != nil {
		logger.Error("BulkUpdatePrices: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prices"})
		return
	}

	c.JSON(http.StatusOK, result)
}
