package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kakineha/coffee-backend/internal/payment/domain"
	"github.com/kakineha/coffee-backend/internal/payment/service"
	"github.com/kakineha/coffee-backend/internal/platform/logger"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(ps service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	paymentRoutes := router.Group("/payments")
	{
		paymentRoutes.POST("/init", h.InitPayment)
		paymentRoutes.GET("/status/:reference", h.GetPaymentStatus)
	}
}

func (h *PaymentHandler) InitPayment(c *gin.Context) {
	var req domain.InitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	resp, err := h.paymentService.InitPayment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrPhoneRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("InitPayment: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate payment"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	resp := h.paymentService.GetPaymentStatus(c.Request.Context(), c.Param("reference"))
	c.JSON(http.StatusOK, resp)
}
