package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authAPI "github.com/kakineha/coffee-backend/internal/auth/api"
	authRepo "github.com/kakineha/coffee-backend/internal/auth/repository"
	authService "github.com/kakineha/coffee-backend/internal/auth/service"
	catalogAPI "github.com/kakineha/coffee-backend/internal/catalog/api"
	catalogRepo "github.com/kakineha/coffee-backend/internal/catalog/repository"
	catalogService "github.com/kakineha/coffee-backend/internal/catalog/service"
	orderAPI "github.com/kakineha/coffee-backend/internal/order/api"
	orderRepo "github.com/kakineha/coffee-backend/internal/order/repository"
	orderService "github.com/kakineha/coffee-backend/internal/order/service"
	paymentAPI "github.com/kakineha/coffee-backend/internal/payment/api"
	paymentRepo "github.com/kakineha/coffee-backend/internal/payment/repository"
	paymentService "github.com/kakineha/coffee-backend/internal/payment/service"
	"github.com/kakineha/coffee-backend/internal/platform/config"
	"github.com/kakineha/coffee-backend/internal/platform/database"
	"github.com/kakineha/coffee-backend/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger.Info("Starting Kakineha Coffee Beverages backend...")

	db, err := database.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		os.Exit(1)
	}

	// Repositories and services
	userRepository := authRepo.NewMongoUserRepository(db)
	auth := authService.NewAuthService(userRepository, cfg.Auth)
	authHandler := authAPI.NewAuthHandler(auth)

	productRepository := catalogRepo.NewMongoProductRepository(db)
	catalog := catalogService.NewCatalogService(productRepository)
	catalogHandler := catalogAPI.NewCatalogHandler(catalog)

	orderRepository := orderRepo.NewMongoOrderRepository(db)
	orders := orderService.NewOrderService(orderRepository)
	orderHandler := orderAPI.NewOrderHandler(orders)

	paymentRepository := paymentRepo.NewMongoPaymentRepository(db)
	payments := paymentService.NewPaymentService(paymentRepository)
	paymentHandler := paymentAPI.NewPaymentHandler(payments)

	// Router
	router := gin.Default()
	router.RedirectTrailingSlash = false

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	registerHealthRoutes(router, db)

	api := router.Group("/api")
	authHandler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)
	paymentHandler.RegisterRoutes(api)

	admin := api.Group("/admin", authAPI.RequireAuth(auth), authAPI.RequireAdmin())
	catalogHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", err)
		}
	}()

	// Block until interrupted, then drain in-flight requests and close the
	// store client.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down server cleanly", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("Failed to close database connection", err)
	}
}

func registerHealthRoutes(router *gin.Engine, db *database.Mongo) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Kakineha Coffee Beverages Backend Running"})
	})

	router.GET("/test", func(c *gin.Context) {
		response := gin.H{
			"backend":           "running",
			"database":          "not available",
			"database_name":     db.Name(),
			"connection_status": "not connected",
			"collections":       []string{},
		}

		collections, err := db.Health(c.Request.Context())
		if err != nil {
			logger.Error("Health check failed", err)
			response["database"] = "error"
			c.JSON(http.StatusOK, response)
			return
		}

		response["database"] = "connected"
		response["connection_status"] = "connected"
		response["collections"] = collections
		c.JSON(http.StatusOK, response)
	})
}
