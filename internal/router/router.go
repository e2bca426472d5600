// internal/router/router.go
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/collaboration-service/internal/config"
	"github.com/javajoker/collaboration-service/internal/handlers"
	"github.com/javajoker/collaboration-service/internal/middleware"
	"github.com/javajoker/collaboration-service/internal/repository"
	"github.com/javajoker/collaboration-service/internal/services"
)

const Version = "1.0.0"

// Dependencies are the collaborators the router cannot build from the
// database alone.
type Dependencies struct {
	Brands     services.BrandRegistry
	Categories services.CategoryRegistry
	// Stop ends background work such as rate limiter cleanup.
	Stop <-chan struct{}
}

func Initialize(db *gorm.DB, cfg *config.Config, deps Dependencies) *gin.Engine {
	// Initialize repositories
	sellerRepo := repository.NewSellerRepository(db)
	productRepo := repository.NewProductRepository(db)
	collaborationRepo := repository.NewCollaborationRepository(db)
	contractRepo := repository.NewB2BContractRepository(db)

	// Initialize services
	collaborationService := services.NewCollaborationService(collaborationRepo, sellerRepo, productRepo, deps.Brands, deps.Categories)
	contractService := services.NewContractService(contractRepo, sellerRepo, productRepo)
	proximityService := services.NewProximityService(sellerRepo, cfg.Proximity.RadiusKm)
	sellerService := services.NewSellerService(sellerRepo)

	// Initialize handlers
	collaborationHandler := handlers.NewCollaborationHandler(collaborationService, proximityService)
	contractHandler := handlers.NewContractHandler(contractService)
	proximityHandler := handlers.NewProximityHandler(proximityService)
	sellerHandler := handlers.NewSellerHandler(sellerService)
	registryHandler := handlers.NewRegistryHandler(deps.Brands, deps.Categories)
	healthHandler := handlers.NewHealthHandler(db, Version)

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	if deps.Stop != nil {
		limiter.StartCleanup(time.Minute, deps.Stop)
	}

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(limiter.Middleware())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/v1")
	{
		collaborations := v1.Group("/collaborations")
		{
			collaborations.POST("", collaborationHandler.CreateCollaboration)
			collaborations.GET("/seller/:seller_id", collaborationHandler.GetSellerCollaborations)
			collaborations.GET("/nearby-sellers/:seller_id", collaborationHandler.FindNearbySellers)
			collaborations.GET("/:id", collaborationHandler.GetCollaboration)
			collaborations.PUT("/:id", collaborationHandler.UpdateCollaboration)
			collaborations.PATCH("/:id", collaborationHandler.UpdateCollaboration)
			collaborations.DELETE("/:id", collaborationHandler.DeleteCollaboration)
			collaborations.POST("/:id/shared-inventory", collaborationHandler.CreateSharedInventoryAgreement)
		}

		contracts := v1.Group("/contracts")
		{
			contracts.POST("", contractHandler.CreateContract)
			contracts.GET("/seller/:seller_id", contractHandler.GetSellerContracts)
			contracts.GET("/:id", contractHandler.GetContract)
			contracts.PUT("/:id", contractHandler.UpdateContract)
			contracts.PATCH("/:id", contractHandler.UpdateContract)
			contracts.DELETE("/:id", contractHandler.DeleteContract)
		}

		v1.POST("/proximity", proximityHandler.CalculateProximity)

		sellers := v1.Group("/sellers")
		{
			sellers.GET("", sellerHandler.GetSellers)
			sellers.POST("", sellerHandler.CreateSeller)
			sellers.GET("/:id", sellerHandler.GetSeller)
			sellers.PUT("/:id", sellerHandler.UpdateSeller)
		}

		brands := v1.Group("/brands")
		{
			brands.POST("", registryHandler.CreateBrand)
			brands.GET("/:id", registryHandler.GetBrand)
			brands.PUT("/:id", registryHandler.UpdateBrand)
			brands.DELETE("/:id", registryHandler.DeleteBrand)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", registryHandler.GetCategories)
			categories.POST("", registryHandler.CreateCategory)
			categories.GET("/:id", registryHandler.GetCategory)
			categories.DELETE("/:id", registryHandler.DeleteCategory)
		}
	}

	return r
}
