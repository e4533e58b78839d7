// internal/router/router.go
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/config"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/handlers"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/middleware"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/services"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store/memory"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store/postgres"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// Initialize wires stores, services, handlers, and routes. db is nil
// when DATABASE_URL is unset; the process then runs on the in-memory
// store for the whole of its lifetime.
func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	utils.SetJWTSecret(cfg.JWT.Secret)
	handlers.ShowErrorDetails(cfg.Environment != "production")

	var stores *store.Stores
	if db != nil {
		stores = postgres.NewStores(db)
		logrus.Info("Using persistent database store")
	} else {
		stores = memory.NewStores()
		if err := memory.SeedSampleProducts(context.Background(), stores.Products); err != nil {
			logrus.WithError(err).Warn("Failed to seed sample products")
		}
		logrus.Warn("DATABASE_URL not set, using in-memory store; data is lost on restart")
	}

	// Services
	authService := services.NewAuthService(stores.Users, cfg)
	userService := services.NewUserService(stores.Users)
	contentService := services.NewAdvertiseContentService(stores.Contents)
	advertiseOrderService := services.NewAdvertiseOrderService(stores.AdvertiseOrders, stores.Contents)
	productService := services.NewProductService(stores.Products)
	reviewService := services.NewReviewService(stores.Reviews)
	orderService := services.NewOrderService(stores.Orders)
	catalogService := services.NewCatalogService(stores.Catalog)

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if err := authService.EnsureSuperAdmin(context.Background(), cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			logrus.WithError(err).Error("Failed to ensure super admin account")
		}
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	contentHandler := handlers.NewAdvertiseContentHandler(contentService)
	advertiseOrderHandler := handlers.NewAdvertiseOrderHandler(advertiseOrderService)
	productHandler := handlers.NewProductHandler(productService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	orderHandler := handlers.NewOrderHandler(orderService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Shob Kisu is running!")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	{
		// Products
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.GetByID)
			products.POST("", productHandler.Create)
		}

		// Cart checkout
		api.POST("/orders", orderHandler.Create)

		// Reviews
		reviews := api.Group("/reviews")
		{
			reviews.GET("/:productId", reviewHandler.ListByProduct)
			reviews.POST("/:productId", reviewHandler.Create)
		}

		// Advertise contents. Static segments are registered before the
		// :id wildcard so /search and /active never parse as ids.
		contents := api.Group("/advertise-contents")
		{
			contents.GET("", contentHandler.List)
			contents.GET("/search", contentHandler.Search)
			contents.GET("/active", contentHandler.ActiveOffers)
			contents.GET("/slug/:slug", contentHandler.GetBySlug)
			contents.GET("/:id", contentHandler.GetByID)
			contents.POST("", contentHandler.Create)
			contents.PUT("/:id", contentHandler.Update)
			contents.DELETE("/:id", contentHandler.Delete)
		}

		// Advertise orders
		advertiseOrders := api.Group("/advertise-orders")
		{
			advertiseOrders.POST("", advertiseOrderHandler.Create)
			advertiseOrders.GET("", advertiseOrderHandler.List)
			advertiseOrders.GET("/stats", advertiseOrderHandler.Stats)
			advertiseOrders.GET("/:id", advertiseOrderHandler.GetByID)
			advertiseOrders.PUT("/:id", advertiseOrderHandler.Update)
			advertiseOrders.DELETE("/:id", advertiseOrderHandler.Delete)
		}

		// Auth
		auth := api.Group("/auth")
		{
			auth.POST("/register", middleware.AuthRateLimit(), authHandler.Register)
			auth.POST("/login", middleware.AuthRateLimit(), authHandler.Login)
			auth.GET("/me", middleware.Authenticate(), authHandler.Me)
			auth.GET("/admin-only",
				middleware.Authenticate(),
				middleware.AuthorizeRoles(models.RoleAdmin, models.RoleSuperAdmin),
				authHandler.AdminOnly)
			auth.POST("/register-admin",
				middleware.Authenticate(),
				middleware.AuthorizeRoles(models.RoleSuperAdmin),
				authHandler.RegisterAdmin)
		}

		// User management (admin surface)
		users := api.Group("/users")
		users.Use(middleware.Authenticate(), middleware.AuthorizeRoles(models.RoleAdmin, models.RoleSuperAdmin))
		{
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.GetByID)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
			users.PUT("/:id/password", userHandler.UpdatePassword)
		}

		// Device taxonomies
		catalog := api.Group("/catalog")
		{
			catalog.GET("/colors", catalogHandler.ListColors)
			catalog.POST("/colors", catalogHandler.CreateColor)
			catalog.GET("/models", catalogHandler.ListDeviceModels)
			catalog.POST("/models", catalogHandler.CreateDeviceModel)
			catalog.GET("/sims", catalogHandler.ListSims)
			catalog.POST("/sims", catalogHandler.CreateSim)
			catalog.GET("/storages", catalogHandler.ListStorages)
			catalog.POST("/storages", catalogHandler.CreateStorage)
			catalog.GET("/warranties", catalogHandler.ListWarranties)
			catalog.POST("/warranties", catalogHandler.CreateWarranty)
			catalog.GET("/conditions", catalogHandler.ListDeviceConditions)
			catalog.POST("/conditions", catalogHandler.CreateDeviceCondition)
		}
	}

	return r
}
