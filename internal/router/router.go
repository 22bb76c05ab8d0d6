package router

import (
	"fmt"
	"strings"

	"github.com/stylemart/internal/cache"
	"github.com/stylemart/internal/config"
	adminhandlers "github.com/stylemart/internal/http/handlers/admin"
	publichandlers "github.com/stylemart/internal/http/handlers/public"
	"github.com/stylemart/internal/logger"
	"github.com/stylemart/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sm"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "too many login attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded product images.
	uploadDir := strings.TrimSpace(cfg.Upload.Dir)
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	r.Static("/uploads", uploadDir)

	apiV1 := r.Group("/api/v1")
	{
		// Storefront, no auth.
		apiV1.GET("/products", publicHandler.ListProducts)
		apiV1.GET("/products/:id", publicHandler.GetProduct)
		apiV1.GET("/categories", publicHandler.ListCategories)
		apiV1.GET("/categories/:id", publicHandler.GetCategory)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// Signed-in users.
		user := apiV1.Group("")
		user.Use(UserAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.Profile)

			user.GET("/cart/:userId", publicHandler.GetCart)
			user.POST("/cart/:userId", publicHandler.AddCartItem)
			user.PUT("/cart/:userId/items/:itemId", publicHandler.UpdateCartItem)
			user.DELETE("/cart/:userId/items/:itemId", publicHandler.RemoveCartItem)
			user.DELETE("/cart/:userId", publicHandler.ClearCart)

			user.POST("/orders", publicHandler.CreateOrder)
			user.GET("/orders", publicHandler.ListMyOrders)
			user.GET("/orders/:id", publicHandler.GetMyOrder)
		}

		// Admin console.
		admin := apiV1.Group("/admin")
		admin.Use(UserAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), AdminRequiredMiddleware())
		{
			admin.GET("/products", adminHandler.ListProducts)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.GET("/categories", adminHandler.ListCategories)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:id", adminHandler.GetOrder)
			admin.PUT("/orders/:id", adminHandler.UpdateOrder)
			admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
			admin.DELETE("/orders/:id", adminHandler.DeleteOrder)

			admin.GET("/reports/quick-stats", adminHandler.QuickStats)
			admin.GET("/reports/revenue-trends", adminHandler.RevenueTrends)
			admin.GET("/reports/category-sales", adminHandler.CategorySales)
			admin.GET("/reports/best-sellers", adminHandler.BestSellers)

			admin.GET("/product-sales", adminHandler.ListProductSales)
			admin.POST("/product-sales", adminHandler.AddProductSale)
			admin.GET("/category-sales", adminHandler.ListCategorySales)
			admin.POST("/category-sales", adminHandler.AddCategorySale)

			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users", adminHandler.CreateUser)
			admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)

			admin.POST("/upload", adminHandler.UploadImages)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
