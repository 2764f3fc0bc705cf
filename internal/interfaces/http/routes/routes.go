// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/store-backend/internal/config"
	"github.com/your-org/store-backend/internal/interfaces/http/handlers"
	"github.com/your-org/store-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	SetupUserRoutes(rg, db, cfg)
	SetupProductRoutes(rg, db, cfg)
	SetupCartRoutes(rg, db, cfg)
}

// SetupUserRoutes sets up user and authentication related routes
func SetupUserRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	userHandler := handlers.NewUserHandler(db, cfg)

	users := rg.Group("/users")
	{
		// Public endpoints
		users.POST("", userHandler.Register)
		users.POST("/login", userHandler.Login)

		// Protected endpoints
		protected := users.Group("")
		protected.Use(middleware.Auth(cfg))
		{
			protected.GET("/check-token", userHandler.CheckToken)
			protected.GET("/me", userHandler.MyProducts)
			protected.GET("/orders", userHandler.MyOrders)
			protected.GET("/orders/:id", userHandler.MyOrder)
			protected.GET("/:id", userHandler.Get)
			protected.PATCH("/:id", userHandler.Update)
			protected.DELETE("/:id", userHandler.Delete)

			// Admin-only endpoints
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("", userHandler.List)
			}
		}
	}
}

// SetupProductRoutes sets up product and category related routes
func SetupProductRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)
	categoryHandler := handlers.NewCategoryHandler(db, cfg)

	products := rg.Group("/products")
	{
		// Public endpoints
		products.GET("", productHandler.List)
		products.GET("/categories", categoryHandler.List)
		products.GET("/:id", productHandler.Get)

		// Protected endpoints
		protected := products.Group("")
		protected.Use(middleware.Auth(cfg))
		{
			protected.POST("", productHandler.Create)
			protected.PATCH("/:id", productHandler.Update)
			protected.DELETE("/:id", productHandler.Delete)

			// Admin-only endpoints
			admin := protected.Group("/categories")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("", categoryHandler.Create)
				admin.PATCH("/:id", categoryHandler.Update)
			}
		}
	}
}

// SetupCartRoutes sets up shopping cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, cfg)

	carts := rg.Group("/cart")
	carts.Use(middleware.Auth(cfg)) // All cart routes require authentication
	{
		carts.GET("", cartHandler.GetCart)
		carts.POST("/add-product", cartHandler.AddProduct)
		carts.PATCH("/update-cart", cartHandler.UpdateCart)
		carts.POST("/purchase", cartHandler.Purchase)
		carts.DELETE("/:productId", cartHandler.RemoveProduct)
	}
}
