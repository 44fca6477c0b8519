// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/pos-backend/internal/config"
	"github.com/your-org/pos-backend/internal/interfaces/http/handlers"
	"github.com/your-org/pos-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	setupAuthRoutes(rg, db, cfg)
	setupStoreRoutes(rg, db, cfg)
	setupCatalogRoutes(rg, db, cfg)
	setupCartRoutes(rg, db, redisClient, cfg)
	setupOrderRoutes(rg, db, redisClient, cfg)
	setupExpenseRoutes(rg, db, cfg)
	setupReportRoutes(rg, db, cfg)
}

func setupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", authHandler.GetProfile)
		}

		// Account administration
		admin := auth.Group("/accounts")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole("admin"))
		{
			admin.POST("", authHandler.Register)
			admin.GET("", authHandler.ListAccounts)
			admin.DELETE("/:id", authHandler.DeactivateAccount)
		}
	}
}

func setupStoreRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	storeHandler := handlers.NewStoreHandler(db, cfg)

	stores := rg.Group("/stores")
	stores.Use(middleware.AuthMiddleware(cfg))
	{
		stores.GET("", storeHandler.ListStores)
		stores.GET("/:id", storeHandler.GetStore)
		stores.GET("/:id/tables", storeHandler.ListTables)

		admin := stores.Group("")
		admin.Use(middleware.RequireRole("admin", "manager"))
		{
			admin.POST("", storeHandler.CreateStore)
			admin.PUT("/:id", storeHandler.UpdateStore)
			admin.DELETE("/:id", storeHandler.DeleteStore)
		}
	}

	tables := rg.Group("/tables")
	tables.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole("admin", "manager"))
	{
		tables.POST("", storeHandler.CreateTable)
		tables.PUT("/:id", storeHandler.UpdateTable)
		tables.DELETE("/:id", storeHandler.DeleteTable)
	}
}

func setupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)

	catalog := rg.Group("/catalog")
	catalog.Use(middleware.AuthMiddleware(cfg))
	{
		catalog.GET("/categories", catalogHandler.ListCategories)
		catalog.GET("/products", catalogHandler.ListProducts)
		catalog.GET("/products/:id", catalogHandler.GetProduct)

		admin := catalog.Group("")
		admin.Use(middleware.RequireRole("admin", "manager"))
		{
			admin.POST("/categories", catalogHandler.CreateCategory)
			admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
			admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)
			admin.POST("/products", catalogHandler.CreateProduct)
			admin.PUT("/products/:id", catalogHandler.UpdateProduct)
			admin.DELETE("/products/:id", catalogHandler.DeleteProduct)
		}
	}
}

func setupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)

	cart := rg.Group("/cart")
	cart.Use(middleware.AuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)

		cart.POST("/items", cartHandler.AddProduct)
		cart.POST("/items/:itemId/increment", cartHandler.IncrementItem)
		cart.POST("/items/:itemId/decrement", cartHandler.DecrementItem)
		cart.POST("/items/:itemId/void", cartHandler.VoidItem)
		cart.PUT("/items/:itemId/notes", cartHandler.SetItemNotes)
		cart.DELETE("/items/:itemId", cartHandler.RemoveItem)

		cart.POST("/items/:itemId/add-ons", cartHandler.AddAddOn)
		cart.POST("/items/:itemId/add-ons/:productId/decrement", cartHandler.DecrementAddOn)

		cart.POST("/staged", cartHandler.StageEntry)
		cart.DELETE("/staged/:entryId", cartHandler.RemoveStagedEntry)
		cart.POST("/staged/expand", cartHandler.ExpandStaged)
	}
}

func setupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(db, redisClient, cfg)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.POST("", orderHandler.SubmitOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
		orders.PUT("/:id/payment", orderHandler.SettlePayment)
	}
}

func setupExpenseRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	expenseHandler := handlers.NewExpenseHandler(db, cfg)

	expenses := rg.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole("admin", "manager"))
	{
		expenses.GET("/categories", expenseHandler.ListCategories)
		expenses.POST("/categories", expenseHandler.CreateCategory)

		expenses.GET("", expenseHandler.ListExpenses)
		expenses.POST("", expenseHandler.CreateExpense)
		expenses.PUT("/:id", expenseHandler.UpdateExpense)
		expenses.PUT("/:id/settle", expenseHandler.SettleExpense)
		expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	}
}

func setupReportRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	reportHandler := handlers.NewReportHandler(db, cfg)

	reports := rg.Group("/reports")
	reports.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole("admin", "manager"))
	{
		reports.GET("/sales", reportHandler.SalesReport)
	}
}
