package routes

import (
	"os"

	"github.com/MuKuL-DiXiT/Fit-Fusion/config"
	"github.com/MuKuL-DiXiT/Fit-Fusion/controllers"
	"github.com/MuKuL-DiXiT/Fit-Fusion/middlewares"
	"github.com/MuKuL-DiXiT/Fit-Fusion/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// shared services
	hub := services.NewStockHub()
	foods := services.NewFoodCatalogService()
	planSvc := services.NewDietPlanService(config.DB, foods)
	orderSvc := services.NewOrderService(config.DB, services.NewOrderMailNotifier(config.DB))
	productSvc := services.NewProductService(config.DB, hub)
	healthSvc := services.NewHealthLogService(config.DB, foods)
	suggestionSvc := services.NewSuggestionService()

	planCtl := controllers.NewDietPlanController(planSvc, suggestionSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	productCtl := controllers.NewProductController(productSvc)
	supplierCtl := controllers.NewSupplierController(productSvc)
	healthCtl := controllers.NewHealthController(healthSvc)
	suggestionCtl := controllers.NewSuggestionController(suggestionSvc)
	stockCtl := controllers.NewStockWSController(hub)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public catalog browsing
	api.GET("/products", productCtl.List)
	api.GET("/products/:productId", productCtl.Get)

	// Protected user routes
	user := api.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/products/:productId/reviews", productCtl.AddReview)

		supplier := protected.Group("/supplier")
		{
			supplier.GET("/inventory", supplierCtl.Inventory)
			supplier.PUT("/inventory", supplierCtl.UpdateInventory)
			supplier.POST("/products/:productId/image", supplierCtl.UploadProductImage)
		}

		plans := protected.Group("/diet-plans")
		{
			plans.GET("", planCtl.List)
			plans.GET("/recent", planCtl.Recent)
			plans.GET("/:planId", planCtl.Get)
			plans.POST("", planCtl.Create)
			plans.PUT("/:planId", planCtl.Update)
			plans.DELETE("/:planId", planCtl.Delete)
			plans.POST("/:planId/items", planCtl.AddItem)
			plans.DELETE("/:planId/items/:itemId", planCtl.RemoveItem)
			plans.POST("/generate-ai", planCtl.GenerateAI)
		}

		orders := protected.Group("/orders")
		{
			orders.GET("/cart", orderCtl.GetCart)
			orders.POST("/cart/items", orderCtl.AddCartItem)
			orders.PUT("/cart/items/:itemId", orderCtl.UpdateCartItem)
			orders.DELETE("/cart/items/:itemId", orderCtl.RemoveCartItem)
			orders.POST("/place-order", orderCtl.PlaceOrder)
			orders.GET("", orderCtl.List)
			orders.GET("/:orderId", orderCtl.Get)
			orders.PUT("/:orderId/status", orderCtl.UpdateStatus)
		}

		health := protected.Group("/health")
		{
			health.GET("/food-logs", healthCtl.ListFoodLogs)
			health.POST("/food-logs", healthCtl.AddFoodLog)
			health.DELETE("/food-logs/:logId", healthCtl.DeleteFoodLog)
			health.GET("/exercise-logs", healthCtl.ListExerciseLogs)
			health.POST("/exercise-logs", healthCtl.AddExerciseLog)
			health.DELETE("/exercise-logs/:logId", healthCtl.DeleteExerciseLog)
			health.GET("/summary", healthCtl.Summary)
		}

		protected.POST("/gemini-suggestions", suggestionCtl.Generate)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/stock", stockCtl.StockWS)
	}

	return r
}
