package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/highvale/orchard-backend/internal/handlers"
	"github.com/highvale/orchard-backend/internal/middleware"
)

type RouterConfig struct {
	AllowedOrigins []string
	TracingEnabled bool

	AuthMiddleware *middleware.AuthMiddleware

	AuthHandler      *handlers.AuthHandler
	UserHandler      *handlers.UserHandler
	FieldHandler     *handlers.FieldHandler
	TreeHandler      *handlers.TreeHandler
	HarvestHandler   *handlers.HarvestHandler
	PestHandler      *handlers.PestHandler
	InventoryHandler *handlers.InventoryHandler
	EquipmentHandler *handlers.EquipmentHandler
	FinanceHandler   *handlers.FinanceHandler
	DashboardHandler *handlers.DashboardHandler
	VarietyHandler   *handlers.VarietyHandler
	RotationHandler  *handlers.RotationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware("orchard-backend"))
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)
	router.POST("/refresh", cfg.AuthHandler.Refresh)

	// Protected
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	protected.POST("/logout", cfg.AuthHandler.Logout)

	protected.GET("/dashboard", cfg.DashboardHandler.Overview)

	protected.GET("/fields", cfg.FieldHandler.List)
	protected.POST("/fields", cfg.FieldHandler.Create)
	protected.PATCH("/fields/:id/growth-stage", cfg.FieldHandler.UpdateGrowthStage)
	protected.PATCH("/fields/:id/weed-state", cfg.FieldHandler.UpdateWeedState)
	protected.POST("/fields/:id/fertilizer", cfg.FieldHandler.RecordFertilizer)
	protected.GET("/fields/summary", cfg.FieldHandler.Summary)

	protected.GET("/trees", cfg.TreeHandler.List)
	protected.POST("/trees", cfg.TreeHandler.Create)
	protected.PATCH("/trees/:id/status", cfg.TreeHandler.UpdateStatus)
	protected.GET("/trees/summary", cfg.TreeHandler.Summary)
	protected.GET("/trees/variety-performance", cfg.TreeHandler.VarietyPerformance)

	protected.GET("/harvest", cfg.HarvestHandler.List)
	protected.POST("/harvest", cfg.HarvestHandler.Create)
	protected.GET("/harvest/summary", cfg.HarvestHandler.Summary)

	protected.GET("/treatments", cfg.PestHandler.List)
	protected.POST("/treatments", cfg.PestHandler.Create)
	protected.PATCH("/treatments/:id/complete", cfg.PestHandler.Complete)
	protected.GET("/treatments/summary", cfg.PestHandler.Summary)

	protected.GET("/inventory", cfg.InventoryHandler.List)
	protected.POST("/inventory", cfg.InventoryHandler.Create)
	protected.PATCH("/inventory/:id/quantity", cfg.InventoryHandler.UpdateQuantity)
	protected.GET("/inventory/summary", cfg.InventoryHandler.Summary)

	protected.GET("/equipment", cfg.EquipmentHandler.List)
	protected.POST("/equipment", cfg.EquipmentHandler.Create)
	protected.PATCH("/equipment/:id/condition", cfg.EquipmentHandler.UpdateCondition)
	protected.GET("/equipment/summary", cfg.EquipmentHandler.Summary)

	protected.GET("/finances", cfg.FinanceHandler.List)
	protected.POST("/finances", cfg.FinanceHandler.Create)
	protected.GET("/finances/totals", cfg.FinanceHandler.Totals)
	protected.GET("/finances/totals-by-category", cfg.FinanceHandler.TotalsByCategory)

	protected.GET("/users", cfg.UserHandler.List)
	protected.POST("/users/invite", cfg.UserHandler.Invite)
	protected.PATCH("/users/:id/activate", cfg.UserHandler.Activate)
	protected.GET("/users/summary", cfg.UserHandler.Summary)

	protected.GET("/varieties", cfg.VarietyHandler.List)
	protected.GET("/varieties/:name", cfg.VarietyHandler.Get)

	protected.GET("/rotations", cfg.RotationHandler.List)
	protected.GET("/rotations/:crop", cfg.RotationHandler.Get)

	return router
}
