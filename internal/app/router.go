package app

import (
	"github.com/gin-gonic/gin"

	"github.com/highvale/orchard-backend/internal/observability"
	"github.com/highvale/orchard-backend/internal/server"
)

func wireRouter(cfg Config, h Handlers, m Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		TracingEnabled: observability.Enabled(),

		AuthMiddleware: m.Auth,

		AuthHandler:      h.Auth,
		UserHandler:      h.User,
		FieldHandler:     h.Field,
		TreeHandler:      h.Tree,
		HarvestHandler:   h.Harvest,
		PestHandler:      h.Pest,
		InventoryHandler: h.Inventory,
		EquipmentHandler: h.Equipment,
		FinanceHandler:   h.Finance,
		DashboardHandler: h.Dashboard,
		VarietyHandler:   h.Variety,
		RotationHandler:  h.Rotation,
	})
}
