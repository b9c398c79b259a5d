package app

import (
	"github.com/highvale/orchard-backend/internal/handlers"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Field     *handlers.FieldHandler
	Tree      *handlers.TreeHandler
	Harvest   *handlers.HarvestHandler
	Pest      *handlers.PestHandler
	Inventory *handlers.InventoryHandler
	Equipment *handlers.EquipmentHandler
	Finance   *handlers.FinanceHandler
	Dashboard *handlers.DashboardHandler
	Variety   *handlers.VarietyHandler
	Rotation  *handlers.RotationHandler
}

func wireHandlers(s Services) Handlers {
	return Handlers{
		Auth:      handlers.NewAuthHandler(s.Auth),
		User:      handlers.NewUserHandler(s.User),
		Field:     handlers.NewFieldHandler(s.Field),
		Tree:      handlers.NewTreeHandler(s.Tree),
		Harvest:   handlers.NewHarvestHandler(s.Harvest),
		Pest:      handlers.NewPestHandler(s.Pest),
		Inventory: handlers.NewInventoryHandler(s.Inventory),
		Equipment: handlers.NewEquipmentHandler(s.Equipment),
		Finance:   handlers.NewFinanceHandler(s.Finance),
		Dashboard: handlers.NewDashboardHandler(s.Dashboard),
		Variety:   handlers.NewVarietyHandler(s.Variety),
		Rotation:  handlers.NewRotationHandler(s.Rotation),
	}
}
