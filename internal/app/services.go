package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	Avatar    services.AvatarService
	User      services.UserService
	Field     services.FieldService
	Tree      services.TreeService
	Harvest   services.HarvestService
	Pest      services.PestService
	Inventory services.InventoryService
	Equipment services.EquipmentService
	Finance   services.FinanceService
	Dashboard services.DashboardService
	Variety   services.VarietyService
	Rotation  services.RotationService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, c Clients) (Services, error) {
	avatarService, err := services.NewAvatarService(log, r.User)
	if err != nil {
		return Services{}, fmt.Errorf("init avatar service: %w", err)
	}

	authService := services.NewAuthService(
		db, log, r.User, avatarService, c.TokenStore,
		cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
	)
	varietyService := services.NewVarietyService(db, log, r.Variety)

	return Services{
		Auth:      authService,
		Avatar:    avatarService,
		User:      services.NewUserService(db, log, r.User, avatarService),
		Field:     services.NewFieldService(db, log, r.Field, r.Fertilizer),
		Tree:      services.NewTreeService(db, log, r.Tree, r.Field, r.Harvest),
		Harvest:   services.NewHarvestService(db, log, r.Harvest, r.Tree, varietyService),
		Pest:      services.NewPestService(db, log, r.Pest, r.Tree),
		Inventory: services.NewInventoryService(db, log, r.Inventory),
		Equipment: services.NewEquipmentService(db, log, r.Equipment),
		Finance:   services.NewFinanceService(db, log, r.Finance),
		Dashboard: services.NewDashboardService(
			db, log, r.Field, r.Tree, r.Harvest, r.Pest, r.Finance, r.Inventory, r.Equipment,
		),
		Variety:  varietyService,
		Rotation: services.NewRotationService(db, log, r.Rotation),
	}, nil
}
