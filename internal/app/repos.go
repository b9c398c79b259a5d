package app

import (
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/repos"
)

type Repos struct {
	User       repos.UserRepo
	Field      repos.FieldRepo
	Fertilizer repos.FertilizerRepo
	Tree       repos.TreeRepo
	Harvest    repos.HarvestRepo
	Pest       repos.PestRepo
	Inventory  repos.InventoryRepo
	Equipment  repos.EquipmentRepo
	Finance    repos.FinanceRepo
	Variety    repos.VarietyRepo
	Rotation   repos.RotationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		User:       repos.NewUserRepo(db, log),
		Field:      repos.NewFieldRepo(db, log),
		Fertilizer: repos.NewFertilizerRepo(db, log),
		Tree:       repos.NewTreeRepo(db, log),
		Harvest:    repos.NewHarvestRepo(db, log),
		Pest:       repos.NewPestRepo(db, log),
		Inventory:  repos.NewInventoryRepo(db, log),
		Equipment:  repos.NewEquipmentRepo(db, log),
		Finance:    repos.NewFinanceRepo(db, log),
		Variety:    repos.NewVarietyRepo(db, log),
		Rotation:   repos.NewRotationRepo(db, log),
	}
}
