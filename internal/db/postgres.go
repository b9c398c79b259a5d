package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/types"
	"github.com/highvale/orchard-backend/internal/utils"
)

type StoreService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewStoreService connects to Postgres, or to a local sqlite file when
// DB_DRIVER=sqlite (used for development without a Postgres instance).
func NewStoreService(log *logger.Logger) (*StoreService, error) {
	serviceLog := log.With("service", "StoreService")

	driver := utils.GetEnv("DB_DRIVER", "postgres", log)

	var dial gorm.Dialector
	switch driver {
	case "sqlite":
		path := utils.GetEnv("SQLITE_PATH", "orchard.db", log)
		dial = sqlite.Open(path)
	default:
		host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
		port := utils.GetEnv("POSTGRES_PORT", "5432", log)
		user := utils.GetEnv("POSTGRES_USER", "postgres", log)
		password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		name := utils.GetEnv("POSTGRES_NAME", "orchard", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		dial = postgres.Open(dsn)
	}

	serviceLog.Info("Connecting to store", "driver", driver)
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}

	return &StoreService{db: db, log: serviceLog}, nil
}

func (s *StoreService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.Field{},
		&types.FertilizerApplication{},
		&types.TreeBlock{},
		&types.HarvestRecord{},
		&types.PestTreatment{},
		&types.InventoryItem{},
		&types.Equipment{},
		&types.FinancialEntry{},
		&types.VarietyInfo{},
		&types.RotationStep{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *StoreService) DB() *gorm.DB {
	return s.db
}
