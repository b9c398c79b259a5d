package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/types"
)

type FertilizerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, apps []*types.FertilizerApplication) ([]*types.FertilizerApplication, error)
	ListByField(ctx context.Context, tx *gorm.DB, userID, fieldID uuid.UUID) ([]types.FertilizerApplication, error)
}

type fertilizerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFertilizerRepo(db *gorm.DB, baseLog *logger.Logger) FertilizerRepo {
	return &fertilizerRepo{db: db, log: baseLog.With("repo", "FertilizerRepo")}
}

func (fr *fertilizerRepo) Create(ctx context.Context, tx *gorm.DB, apps []*types.FertilizerApplication) ([]*types.FertilizerApplication, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if len(apps) == 0 {
		return []*types.FertilizerApplication{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (fr *fertilizerRepo) ListByField(ctx context.Context, tx *gorm.DB, userID, fieldID uuid.UUID) ([]types.FertilizerApplication, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []types.FertilizerApplication
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND field_id = ?", userID, fieldID).
		Order("date DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
