package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/types"
)

type RotationRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, steps []*types.RotationStep) error
	ListBaseCrops(ctx context.Context, tx *gorm.DB) ([]string, error)
	GetPlan(ctx context.Context, tx *gorm.DB, baseCrop string) ([]types.RotationStep, error)
}

type rotationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRotationRepo(db *gorm.DB, baseLog *logger.Logger) RotationRepo {
	return &rotationRepo{db: db, log: baseLog.With("repo", "RotationRepo")}
}

// Upsert writes the seeded plan steps, replacing existing entries so a
// changed YAML file wins on next boot.
func (rr *rotationRepo) Upsert(ctx context.Context, tx *gorm.DB, steps []*types.RotationStep) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if len(steps) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "base_crop"}, {Name: "year"}},
			UpdateAll: true,
		}).
		Create(&steps).Error
}

func (rr *rotationRepo) ListBaseCrops(ctx context.Context, tx *gorm.DB) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var crops []string
	if err := transaction.WithContext(ctx).
		Model(&types.RotationStep{}).
		Distinct("base_crop").
		Order("base_crop ASC").
		Pluck("base_crop", &crops).Error; err != nil {
		return nil, err
	}
	return crops, nil
}

func (rr *rotationRepo) GetPlan(ctx context.Context, tx *gorm.DB, baseCrop string) ([]types.RotationStep, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var steps []types.RotationStep
	if err := transaction.WithContext(ctx).
		Where("base_crop = ?", baseCrop).
		Order("year ASC").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, ErrNotFound
	}
	return steps, nil
}
