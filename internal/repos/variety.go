package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/types"
)

type VarietyRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, infos []*types.VarietyInfo) error
	List(ctx context.Context, tx *gorm.DB) ([]types.VarietyInfo, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.VarietyInfo, error)
}

type varietyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVarietyRepo(db *gorm.DB, baseLog *logger.Logger) VarietyRepo {
	return &varietyRepo{db: db, log: baseLog.With("repo", "VarietyRepo")}
}

// Upsert writes the seeded knowledge base rows, replacing existing entries so
// a changed YAML file wins on next boot.
func (vr *varietyRepo) Upsert(ctx context.Context, tx *gorm.DB, infos []*types.VarietyInfo) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if len(infos) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).
		Create(&infos).Error
}

func (vr *varietyRepo) List(ctx context.Context, tx *gorm.DB) ([]types.VarietyInfo, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var results []types.VarietyInfo
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *varietyRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.VarietyInfo, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var info types.VarietyInfo
	err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&info).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}
