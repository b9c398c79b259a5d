package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/types"
)

type FieldRepo interface {
	Create(ctx context.Context, tx *gorm.DB, fields []*types.Field) ([]*types.Field, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Field, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ids []uuid.UUID) ([]types.Field, error)
	UpdateGrowthStage(ctx context.Context, tx *gorm.DB, userID, fieldID uuid.UUID, stage types.GrowthStage) error
	UpdateWeedState(ctx context.Context, tx *gorm.DB, userID, fieldID uuid.UUID, state types.WeedState) error
}

type fieldRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFieldRepo(db *gorm.DB, baseLog *logger.Logger) FieldRepo {
	return &fieldRepo{db: db, log: baseLog.With("repo", "FieldRepo")}
}

func (fr *fieldRepo) Create(ctx context.Context, tx *gorm.DB, fields []*types.Field) ([]*types.Field, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if len(fields) == 0 {
		return []*types.Field{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (fr *fieldRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Field, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []types.Field
	if err := transaction.WithContext(ctx).
		Preload("FertilizerApplications", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *fieldRepo) GetByIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ids []uuid.UUID) ([]types.Field, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []types.Field
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *fieldRepo) UpdateGrowthStage(ctx context.Context, tx *gorm.DB, userID, fieldID uuid.UUID, stage types.GrowthStage) error {
	return fr.updateColumn(ctx, tx, userID, fieldID, "growth_stage", stage)
}

func (fr *fieldRepo) UpdateWeedState(ctx context.Context, tx *gorm.DB, userID, fieldID uuid.UUID, state types.WeedState) error {
	return fr.updateColumn(ctx, tx, userID, fieldID, "weed_state", state)
}

func (fr *fieldRepo) updateColumn(ctx context.Context, tx *gorm.DB, userID, fieldID uuid.UUID, column string, value interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Field{}).
		Where("id = ? AND user_id = ?", fieldID, userID).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
