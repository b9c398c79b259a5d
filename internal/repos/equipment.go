package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/types"
)

type EquipmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, equipment []*types.Equipment) ([]*types.Equipment, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Equipment, error)
	UpdateCondition(ctx context.Context, tx *gorm.DB, userID, equipmentID uuid.UUID, condition types.Condition) error
}

type equipmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEquipmentRepo(db *gorm.DB, baseLog *logger.Logger) EquipmentRepo {
	return &equipmentRepo{db: db, log: baseLog.With("repo", "EquipmentRepo")}
}

func (er *equipmentRepo) Create(ctx context.Context, tx *gorm.DB, equipment []*types.Equipment) ([]*types.Equipment, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if len(equipment) == 0 {
		return []*types.Equipment{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&equipment).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}

func (er *equipmentRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Equipment, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []types.Equipment
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *equipmentRepo) UpdateCondition(ctx context.Context, tx *gorm.DB, userID, equipmentID uuid.UUID, condition types.Condition) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Equipment{}).
		Where("id = ? AND user_id = ?", equipmentID, userID).
		Update("condition", condition)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
