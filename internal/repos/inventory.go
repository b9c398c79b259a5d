package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/types"
)

type InventoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.InventoryItem) ([]*types.InventoryItem, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.InventoryItem, error)
	UpdateQuantity(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID, quantity float64) error
}

type inventoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInventoryRepo(db *gorm.DB, baseLog *logger.Logger) InventoryRepo {
	return &inventoryRepo{db: db, log: baseLog.With("repo", "InventoryRepo")}
}

func (ir *inventoryRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.InventoryItem) ([]*types.InventoryItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if len(items) == 0 {
		return []*types.InventoryItem{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (ir *inventoryRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.InventoryItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var results []types.InventoryItem
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *inventoryRepo) UpdateQuantity(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID, quantity float64) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.InventoryItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
