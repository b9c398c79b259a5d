package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/types"
)

type TreeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, blocks []*types.TreeBlock) ([]*types.TreeBlock, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.TreeBlock, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ids []uuid.UUID) ([]types.TreeBlock, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, userID, blockID uuid.UUID, status types.TreeStatus, lastPruned *time.Time) error
}

type treeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTreeRepo(db *gorm.DB, baseLog *logger.Logger) TreeRepo {
	return &treeRepo{db: db, log: baseLog.With("repo", "TreeRepo")}
}

func (tr *treeRepo) Create(ctx context.Context, tx *gorm.DB, blocks []*types.TreeBlock) ([]*types.TreeBlock, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if len(blocks) == 0 {
		return []*types.TreeBlock{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (tr *treeRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.TreeBlock, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []types.TreeBlock
	if err := transaction.WithContext(ctx).
		Preload("Field").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *treeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, ids []uuid.UUID) ([]types.TreeBlock, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []types.TreeBlock
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

func (tr *treeRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, userID, blockID uuid.UUID, status types.TreeStatus, lastPruned *time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	updates := map[string]interface{}{"status": status}
	if lastPruned != nil {
		updates["last_pruned"] = *lastPruned
	}
	res := transaction.WithContext(ctx).
		Model(&types.TreeBlock{}).
		Where("id = ? AND user_id = ?", blockID, userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
