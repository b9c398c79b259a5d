package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/types"
)

type HarvestRepo interface {
	Create(ctx context.Context, tx *gorm.DB, records []*types.HarvestRecord) ([]*types.HarvestRecord, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.HarvestRecord, error)
}

type harvestRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHarvestRepo(db *gorm.DB, baseLog *logger.Logger) HarvestRepo {
	return &harvestRepo{db: db, log: baseLog.With("repo", "HarvestRepo")}
}

func (hr *harvestRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.HarvestRecord) ([]*types.HarvestRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if len(records) == 0 {
		return []*types.HarvestRecord{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByUser orders by the harvest date rather than creation time: the
// "recent activity" views want the latest picking, not the latest data entry.
func (hr *harvestRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.HarvestRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var results []types.HarvestRecord
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("harvest_date DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
