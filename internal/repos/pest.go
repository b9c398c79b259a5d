package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/types"
)

type PestRepo interface {
	Create(ctx context.Context, tx *gorm.DB, treatments []*types.PestTreatment) ([]*types.PestTreatment, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.PestTreatment, error)
	MarkCompleted(ctx context.Context, tx *gorm.DB, userID, treatmentID uuid.UUID, effectiveness *types.Effectiveness) error
}

type pestRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPestRepo(db *gorm.DB, baseLog *logger.Logger) PestRepo {
	return &pestRepo{db: db, log: baseLog.With("repo", "PestRepo")}
}

func (pr *pestRepo) Create(ctx context.Context, tx *gorm.DB, treatments []*types.PestTreatment) ([]*types.PestTreatment, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(treatments) == 0 {
		return []*types.PestTreatment{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&treatments).Error; err != nil {
		return nil, err
	}
	return treatments, nil
}

func (pr *pestRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.PestTreatment, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []types.PestTreatment
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *pestRepo) MarkCompleted(ctx context.Context, tx *gorm.DB, userID, treatmentID uuid.UUID, effectiveness *types.Effectiveness) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	updates := map[string]interface{}{"completed": true}
	if effectiveness != nil {
		updates["effectiveness"] = *effectiveness
	}
	res := transaction.WithContext(ctx).
		Model(&types.PestTreatment{}).
		Where("id = ? AND user_id = ?", treatmentID, userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
