package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/types"
)

type FinanceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.FinancialEntry) ([]*types.FinancialEntry, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.FinancialEntry, error)
}

type financeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFinanceRepo(db *gorm.DB, baseLog *logger.Logger) FinanceRepo {
	return &financeRepo{db: db, log: baseLog.With("repo", "FinanceRepo")}
}

func (fr *financeRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.FinancialEntry) ([]*types.FinancialEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if len(entries) == 0 {
		return []*types.FinancialEntry{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByUser orders by the ledger date, newest first, so "recent activity"
// views can take the head of the list directly.
func (fr *financeRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.FinancialEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []types.FinancialEntry
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
