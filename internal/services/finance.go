package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/analytics"
	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/repos"
	"github.com/highvale/orchard-backend/internal/requestdata"
	"github.com/highvale/orchard-backend/internal/types"
)

type FinanceService interface {
	RecordEntry(ctx context.Context, entry *types.FinancialEntry) (*types.FinancialEntry, error)
	ListEntries(ctx context.Context) ([]types.FinancialEntry, error)
	Totals(ctx context.Context) (*analytics.FinancialTotals, error)
	TotalsByCategory(ctx context.Context) ([]analytics.CategoryTotal, error)
}

type financeService struct {
	db          *gorm.DB
	log         *logger.Logger
	financeRepo repos.FinanceRepo
}

func NewFinanceService(db *gorm.DB, log *logger.Logger, financeRepo repos.FinanceRepo) FinanceService {
	return &financeService{
		db:          db,
		log:         log.With("service", "FinanceService"),
		financeRepo: financeRepo,
	}
}

var validEntryTypes = map[types.EntryType]bool{
	types.EntryIncome:  true,
	types.EntryExpense: true,
}

var validCategories = map[types.FinanceCategory]bool{
	types.CategorySales:      true,
	types.CategoryPurchases:  true,
	types.CategoryEquipment:  true,
	types.CategoryFertilizer: true,
	types.CategoryPesticide:  true,
	types.CategoryLabor:      true,
	types.CategoryOther:      true,
}

// RecordEntry stores amounts as positive magnitudes; the entry type decides
// which side of the ledger they land on.
func (fs *financeService) RecordEntry(ctx context.Context, entry *types.FinancialEntry) (*types.FinancialEntry, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	if entry.Description == "" {
		return nil, validationErrorf("description is required")
	}
	if entry.Amount <= 0 {
		return nil, validationErrorf("amount must be positive")
	}
	if !validEntryTypes[entry.EntryType] {
		return nil, validationErrorf("unknown entry type %q", entry.EntryType)
	}
	if entry.Category == "" {
		entry.Category = types.CategoryOther
	}
	if !validCategories[entry.Category] {
		return nil, validationErrorf("unknown category %q", entry.Category)
	}

	entry.ID = uuid.New()
	entry.UserID = rd.UserID
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	if _, err := fs.financeRepo.Create(ctx, nil, []*types.FinancialEntry{entry}); err != nil {
		return nil, fmt.Errorf("create financial entry: %w", err)
	}
	return entry, nil
}

func (fs *financeService) ListEntries(ctx context.Context) ([]types.FinancialEntry, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	return fs.financeRepo.ListByUser(ctx, nil, rd.UserID)
}

func (fs *financeService) Totals(ctx context.Context) (*analytics.FinancialTotals, error) {
	entries, err := fs.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	totals := analytics.ComputeFinancialTotals(entries)
	return &totals, nil
}

func (fs *financeService) TotalsByCategory(ctx context.Context) ([]analytics.CategoryTotal, error) {
	entries, err := fs.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.TotalsByCategory(entries), nil
}
