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

type HarvestService interface {
	RecordHarvest(ctx context.Context, record *types.HarvestRecord) (*types.HarvestRecord, error)
	ListHarvest(ctx context.Context) ([]types.HarvestRecord, error)
	Summary(ctx context.Context) (*analytics.HarvestSummary, error)
}

type harvestService struct {
	db             *gorm.DB
	log            *logger.Logger
	harvestRepo    repos.HarvestRepo
	treeRepo       repos.TreeRepo
	varietyService VarietyService
}

func NewHarvestService(db *gorm.DB, log *logger.Logger, harvestRepo repos.HarvestRepo, treeRepo repos.TreeRepo, varietyService VarietyService) HarvestService {
	return &harvestService{
		db:             db,
		log:            log.With("service", "HarvestService"),
		harvestRepo:    harvestRepo,
		treeRepo:       treeRepo,
		varietyService: varietyService,
	}
}

var validQualityGrades = map[types.QualityGrade]bool{
	types.GradePremium:    true,
	types.GradeStandard:   true,
	types.GradeProcessing: true,
}

// RecordHarvest denormalizes the variety name from the tree block onto the
// record and derives total revenue from bin count and price. A zero price
// falls back to the knowledge base recommendation for the variety.
func (hs *harvestService) RecordHarvest(ctx context.Context, record *types.HarvestRecord) (*types.HarvestRecord, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	if record.BinCount <= 0 {
		return nil, validationErrorf("bin count must be positive")
	}
	if record.PricePerBin < 0 {
		return nil, validationErrorf("price per bin cannot be negative")
	}
	if record.QualityGrade == "" {
		record.QualityGrade = types.GradeStandard
	}
	if !validQualityGrades[record.QualityGrade] {
		return nil, validationErrorf("unknown quality grade %q", record.QualityGrade)
	}

	blocks, err := hs.treeRepo.GetByIDs(ctx, nil, rd.UserID, []uuid.UUID{record.TreeBlockID})
	if err != nil {
		return nil, fmt.Errorf("look up tree block: %w", err)
	}
	if len(blocks) == 0 {
		return nil, repos.ErrNotFound
	}
	block := blocks[0]

	record.Variety = block.Variety
	if record.PricePerBin == 0 {
		if price, ok := hs.varietyService.RecommendedPrice(ctx, block.Variety); ok {
			record.PricePerBin = price
		} else {
			return nil, validationErrorf("price per bin is required for variety %q", block.Variety)
		}
	}

	record.ID = uuid.New()
	record.UserID = rd.UserID
	record.TotalRevenue = record.BinCount * record.PricePerBin
	if record.HarvestDate.IsZero() {
		record.HarvestDate = time.Now()
	}

	if _, err := hs.harvestRepo.Create(ctx, nil, []*types.HarvestRecord{record}); err != nil {
		return nil, fmt.Errorf("create harvest record: %w", err)
	}
	return record, nil
}

func (hs *harvestService) ListHarvest(ctx context.Context) ([]types.HarvestRecord, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	return hs.harvestRepo.ListByUser(ctx, nil, rd.UserID)
}

func (hs *harvestService) Summary(ctx context.Context) (*analytics.HarvestSummary, error) {
	records, err := hs.ListHarvest(ctx)
	if err != nil {
		return nil, err
	}
	summary := analytics.SummarizeHarvest(records)
	return &summary, nil
}
