package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/analytics"
	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/repos"
	"github.com/highvale/orchard-backend/internal/requestdata"
	"github.com/highvale/orchard-backend/internal/types"
)

type TreeService interface {
	CreateTreeBlock(ctx context.Context, block *types.TreeBlock) (*types.TreeBlock, error)
	ListTreeBlocks(ctx context.Context) ([]types.TreeBlock, error)
	UpdateTreeStatus(ctx context.Context, blockID uuid.UUID, status types.TreeStatus) error
	Summary(ctx context.Context) (*analytics.TreeSummary, error)
	VarietyPerformance(ctx context.Context) ([]analytics.VarietyPerformance, error)
}

type treeService struct {
	db          *gorm.DB
	log         *logger.Logger
	treeRepo    repos.TreeRepo
	fieldRepo   repos.FieldRepo
	harvestRepo repos.HarvestRepo
	now         func() time.Time
}

func NewTreeService(db *gorm.DB, log *logger.Logger, treeRepo repos.TreeRepo, fieldRepo repos.FieldRepo, harvestRepo repos.HarvestRepo) TreeService {
	return &treeService{
		db:          db,
		log:         log.With("service", "TreeService"),
		treeRepo:    treeRepo,
		fieldRepo:   fieldRepo,
		harvestRepo: harvestRepo,
		now:         time.Now,
	}
}

var validTreeStatuses = map[types.TreeStatus]bool{
	types.TreeHealthy:  true,
	types.TreeDiseased: true,
	types.TreePruned:   true,
	types.TreeDormant:  true,
}

func (ts *treeService) CreateTreeBlock(ctx context.Context, block *types.TreeBlock) (*types.TreeBlock, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	if block.Variety == "" {
		return nil, validationErrorf("variety is required")
	}
	if block.TreeCount <= 0 {
		return nil, validationErrorf("tree count must be positive")
	}
	if block.PlantingYear <= 0 {
		return nil, validationErrorf("planting year is required")
	}
	if block.PlantingYear > ts.now().Year() {
		return nil, validationErrorf("planting year cannot be in the future")
	}
	if block.Status == "" {
		block.Status = types.TreeHealthy
	}
	if !validTreeStatuses[block.Status] {
		return nil, validationErrorf("unknown tree status %q", block.Status)
	}

	fields, err := ts.fieldRepo.GetByIDs(ctx, nil, rd.UserID, []uuid.UUID{block.FieldID})
	if err != nil {
		return nil, fmt.Errorf("look up field: %w", err)
	}
	if len(fields) == 0 {
		return nil, repos.ErrNotFound
	}

	block.ID = uuid.New()
	block.UserID = rd.UserID

	if _, err := ts.treeRepo.Create(ctx, nil, []*types.TreeBlock{block}); err != nil {
		return nil, fmt.Errorf("create tree block: %w", err)
	}
	return block, nil
}

func (ts *treeService) ListTreeBlocks(ctx context.Context) ([]types.TreeBlock, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	return ts.treeRepo.ListByUser(ctx, nil, rd.UserID)
}

// UpdateTreeStatus also stamps last_pruned when the new status is pruned.
func (ts *treeService) UpdateTreeStatus(ctx context.Context, blockID uuid.UUID, status types.TreeStatus) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return errMissingIdentity()
	}
	if !validTreeStatuses[status] {
		return validationErrorf("unknown tree status %q", status)
	}
	var lastPruned *time.Time
	if status == types.TreePruned {
		pruned := ts.now()
		lastPruned = &pruned
	}
	return ts.treeRepo.UpdateStatus(ctx, nil, rd.UserID, blockID, status, lastPruned)
}

func (ts *treeService) Summary(ctx context.Context) (*analytics.TreeSummary, error) {
	blocks, err := ts.ListTreeBlocks(ctx)
	if err != nil {
		return nil, err
	}
	summary := analytics.SummarizeTrees(blocks)
	return &summary, nil
}

// VarietyPerformance joins tree blocks against harvest records per variety.
// Both lists are fetched concurrently and the computation only starts once
// both have arrived, so the report never mixes a fresh list with a failed one.
func (ts *treeService) VarietyPerformance(ctx context.Context) ([]analytics.VarietyPerformance, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}

	var (
		blocks  []types.TreeBlock
		records []types.HarvestRecord
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		blocks, err = ts.treeRepo.ListByUser(groupCtx, nil, rd.UserID)
		return err
	})
	group.Go(func() error {
		var err error
		records, err = ts.harvestRepo.ListByUser(groupCtx, nil, rd.UserID)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("fetch variety inputs: %w", err)
	}

	return analytics.ComputeVarietyPerformance(blocks, records, ts.now().Year()), nil
}
