package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/analytics"
	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/repos"
	"github.com/highvale/orchard-backend/internal/requestdata"
	"github.com/highvale/orchard-backend/internal/types"
)

type DashboardService interface {
	Overview(ctx context.Context) (*analytics.DashboardOverview, error)
}

type dashboardService struct {
	db            *gorm.DB
	log           *logger.Logger
	fieldRepo     repos.FieldRepo
	treeRepo      repos.TreeRepo
	harvestRepo   repos.HarvestRepo
	pestRepo      repos.PestRepo
	financeRepo   repos.FinanceRepo
	inventoryRepo repos.InventoryRepo
	equipmentRepo repos.EquipmentRepo
	now           func() time.Time
}

func NewDashboardService(
	db *gorm.DB,
	log *logger.Logger,
	fieldRepo repos.FieldRepo,
	treeRepo repos.TreeRepo,
	harvestRepo repos.HarvestRepo,
	pestRepo repos.PestRepo,
	financeRepo repos.FinanceRepo,
	inventoryRepo repos.InventoryRepo,
	equipmentRepo repos.EquipmentRepo,
) DashboardService {
	return &dashboardService{
		db:            db,
		log:           log.With("service", "DashboardService"),
		fieldRepo:     fieldRepo,
		treeRepo:      treeRepo,
		harvestRepo:   harvestRepo,
		pestRepo:      pestRepo,
		financeRepo:   financeRepo,
		inventoryRepo: inventoryRepo,
		equipmentRepo: equipmentRepo,
		now:           time.Now,
	}
}

// Overview fetches all seven entity lists concurrently and only computes the
// card set once every fetch has succeeded. Any failed fetch fails the whole
// overview rather than serving partial numbers.
func (ds *dashboardService) Overview(ctx context.Context) (*analytics.DashboardOverview, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	userID := rd.UserID

	var (
		fields     []types.Field
		blocks     []types.TreeBlock
		harvest    []types.HarvestRecord
		treatments []types.PestTreatment
		finances   []types.FinancialEntry
		inventory  []types.InventoryItem
		equipment  []types.Equipment
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		fields, err = ds.fieldRepo.ListByUser(groupCtx, nil, userID)
		return err
	})
	group.Go(func() error {
		var err error
		blocks, err = ds.treeRepo.ListByUser(groupCtx, nil, userID)
		return err
	})
	group.Go(func() error {
		var err error
		harvest, err = ds.harvestRepo.ListByUser(groupCtx, nil, userID)
		return err
	})
	group.Go(func() error {
		var err error
		treatments, err = ds.pestRepo.ListByUser(groupCtx, nil, userID)
		return err
	})
	group.Go(func() error {
		var err error
		finances, err = ds.financeRepo.ListByUser(groupCtx, nil, userID)
		return err
	})
	group.Go(func() error {
		var err error
		inventory, err = ds.inventoryRepo.ListByUser(groupCtx, nil, userID)
		return err
	})
	group.Go(func() error {
		var err error
		equipment, err = ds.equipmentRepo.ListByUser(groupCtx, nil, userID)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("fetch dashboard inputs: %w", err)
	}

	overview := analytics.ComputeDashboardOverview(
		fields, blocks, harvest, treatments, finances, inventory, equipment, ds.now(),
	)
	return &overview, nil
}
