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

// ItemWithStatus is an inventory row annotated with the derived stock state
// the dashboard badges are driven by.
type ItemWithStatus struct {
	types.InventoryItem
	StockStatus string `json:"stock_status"`
	Expiring    bool   `json:"expiring"`
}

type InventoryService interface {
	AddItem(ctx context.Context, item *types.InventoryItem) (*types.InventoryItem, error)
	ListItems(ctx context.Context) ([]ItemWithStatus, error)
	AdjustQuantity(ctx context.Context, itemID uuid.UUID, quantity float64) error
	Summary(ctx context.Context) (*analytics.InventorySummary, error)
}

type inventoryService struct {
	db            *gorm.DB
	log           *logger.Logger
	inventoryRepo repos.InventoryRepo
	now           func() time.Time
}

func NewInventoryService(db *gorm.DB, log *logger.Logger, inventoryRepo repos.InventoryRepo) InventoryService {
	return &inventoryService{
		db:            db,
		log:           log.With("service", "InventoryService"),
		inventoryRepo: inventoryRepo,
		now:           time.Now,
	}
}

var validItemTypes = map[types.ItemType]bool{
	types.ItemFertilizer: true,
	types.ItemPesticide:  true,
}

func (is *inventoryService) AddItem(ctx context.Context, item *types.InventoryItem) (*types.InventoryItem, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	if item.Name == "" {
		return nil, validationErrorf("item name is required")
	}
	if !validItemTypes[item.ItemType] {
		return nil, validationErrorf("unknown item type %q", item.ItemType)
	}
	if item.Quantity < 0 {
		return nil, validationErrorf("quantity cannot be negative")
	}
	if item.Unit == "" {
		return nil, validationErrorf("unit is required")
	}
	if item.PricePerUnit < 0 {
		return nil, validationErrorf("price per unit cannot be negative")
	}

	item.ID = uuid.New()
	item.UserID = rd.UserID

	if _, err := is.inventoryRepo.Create(ctx, nil, []*types.InventoryItem{item}); err != nil {
		return nil, fmt.Errorf("create inventory item: %w", err)
	}
	return item, nil
}

func (is *inventoryService) ListItems(ctx context.Context) ([]ItemWithStatus, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	items, err := is.inventoryRepo.ListByUser(ctx, nil, rd.UserID)
	if err != nil {
		return nil, err
	}

	ref := is.now()
	annotated := make([]ItemWithStatus, 0, len(items))
	for _, item := range items {
		annotated = append(annotated, ItemWithStatus{
			InventoryItem: item,
			StockStatus:   analytics.ClassifyStock(item.Quantity),
			Expiring:      analytics.ItemExpiring(item, ref),
		})
	}
	return annotated, nil
}

func (is *inventoryService) AdjustQuantity(ctx context.Context, itemID uuid.UUID, quantity float64) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return errMissingIdentity()
	}
	if quantity < 0 {
		return validationErrorf("quantity cannot be negative")
	}
	return is.inventoryRepo.UpdateQuantity(ctx, nil, rd.UserID, itemID, quantity)
}

func (is *inventoryService) Summary(ctx context.Context) (*analytics.InventorySummary, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	items, err := is.inventoryRepo.ListByUser(ctx, nil, rd.UserID)
	if err != nil {
		return nil, err
	}
	summary := analytics.SummarizeInventory(items, is.now())
	return &summary, nil
}
