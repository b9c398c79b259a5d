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

// EquipmentWithStatus annotates a machine with whether its next service falls
// inside the due window.
type EquipmentWithStatus struct {
	types.Equipment
	ServiceDue bool `json:"service_due"`
}

type EquipmentService interface {
	AddEquipment(ctx context.Context, eq *types.Equipment) (*types.Equipment, error)
	ListEquipment(ctx context.Context) ([]EquipmentWithStatus, error)
	UpdateCondition(ctx context.Context, equipmentID uuid.UUID, condition types.Condition) error
	Summary(ctx context.Context) (*analytics.EquipmentSummary, error)
}

type equipmentService struct {
	db            *gorm.DB
	log           *logger.Logger
	equipmentRepo repos.EquipmentRepo
	now           func() time.Time
}

func NewEquipmentService(db *gorm.DB, log *logger.Logger, equipmentRepo repos.EquipmentRepo) EquipmentService {
	return &equipmentService{
		db:            db,
		log:           log.With("service", "EquipmentService"),
		equipmentRepo: equipmentRepo,
		now:           time.Now,
	}
}

var validOwnerships = map[types.Ownership]bool{
	types.OwnershipOwned:  true,
	types.OwnershipLeased: true,
}

var validConditions = map[types.Condition]bool{
	types.ConditionExcellent: true,
	types.ConditionGood:      true,
	types.ConditionFair:      true,
	types.ConditionPoor:      true,
}

func (es *equipmentService) AddEquipment(ctx context.Context, eq *types.Equipment) (*types.Equipment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	if eq.Name == "" {
		return nil, validationErrorf("equipment name is required")
	}
	if eq.Type == "" {
		return nil, validationErrorf("equipment type is required")
	}
	if !validOwnerships[eq.Ownership] {
		return nil, validationErrorf("unknown ownership %q", eq.Ownership)
	}
	if eq.Condition == "" {
		eq.Condition = types.ConditionGood
	}
	if !validConditions[eq.Condition] {
		return nil, validationErrorf("unknown condition %q", eq.Condition)
	}
	if eq.DailyCost < 0 {
		return nil, validationErrorf("daily cost cannot be negative")
	}
	if eq.NextService.IsZero() {
		return nil, validationErrorf("next service date is required")
	}

	eq.ID = uuid.New()
	eq.UserID = rd.UserID
	if eq.LastMaintenance.IsZero() {
		eq.LastMaintenance = es.now()
	}

	if _, err := es.equipmentRepo.Create(ctx, nil, []*types.Equipment{eq}); err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}
	return eq, nil
}

func (es *equipmentService) ListEquipment(ctx context.Context) ([]EquipmentWithStatus, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	equipment, err := es.equipmentRepo.ListByUser(ctx, nil, rd.UserID)
	if err != nil {
		return nil, err
	}

	ref := es.now()
	annotated := make([]EquipmentWithStatus, 0, len(equipment))
	for _, eq := range equipment {
		annotated = append(annotated, EquipmentWithStatus{
			Equipment:  eq,
			ServiceDue: analytics.ServiceDue(eq, ref),
		})
	}
	return annotated, nil
}

func (es *equipmentService) UpdateCondition(ctx context.Context, equipmentID uuid.UUID, condition types.Condition) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return errMissingIdentity()
	}
	if !validConditions[condition] {
		return validationErrorf("unknown condition %q", condition)
	}
	return es.equipmentRepo.UpdateCondition(ctx, nil, rd.UserID, equipmentID, condition)
}

func (es *equipmentService) Summary(ctx context.Context) (*analytics.EquipmentSummary, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	equipment, err := es.equipmentRepo.ListByUser(ctx, nil, rd.UserID)
	if err != nil {
		return nil, err
	}
	summary := analytics.SummarizeEquipment(equipment, es.now())
	return &summary, nil
}
