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

type PestService interface {
	ScheduleTreatment(ctx context.Context, treatment *types.PestTreatment) (*types.PestTreatment, error)
	ListTreatments(ctx context.Context) ([]types.PestTreatment, error)
	CompleteTreatment(ctx context.Context, treatmentID uuid.UUID, effectiveness *types.Effectiveness) error
	Summary(ctx context.Context) (*analytics.TreatmentSummary, error)
}

type pestService struct {
	db       *gorm.DB
	log      *logger.Logger
	pestRepo repos.PestRepo
	treeRepo repos.TreeRepo
}

func NewPestService(db *gorm.DB, log *logger.Logger, pestRepo repos.PestRepo, treeRepo repos.TreeRepo) PestService {
	return &pestService{
		db:       db,
		log:      log.With("service", "PestService"),
		pestRepo: pestRepo,
		treeRepo: treeRepo,
	}
}

var validPestTypes = map[types.PestType]bool{
	types.PestWoollyAphid:  true,
	types.PestCodlingMoth:  true,
	types.PestScaleInsects: true,
	types.PestMites:        true,
	types.PestLeafRoller:   true,
}

var validEffectiveness = map[types.Effectiveness]bool{
	types.EffectivenessExcellent: true,
	types.EffectivenessGood:      true,
	types.EffectivenessFair:      true,
	types.EffectivenessPoor:      true,
}

func (ps *pestService) ScheduleTreatment(ctx context.Context, treatment *types.PestTreatment) (*types.PestTreatment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	if !validPestTypes[treatment.PestType] {
		return nil, validationErrorf("unknown pest type %q", treatment.PestType)
	}
	if treatment.Chemical == "" {
		return nil, validationErrorf("chemical is required")
	}
	if treatment.Dosage == "" {
		return nil, validationErrorf("dosage is required")
	}
	if treatment.TreatmentStep <= 0 {
		treatment.TreatmentStep = 1
	}
	if treatment.Cost < 0 {
		return nil, validationErrorf("treatment cost cannot be negative")
	}

	blocks, err := ps.treeRepo.GetByIDs(ctx, nil, rd.UserID, []uuid.UUID{treatment.TreeBlockID})
	if err != nil {
		return nil, fmt.Errorf("look up tree block: %w", err)
	}
	if len(blocks) == 0 {
		return nil, repos.ErrNotFound
	}

	treatment.ID = uuid.New()
	treatment.UserID = rd.UserID
	// A new treatment is always open; effectiveness is only recorded on
	// completion.
	treatment.Completed = false
	treatment.Effectiveness = nil
	if treatment.ApplicationDate.IsZero() {
		treatment.ApplicationDate = time.Now()
	}

	if _, err := ps.pestRepo.Create(ctx, nil, []*types.PestTreatment{treatment}); err != nil {
		return nil, fmt.Errorf("create pest treatment: %w", err)
	}
	return treatment, nil
}

func (ps *pestService) ListTreatments(ctx context.Context) ([]types.PestTreatment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	return ps.pestRepo.ListByUser(ctx, nil, rd.UserID)
}

func (ps *pestService) CompleteTreatment(ctx context.Context, treatmentID uuid.UUID, effectiveness *types.Effectiveness) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return errMissingIdentity()
	}
	if effectiveness != nil && !validEffectiveness[*effectiveness] {
		return validationErrorf("unknown effectiveness %q", *effectiveness)
	}
	return ps.pestRepo.MarkCompleted(ctx, nil, rd.UserID, treatmentID, effectiveness)
}

func (ps *pestService) Summary(ctx context.Context) (*analytics.TreatmentSummary, error) {
	treatments, err := ps.ListTreatments(ctx)
	if err != nil {
		return nil, err
	}
	summary := analytics.SummarizeTreatments(treatments)
	return &summary, nil
}
