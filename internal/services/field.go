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

type FieldService interface {
	CreateField(ctx context.Context, field *types.Field) (*types.Field, error)
	ListFields(ctx context.Context) ([]types.Field, error)
	UpdateGrowthStage(ctx context.Context, fieldID uuid.UUID, stage types.GrowthStage) error
	UpdateWeedState(ctx context.Context, fieldID uuid.UUID, state types.WeedState) error
	RecordFertilizerApplication(ctx context.Context, app *types.FertilizerApplication) (*types.FertilizerApplication, error)
	Summary(ctx context.Context) (*analytics.FieldSummary, error)
}

type fieldService struct {
	db             *gorm.DB
	log            *logger.Logger
	fieldRepo      repos.FieldRepo
	fertilizerRepo repos.FertilizerRepo
}

func NewFieldService(db *gorm.DB, log *logger.Logger, fieldRepo repos.FieldRepo, fertilizerRepo repos.FertilizerRepo) FieldService {
	return &fieldService{
		db:             db,
		log:            log.With("service", "FieldService"),
		fieldRepo:      fieldRepo,
		fertilizerRepo: fertilizerRepo,
	}
}

var validGrowthStages = map[types.GrowthStage]bool{
	types.StageSeeding:    true,
	types.StageVegetative: true,
	types.StageFlowering:  true,
	types.StageFruiting:   true,
	types.StageHarvesting: true,
}

var validWeedStates = map[types.WeedState]bool{
	types.WeedLow:    true,
	types.WeedMedium: true,
	types.WeedHigh:   true,
}

func (fs *fieldService) CreateField(ctx context.Context, field *types.Field) (*types.Field, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	if field.Name == "" {
		return nil, validationErrorf("field name is required")
	}
	if field.Area <= 0 {
		return nil, validationErrorf("field area must be positive")
	}
	if field.GrowthStage == "" {
		field.GrowthStage = types.StageSeeding
	}
	if !validGrowthStages[field.GrowthStage] {
		return nil, validationErrorf("unknown growth stage %q", field.GrowthStage)
	}
	if field.WeedState == "" {
		field.WeedState = types.WeedLow
	}
	if !validWeedStates[field.WeedState] {
		return nil, validationErrorf("unknown weed state %q", field.WeedState)
	}

	field.ID = uuid.New()
	field.UserID = rd.UserID
	if field.PlantingDate.IsZero() {
		field.PlantingDate = time.Now()
	}

	if _, err := fs.fieldRepo.Create(ctx, nil, []*types.Field{field}); err != nil {
		return nil, fmt.Errorf("create field: %w", err)
	}
	return field, nil
}

func (fs *fieldService) ListFields(ctx context.Context) ([]types.Field, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	return fs.fieldRepo.ListByUser(ctx, nil, rd.UserID)
}

func (fs *fieldService) UpdateGrowthStage(ctx context.Context, fieldID uuid.UUID, stage types.GrowthStage) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return errMissingIdentity()
	}
	if !validGrowthStages[stage] {
		return validationErrorf("unknown growth stage %q", stage)
	}
	return fs.fieldRepo.UpdateGrowthStage(ctx, nil, rd.UserID, fieldID, stage)
}

func (fs *fieldService) UpdateWeedState(ctx context.Context, fieldID uuid.UUID, state types.WeedState) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return errMissingIdentity()
	}
	if !validWeedStates[state] {
		return validationErrorf("unknown weed state %q", state)
	}
	return fs.fieldRepo.UpdateWeedState(ctx, nil, rd.UserID, fieldID, state)
}

// RecordFertilizerApplication writes the application under the parent field
// after confirming the field belongs to the caller.
func (fs *fieldService) RecordFertilizerApplication(ctx context.Context, app *types.FertilizerApplication) (*types.FertilizerApplication, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, errMissingIdentity()
	}
	if app.Type == "" {
		return nil, validationErrorf("fertilizer type is required")
	}
	if app.Amount <= 0 {
		return nil, validationErrorf("fertilizer amount must be positive")
	}
	if app.Cost < 0 {
		return nil, validationErrorf("fertilizer cost cannot be negative")
	}

	fields, err := fs.fieldRepo.GetByIDs(ctx, nil, rd.UserID, []uuid.UUID{app.FieldID})
	if err != nil {
		return nil, fmt.Errorf("look up field: %w", err)
	}
	if len(fields) == 0 {
		return nil, repos.ErrNotFound
	}

	app.ID = uuid.New()
	app.UserID = rd.UserID
	if app.Date.IsZero() {
		app.Date = time.Now()
	}

	if _, err := fs.fertilizerRepo.Create(ctx, nil, []*types.FertilizerApplication{app}); err != nil {
		return nil, fmt.Errorf("create fertilizer application: %w", err)
	}
	return app, nil
}

func (fs *fieldService) Summary(ctx context.Context) (*analytics.FieldSummary, error) {
	fields, err := fs.ListFields(ctx)
	if err != nil {
		return nil, err
	}
	summary := analytics.SummarizeFields(fields)
	return &summary, nil
}
