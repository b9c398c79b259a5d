package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/repos"
	"github.com/highvale/orchard-backend/internal/types"
)

// RotationService owns the crop rotation knowledge base: recommended
// multi-year rotation plans seeded from a YAML file at boot and served
// read-only to the planner screens.
type RotationService interface {
	SeedFromFile(ctx context.Context, path string) error
	ListBaseCrops(ctx context.Context) ([]string, error)
	GetPlan(ctx context.Context, baseCrop string) ([]types.RotationStep, error)
}

type rotationService struct {
	db           *gorm.DB
	log          *logger.Logger
	rotationRepo repos.RotationRepo
}

func NewRotationService(db *gorm.DB, log *logger.Logger, rotationRepo repos.RotationRepo) RotationService {
	return &rotationService{
		db:           db,
		log:          log.With("service", "RotationService"),
		rotationRepo: rotationRepo,
	}
}

type rotationFile struct {
	Rotations []rotationEntry `yaml:"rotations"`
}

type rotationEntry struct {
	BaseCrop string              `yaml:"base_crop"`
	Plan     []rotationStepEntry `yaml:"plan"`
}

type rotationStepEntry struct {
	Year           int      `yaml:"year"`
	Crop           string   `yaml:"crop"`
	Benefits       []string `yaml:"benefits"`
	PlantingWindow string   `yaml:"planting_window"`
}

func (rs *rotationService) SeedFromFile(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rotations file: %w", err)
	}

	var parsed rotationFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse rotations file: %w", err)
	}

	var steps []*types.RotationStep
	for _, entry := range parsed.Rotations {
		if entry.BaseCrop == "" {
			return fmt.Errorf("rotations file has a plan without a base crop")
		}
		if len(entry.Plan) == 0 {
			return fmt.Errorf("rotation plan for %q has no steps", entry.BaseCrop)
		}
		seenYears := make(map[int]bool, len(entry.Plan))
		for _, step := range entry.Plan {
			if step.Year <= 0 {
				return fmt.Errorf("rotation plan for %q has a step without a year", entry.BaseCrop)
			}
			if seenYears[step.Year] {
				return fmt.Errorf("rotation plan for %q repeats year %d", entry.BaseCrop, step.Year)
			}
			seenYears[step.Year] = true
			if step.Crop == "" {
				return fmt.Errorf("rotation plan for %q year %d has no crop", entry.BaseCrop, step.Year)
			}
			benefits, err := json.Marshal(step.Benefits)
			if err != nil {
				return fmt.Errorf("encode benefits for %q year %d: %w", entry.BaseCrop, step.Year, err)
			}
			steps = append(steps, &types.RotationStep{
				BaseCrop:       entry.BaseCrop,
				Year:           step.Year,
				Crop:           step.Crop,
				Benefits:       benefits,
				PlantingWindow: step.PlantingWindow,
			})
		}
	}
	sort.SliceStable(steps, func(i, j int) bool {
		if steps[i].BaseCrop != steps[j].BaseCrop {
			return steps[i].BaseCrop < steps[j].BaseCrop
		}
		return steps[i].Year < steps[j].Year
	})

	if err := rs.rotationRepo.Upsert(ctx, nil, steps); err != nil {
		return fmt.Errorf("seed rotations: %w", err)
	}
	rs.log.Info("Seeded rotation knowledge base", "steps", len(steps), "path", path)
	return nil
}

func (rs *rotationService) ListBaseCrops(ctx context.Context) ([]string, error) {
	return rs.rotationRepo.ListBaseCrops(ctx, nil)
}

func (rs *rotationService) GetPlan(ctx context.Context, baseCrop string) ([]types.RotationStep, error) {
	if baseCrop == "" {
		return nil, validationErrorf("base crop is required")
	}
	return rs.rotationRepo.GetPlan(ctx, nil, baseCrop)
}
