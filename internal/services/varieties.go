package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/repos"
	"github.com/highvale/orchard-backend/internal/types"
)

// VarietyService owns the apple variety knowledge base: reference data seeded
// from a YAML file at boot and read by harvest pricing and the varieties API.
type VarietyService interface {
	SeedFromFile(ctx context.Context, path string) error
	ListVarieties(ctx context.Context) ([]types.VarietyInfo, error)
	GetVariety(ctx context.Context, name string) (*types.VarietyInfo, error)
	RecommendedPrice(ctx context.Context, variety string) (float64, bool)
}

type varietyService struct {
	db          *gorm.DB
	log         *logger.Logger
	varietyRepo repos.VarietyRepo
}

func NewVarietyService(db *gorm.DB, log *logger.Logger, varietyRepo repos.VarietyRepo) VarietyService {
	return &varietyService{
		db:          db,
		log:         log.With("service", "VarietyService"),
		varietyRepo: varietyRepo,
	}
}

type varietyFile struct {
	Varieties []varietyEntry `yaml:"varieties"`
}

type varietyEntry struct {
	Name            string   `yaml:"name"`
	HarvestSeason   string   `yaml:"harvest_season"`
	AvgPricePerBin  float64  `yaml:"avg_price_per_bin"`
	StorageLifeDays int      `yaml:"storage_life_days"`
	CommonPests     []string `yaml:"common_pests"`
	MarketDemand    string   `yaml:"market_demand"`
}

func (vs *varietyService) SeedFromFile(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read varieties file: %w", err)
	}

	var parsed varietyFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse varieties file: %w", err)
	}

	infos := make([]*types.VarietyInfo, 0, len(parsed.Varieties))
	for _, entry := range parsed.Varieties {
		if entry.Name == "" {
			return fmt.Errorf("varieties file has an entry without a name")
		}
		pests, err := json.Marshal(entry.CommonPests)
		if err != nil {
			return fmt.Errorf("encode common pests for %q: %w", entry.Name, err)
		}
		infos = append(infos, &types.VarietyInfo{
			Name:            entry.Name,
			HarvestSeason:   entry.HarvestSeason,
			AvgPricePerBin:  entry.AvgPricePerBin,
			StorageLifeDays: entry.StorageLifeDays,
			CommonPests:     pests,
			MarketDemand:    types.MarketDemand(entry.MarketDemand),
		})
	}

	if err := vs.varietyRepo.Upsert(ctx, nil, infos); err != nil {
		return fmt.Errorf("seed varieties: %w", err)
	}
	vs.log.Info("Seeded variety knowledge base", "count", len(infos), "path", path)
	return nil
}

func (vs *varietyService) ListVarieties(ctx context.Context) ([]types.VarietyInfo, error) {
	return vs.varietyRepo.List(ctx, nil)
}

func (vs *varietyService) GetVariety(ctx context.Context, name string) (*types.VarietyInfo, error) {
	if name == "" {
		return nil, validationErrorf("variety name is required")
	}
	return vs.varietyRepo.GetByName(ctx, nil, name)
}

// RecommendedPrice returns the knowledge base price for a variety. Unknown
// varieties report ok=false so the caller can decide to require an explicit
// price instead.
func (vs *varietyService) RecommendedPrice(ctx context.Context, variety string) (float64, bool) {
	info, err := vs.varietyRepo.GetByName(ctx, nil, variety)
	if err != nil {
		return 0, false
	}
	return info.AvgPricePerBin, true
}
