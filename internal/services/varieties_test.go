package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/pkg/logger"
	"github.com/highvale/orchard-backend/internal/repos"
	"github.com/highvale/orchard-backend/internal/types"
)

type fakeVarietyRepo struct {
	upserted []*types.VarietyInfo
}

func (f *fakeVarietyRepo) Upsert(ctx context.Context, tx *gorm.DB, infos []*types.VarietyInfo) error {
	f.upserted = append(f.upserted, infos...)
	return nil
}

func (f *fakeVarietyRepo) List(ctx context.Context, tx *gorm.DB) ([]types.VarietyInfo, error) {
	out := make([]types.VarietyInfo, 0, len(f.upserted))
	for _, info := range f.upserted {
		out = append(out, *info)
	}
	return out, nil
}

func (f *fakeVarietyRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.VarietyInfo, error) {
	for _, info := range f.upserted {
		if info.Name == name {
			return info, nil
		}
	}
	return nil, repos.ErrNotFound
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestSeedFromFile(t *testing.T) {
	repo := &fakeVarietyRepo{}
	svc := NewVarietyService(nil, testLogger(t), repo)

	path := writeSeedFile(t, `
varieties:
  - name: Ambri
    harvest_season: October - November
    avg_price_per_bin: 3000
    storage_life_days: 200
    common_pests: [scale_insects, mites]
    market_demand: high
  - name: Gala
    harvest_season: August - September
    avg_price_per_bin: 2400
    storage_life_days: 120
    common_pests: [codling_moth]
    market_demand: medium
`)

	if err := svc.SeedFromFile(context.Background(), path); err != nil {
		t.Fatalf("SeedFromFile: %v", err)
	}
	if len(repo.upserted) != 2 {
		t.Fatalf("upserted %d varieties, want 2", len(repo.upserted))
	}
	ambri := repo.upserted[0]
	if ambri.Name != "Ambri" || ambri.AvgPricePerBin != 3000 || ambri.StorageLifeDays != 200 {
		t.Fatalf("unexpected Ambri row: %+v", ambri)
	}
	if ambri.MarketDemand != types.DemandHigh {
		t.Fatalf("Ambri market demand = %q, want high", ambri.MarketDemand)
	}
	if string(ambri.CommonPests) != `["scale_insects","mites"]` {
		t.Fatalf("Ambri common pests = %s", ambri.CommonPests)
	}
}

func TestSeedFromFileRejectsUnnamedEntry(t *testing.T) {
	repo := &fakeVarietyRepo{}
	svc := NewVarietyService(nil, testLogger(t), repo)

	path := writeSeedFile(t, `
varieties:
  - harvest_season: October
    avg_price_per_bin: 1000
`)
	if err := svc.SeedFromFile(context.Background(), path); err == nil {
		t.Fatal("expected error for entry without a name")
	}
	if len(repo.upserted) != 0 {
		t.Fatalf("nothing should be upserted on error, got %d", len(repo.upserted))
	}
}

func TestRecommendedPrice(t *testing.T) {
	repo := &fakeVarietyRepo{upserted: []*types.VarietyInfo{
		{Name: "Fuji", AvgPricePerBin: 2600},
	}}
	svc := NewVarietyService(nil, testLogger(t), repo)

	price, ok := svc.RecommendedPrice(context.Background(), "Fuji")
	if !ok || price != 2600 {
		t.Fatalf("RecommendedPrice(Fuji) = (%v, %v), want (2600, true)", price, ok)
	}
	if _, ok := svc.RecommendedPrice(context.Background(), "Honeycrisp"); ok {
		t.Fatal("unknown variety should not report a price")
	}
}
