package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/highvale/orchard-backend/internal/repos"
	"github.com/highvale/orchard-backend/internal/types"
)

type fakeRotationRepo struct {
	upserted []*types.RotationStep
}

func (f *fakeRotationRepo) Upsert(ctx context.Context, tx *gorm.DB, steps []*types.RotationStep) error {
	f.upserted = append(f.upserted, steps...)
	return nil
}

func (f *fakeRotationRepo) ListBaseCrops(ctx context.Context, tx *gorm.DB) ([]string, error) {
	seen := map[string]bool{}
	var crops []string
	for _, step := range f.upserted {
		if !seen[step.BaseCrop] {
			seen[step.BaseCrop] = true
			crops = append(crops, step.BaseCrop)
		}
	}
	return crops, nil
}

func (f *fakeRotationRepo) GetPlan(ctx context.Context, tx *gorm.DB, baseCrop string) ([]types.RotationStep, error) {
	var plan []types.RotationStep
	for _, step := range f.upserted {
		if step.BaseCrop == baseCrop {
			plan = append(plan, *step)
		}
	}
	if len(plan) == 0 {
		return nil, repos.ErrNotFound
	}
	return plan, nil
}

func TestRotationSeedFromFile(t *testing.T) {
	repo := &fakeRotationRepo{}
	svc := NewRotationService(nil, testLogger(t), repo)

	path := writeSeedFile(t, `
rotations:
  - base_crop: Winter Wheat
    plan:
      - year: 2
        crop: Spring Barley
        benefits: [Quick cash crop, Pest cycle break]
        planting_window: March - April
      - year: 1
        crop: Winter Wheat
        benefits: [Nitrogen fixation]
        planting_window: September - October
`)

	if err := svc.SeedFromFile(context.Background(), path); err != nil {
		t.Fatalf("SeedFromFile: %v", err)
	}
	if len(repo.upserted) != 2 {
		t.Fatalf("upserted %d steps, want 2", len(repo.upserted))
	}
	// Steps are sorted by year before upserting regardless of file order.
	first := repo.upserted[0]
	if first.Year != 1 || first.Crop != "Winter Wheat" {
		t.Fatalf("first step = year %d crop %q, want year 1 Winter Wheat", first.Year, first.Crop)
	}
	if first.PlantingWindow != "September - October" {
		t.Fatalf("first step planting window = %q", first.PlantingWindow)
	}
	if string(first.Benefits) != `["Nitrogen fixation"]` {
		t.Fatalf("first step benefits = %s", first.Benefits)
	}
	second := repo.upserted[1]
	if second.Year != 2 || second.Crop != "Spring Barley" {
		t.Fatalf("second step = year %d crop %q, want year 2 Spring Barley", second.Year, second.Crop)
	}
}

func TestRotationSeedRejectsBadPlans(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{
			"no base crop",
			`
rotations:
  - plan:
      - {year: 1, crop: Oats}
`,
		},
		{
			"empty plan",
			`
rotations:
  - base_crop: Potatoes
    plan: []
`,
		},
		{
			"duplicate year",
			`
rotations:
  - base_crop: Potatoes
    plan:
      - {year: 1, crop: Potatoes}
      - {year: 1, crop: Oats}
`,
		},
		{
			"step without crop",
			`
rotations:
  - base_crop: Potatoes
    plan:
      - {year: 1}
`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRotationRepo{}
			svc := NewRotationService(nil, testLogger(t), repo)
			path := writeSeedFile(t, tc.yaml)
			if err := svc.SeedFromFile(context.Background(), path); err == nil {
				t.Fatal("expected seed error")
			}
			if len(repo.upserted) != 0 {
				t.Fatalf("nothing should be upserted on error, got %d", len(repo.upserted))
			}
		})
	}
}

func TestRotationGetPlan(t *testing.T) {
	repo := &fakeRotationRepo{upserted: []*types.RotationStep{
		{BaseCrop: "Winter Wheat", Year: 1, Crop: "Winter Wheat"},
		{BaseCrop: "Winter Wheat", Year: 2, Crop: "Spring Barley"},
	}}
	svc := NewRotationService(nil, testLogger(t), repo)

	plan, err := svc.GetPlan(context.Background(), "Winter Wheat")
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if len(plan) != 2 {
		t.Fatalf("plan has %d steps, want 2", len(plan))
	}

	if _, err := svc.GetPlan(context.Background(), "Maize"); err != repos.ErrNotFound {
		t.Fatalf("unknown crop error = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetPlan(context.Background(), ""); err == nil {
		t.Fatal("empty crop should be rejected")
	}
}
