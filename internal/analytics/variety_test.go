package analytics

import (
	"testing"

	"github.com/highvale/orchard-backend/internal/types"
)

func TestComputeVarietyPerformance(t *testing.T) {
	blocks := []types.TreeBlock{
		{Variety: "Ambri", TreeCount: 40, PlantingYear: 2015, Status: types.TreeHealthy, YieldEstimate: 200},
		{Variety: "Gala", TreeCount: 25, PlantingYear: 2020, Status: types.TreeDiseased, YieldEstimate: 90},
		{Variety: "Ambri", TreeCount: 60, PlantingYear: 2019, Status: types.TreeHealthy, YieldEstimate: 260},
	}
	records := []types.HarvestRecord{
		{Variety: "Ambri", BinCount: 10, PricePerBin: 100, TotalRevenue: 1000, QualityGrade: types.GradePremium},
		{Variety: "Ambri", BinCount: 20, PricePerBin: 150, TotalRevenue: 3000, QualityGrade: types.GradeStandard},
		// No tree block grows Fuji: this row must not surface in the output.
		{Variety: "Fuji", BinCount: 5, PricePerBin: 80, TotalRevenue: 400, QualityGrade: types.GradeStandard},
	}

	got := ComputeVarietyPerformance(blocks, records, 2025)

	if len(got) != 2 {
		t.Fatalf("got %d varieties, want 2 (output is driven by tree blocks, not harvest rows)", len(got))
	}
	if got[0].Variety != "Ambri" || got[1].Variety != "Gala" {
		t.Fatalf("variety order=%q,%q, want first-seen block order Ambri,Gala", got[0].Variety, got[1].Variety)
	}

	ambri := got[0]
	// Name-based join: both Ambri blocks aggregate into one row even though
	// the harvest rows only reference one of them.
	if ambri.TotalTrees != 100 {
		t.Fatalf("Ambri total trees=%d, want 100", ambri.TotalTrees)
	}
	if !almostEqual(ambri.TotalYield, 460) {
		t.Fatalf("Ambri total yield=%v, want 460", ambri.TotalYield)
	}
	// Ages 10 and 6 against reference year 2025.
	if !almostEqual(ambri.AvgAge, 8) {
		t.Fatalf("Ambri avg age=%v, want 8", ambri.AvgAge)
	}
	if !almostEqual(ambri.HealthyRatio, 1) {
		t.Fatalf("Ambri healthy ratio=%v, want 1", ambri.HealthyRatio)
	}
	if !almostEqual(ambri.TotalBins, 30) || !almostEqual(ambri.TotalRevenue, 4000) {
		t.Fatalf("Ambri bins/revenue=%v/%v, want 30/4000", ambri.TotalBins, ambri.TotalRevenue)
	}
	if !almostEqual(ambri.AvgPricePerBin, 4000.0/30.0) {
		t.Fatalf("Ambri avg price=%v, want %v", ambri.AvgPricePerBin, 4000.0/30.0)
	}
	if !almostEqual(ambri.PremiumRatio, 0.5) {
		t.Fatalf("Ambri premium ratio=%v, want 0.5", ambri.PremiumRatio)
	}

	gala := got[1]
	if gala.TotalBins != 0 || gala.TotalRevenue != 0 {
		t.Fatalf("Gala without harvest rows should have zero bins/revenue, got %v/%v", gala.TotalBins, gala.TotalRevenue)
	}
	if gala.AvgPricePerBin != 0 || gala.PremiumRatio != 0 {
		t.Fatalf("Gala guarded ratios must be 0, got price=%v premium=%v", gala.AvgPricePerBin, gala.PremiumRatio)
	}
	if gala.HealthyRatio != 0 {
		t.Fatalf("Gala healthy ratio=%v, want 0", gala.HealthyRatio)
	}
}

func TestComputeVarietyPerformanceEmpty(t *testing.T) {
	if got := ComputeVarietyPerformance(nil, nil, 2025); len(got) != 0 {
		t.Fatalf("empty input produced %d rows", len(got))
	}
	// Harvest-only data yields no rows at all.
	records := []types.HarvestRecord{{Variety: "Ambri", BinCount: 10, TotalRevenue: 1000}}
	if got := ComputeVarietyPerformance(nil, records, 2025); len(got) != 0 {
		t.Fatalf("harvest-only input produced %d rows, want 0", len(got))
	}
}
