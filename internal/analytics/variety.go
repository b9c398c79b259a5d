package analytics

import (
	"github.com/highvale/orchard-backend/internal/types"
)

type VarietyPerformance struct {
	Variety        string  `json:"variety"`
	TotalTrees     int     `json:"total_trees"`
	TotalYield     float64 `json:"total_yield"`
	AvgAge         float64 `json:"avg_age"`
	HealthyRatio   float64 `json:"healthy_ratio"`
	TotalBins      float64 `json:"total_bins"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgPricePerBin float64 `json:"avg_price_per_bin"`
	PremiumRatio   float64 `json:"premium_ratio"`
}

// ComputeVarietyPerformance joins harvest records onto tree blocks by variety
// name. The output is driven by the varieties present in blocks: harvest rows
// for a variety with no tree block are dropped. The join is deliberately
// name-based rather than per-block, so two blocks of the same variety in
// different fields aggregate into one row.
func ComputeVarietyPerformance(blocks []types.TreeBlock, records []types.HarvestRecord, refYear int) []VarietyPerformance {
	varieties, byVariety := GroupBy(blocks, func(b types.TreeBlock) (string, bool) {
		return b.Variety, b.Variety != ""
	})
	_, harvestByVariety := GroupBy(records, func(h types.HarvestRecord) (string, bool) {
		return h.Variety, h.Variety != ""
	})

	out := make([]VarietyPerformance, 0, len(varieties))
	for _, variety := range varieties {
		vBlocks := byVariety[variety]
		vHarvest := harvestByVariety[variety]

		trees := 0
		ageSum := 0.0
		healthy := 0
		for _, b := range vBlocks {
			trees += b.TreeCount
			ageSum += float64(refYear - b.PlantingYear)
			if b.Status == types.TreeHealthy {
				healthy++
			}
		}

		bins := SumBy(vHarvest, func(h types.HarvestRecord) float64 { return h.BinCount })
		revenue := SumBy(vHarvest, func(h types.HarvestRecord) float64 { return h.TotalRevenue })
		premium := CountBy(vHarvest, func(h types.HarvestRecord) bool { return h.QualityGrade == types.GradePremium })

		out = append(out, VarietyPerformance{
			Variety:        variety,
			TotalTrees:     trees,
			TotalYield:     SumBy(vBlocks, func(b types.TreeBlock) float64 { return b.YieldEstimate }),
			AvgAge:         SafeDiv(ageSum, float64(len(vBlocks))),
			HealthyRatio:   Ratio(healthy, len(vBlocks)),
			TotalBins:      bins,
			TotalRevenue:   revenue,
			AvgPricePerBin: SafeDiv(revenue, bins),
			PremiumRatio:   Ratio(premium, len(vHarvest)),
		})
	}
	return out
}
