package analytics

import (
	"time"

	"github.com/highvale/orchard-backend/internal/types"
)

// Classification windows and thresholds used by the summary cards. The values
// come straight from the screens they feed.
const (
	LowStockThreshold = 100.0
	ExpiryWindowDays  = 90
	ServiceWindowDays = 30
)

const (
	StockLow    = "low"
	StockNormal = "normal"
)

var stockThresholds = []Threshold{
	{UpperBound: LowStockThreshold, Category: StockLow},
}

// ClassifyStock buckets an inventory quantity into low/normal.
func ClassifyStock(quantity float64) string {
	return ClassifyByThreshold(quantity, stockThresholds, StockNormal)
}

type FieldSummary struct {
	FieldCount       int     `json:"field_count"`
	TotalArea        float64 `json:"total_area"`
	WeedAlerts       int     `json:"weed_alerts"`
	ApplicationCount int     `json:"application_count"`
	ApplicationCost  float64 `json:"application_cost"`
}

func SummarizeFields(fields []types.Field) FieldSummary {
	apps := 0
	for _, f := range fields {
		apps += len(f.FertilizerApplications)
	}
	return FieldSummary{
		FieldCount:       len(fields),
		TotalArea:        SumBy(fields, func(f types.Field) float64 { return f.Area }),
		WeedAlerts:       CountBy(fields, func(f types.Field) bool { return f.WeedState != types.WeedLow }),
		ApplicationCount: apps,
		ApplicationCost: SumBy(fields, func(f types.Field) float64 {
			return SumBy(f.FertilizerApplications, func(a types.FertilizerApplication) float64 { return a.Cost })
		}),
	}
}

type TreeSummary struct {
	BlockCount         int     `json:"block_count"`
	TotalTrees         int     `json:"total_trees"`
	TotalYieldEstimate float64 `json:"total_yield_estimate"`
	HealthyBlocks      int     `json:"healthy_blocks"`
	HealthyRatio       float64 `json:"healthy_ratio"`
}

func SummarizeTrees(blocks []types.TreeBlock) TreeSummary {
	healthy := CountBy(blocks, func(b types.TreeBlock) bool { return b.Status == types.TreeHealthy })
	total := 0
	for _, b := range blocks {
		total += b.TreeCount
	}
	return TreeSummary{
		BlockCount:         len(blocks),
		TotalTrees:         total,
		TotalYieldEstimate: SumBy(blocks, func(b types.TreeBlock) float64 { return b.YieldEstimate }),
		HealthyBlocks:      healthy,
		HealthyRatio:       Ratio(healthy, len(blocks)),
	}
}

type HarvestSummary struct {
	RecordCount    int     `json:"record_count"`
	TotalBins      float64 `json:"total_bins"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgPricePerBin float64 `json:"avg_price_per_bin"`
	PremiumCount   int     `json:"premium_count"`
	PremiumRatio   float64 `json:"premium_ratio"`
}

func SummarizeHarvest(records []types.HarvestRecord) HarvestSummary {
	bins := SumBy(records, func(h types.HarvestRecord) float64 { return h.BinCount })
	revenue := SumBy(records, func(h types.HarvestRecord) float64 { return h.TotalRevenue })
	premium := CountBy(records, func(h types.HarvestRecord) bool { return h.QualityGrade == types.GradePremium })
	return HarvestSummary{
		RecordCount:    len(records),
		TotalBins:      bins,
		TotalRevenue:   revenue,
		AvgPricePerBin: SafeDiv(revenue, bins),
		PremiumCount:   premium,
		PremiumRatio:   Ratio(premium, len(records)),
	}
}

type TreatmentSummary struct {
	TreatmentCount    int     `json:"treatment_count"`
	Completed         int     `json:"completed"`
	Pending           int     `json:"pending"`
	TotalCost         float64 `json:"total_cost"`
	EffectivenessRate float64 `json:"effectiveness_rate"`
}

// EffectivenessRate is the share of treatments rated excellent or good out of
// all treatments in the list, 0 when the list is empty.
func EffectivenessRate(treatments []types.PestTreatment) float64 {
	effective := CountBy(treatments, func(t types.PestTreatment) bool {
		return t.Effectiveness != nil &&
			(*t.Effectiveness == types.EffectivenessExcellent || *t.Effectiveness == types.EffectivenessGood)
	})
	return Ratio(effective, len(treatments))
}

func SummarizeTreatments(treatments []types.PestTreatment) TreatmentSummary {
	completed := CountBy(treatments, func(t types.PestTreatment) bool { return t.Completed })
	return TreatmentSummary{
		TreatmentCount:    len(treatments),
		Completed:         completed,
		Pending:           len(treatments) - completed,
		TotalCost:         SumBy(treatments, func(t types.PestTreatment) float64 { return t.Cost }),
		EffectivenessRate: EffectivenessRate(treatments),
	}
}

type InventorySummary struct {
	ItemCount  int     `json:"item_count"`
	TotalValue float64 `json:"total_value"`
	LowStock   int     `json:"low_stock"`
	Expiring   int     `json:"expiring"`
}

// ItemExpiring reports whether the item's expiry date falls within the expiry
// window of the reference date. Items without an expiry date never expire.
func ItemExpiring(item types.InventoryItem, ref time.Time) bool {
	if item.ExpiryDate == nil {
		return false
	}
	return DateWithinWindow(*item.ExpiryDate, ref, ExpiryWindowDays)
}

func SummarizeInventory(items []types.InventoryItem, ref time.Time) InventorySummary {
	return InventorySummary{
		ItemCount:  len(items),
		TotalValue: SumBy(items, func(i types.InventoryItem) float64 { return i.Quantity * i.PricePerUnit }),
		LowStock:   CountBy(items, func(i types.InventoryItem) bool { return ClassifyStock(i.Quantity) == StockLow }),
		Expiring:   CountBy(items, func(i types.InventoryItem) bool { return ItemExpiring(i, ref) }),
	}
}

type EquipmentSummary struct {
	FleetSize       int     `json:"fleet_size"`
	TotalDailyCost  float64 `json:"total_daily_cost"`
	OwnedCount      int     `json:"owned_count"`
	LeasedCount     int     `json:"leased_count"`
	OwnedRatio      float64 `json:"owned_ratio"`
	ServiceDue      int     `json:"service_due"`
	ConditionIssues int     `json:"condition_issues"`
}

// ServiceDue reports whether the equipment's next service date falls within
// the service window of the reference date, boundary inclusive.
func ServiceDue(eq types.Equipment, ref time.Time) bool {
	return DateWithinWindow(eq.NextService, ref, ServiceWindowDays)
}

func SummarizeEquipment(equipment []types.Equipment, ref time.Time) EquipmentSummary {
	owned := CountBy(equipment, func(e types.Equipment) bool { return e.Ownership == types.OwnershipOwned })
	return EquipmentSummary{
		FleetSize:      len(equipment),
		TotalDailyCost: SumBy(equipment, func(e types.Equipment) float64 { return e.DailyCost }),
		OwnedCount:     owned,
		LeasedCount:    len(equipment) - owned,
		OwnedRatio:     Ratio(owned, len(equipment)),
		ServiceDue:     CountBy(equipment, func(e types.Equipment) bool { return ServiceDue(e, ref) }),
		ConditionIssues: CountBy(equipment, func(e types.Equipment) bool {
			return e.Condition == types.ConditionFair || e.Condition == types.ConditionPoor
		}),
	}
}

type FinancialTotals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// ComputeFinancialTotals partitions entries by type and sums each side.
// Net may be negative; rendering it distinctly is the caller's concern.
func ComputeFinancialTotals(entries []types.FinancialEntry) FinancialTotals {
	income := SumBy(entries, func(e types.FinancialEntry) float64 {
		if e.EntryType == types.EntryIncome {
			return e.Amount
		}
		return 0
	})
	expenses := SumBy(entries, func(e types.FinancialEntry) float64 {
		if e.EntryType == types.EntryExpense {
			return e.Amount
		}
		return 0
	})
	return FinancialTotals{Income: income, Expenses: expenses, Net: income - expenses}
}

type CategoryTotal struct {
	Category types.FinanceCategory `json:"category"`
	Total    float64               `json:"total"`
}

// TotalsByCategory groups entries by category in first-seen order and sums
// the amounts within each group.
func TotalsByCategory(entries []types.FinancialEntry) []CategoryTotal {
	order, groups := GroupBy(entries, func(e types.FinancialEntry) (types.FinanceCategory, bool) {
		return e.Category, e.Category != ""
	})
	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryTotal{
			Category: cat,
			Total:    SumBy(groups[cat], func(e types.FinancialEntry) float64 { return e.Amount }),
		})
	}
	return out
}

type UserSummary struct {
	UserCount    int            `json:"user_count"`
	Active       int            `json:"active"`
	Pending      int            `json:"pending"`
	CountsByRole map[string]int `json:"counts_by_role"`
}

func SummarizeUsers(users []types.User) UserSummary {
	byRole := make(map[string]int)
	for _, u := range users {
		byRole[string(u.Role)]++
	}
	return UserSummary{
		UserCount:    len(users),
		Active:       CountBy(users, func(u types.User) bool { return u.Status == types.UserStatusActive }),
		Pending:      CountBy(users, func(u types.User) bool { return u.Status == types.UserStatusPending }),
		CountsByRole: byRole,
	}
}
