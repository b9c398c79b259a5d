package analytics

import (
	"time"

	"github.com/highvale/orchard-backend/internal/types"
)

const recentActivityLimit = 5

type DashboardOverview struct {
	FieldCount        int     `json:"field_count"`
	TotalTrees        int     `json:"total_trees"`
	HarvestRevenue    float64 `json:"harvest_revenue"`
	HarvestBins       float64 `json:"harvest_bins"`
	PendingTreatments int     `json:"pending_treatments"`
	Income            float64 `json:"income"`
	Expenses          float64 `json:"expenses"`
	NetProfit         float64 `json:"net_profit"`
	LowStockItems     int     `json:"low_stock_items"`
	EquipmentIssues   int     `json:"equipment_issues"`
	EquipmentTotal    int     `json:"equipment_total"`

	RecentHarvest []types.HarvestRecord  `json:"recent_harvest"`
	RecentFinance []types.FinancialEntry `json:"recent_finance"`
}

// ComputeDashboardOverview assembles the cross-entity card set. All input
// lists must be complete before calling: a partially fetched join renders
// wrong numbers, so the caller waits for every list (see DashboardService).
// Recent-activity slices rely on the store's newest-first ordering.
func ComputeDashboardOverview(
	fields []types.Field,
	blocks []types.TreeBlock,
	harvest []types.HarvestRecord,
	treatments []types.PestTreatment,
	finances []types.FinancialEntry,
	inventory []types.InventoryItem,
	equipment []types.Equipment,
	ref time.Time,
) DashboardOverview {
	trees := SummarizeTrees(blocks)
	harv := SummarizeHarvest(harvest)
	totals := ComputeFinancialTotals(finances)
	inv := SummarizeInventory(inventory, ref)
	eq := SummarizeEquipment(equipment, ref)

	return DashboardOverview{
		FieldCount:        len(fields),
		TotalTrees:        trees.TotalTrees,
		HarvestRevenue:    harv.TotalRevenue,
		HarvestBins:       harv.TotalBins,
		PendingTreatments: CountBy(treatments, func(t types.PestTreatment) bool { return !t.Completed }),
		Income:            totals.Income,
		Expenses:          totals.Expenses,
		NetProfit:         totals.Net,
		LowStockItems:     inv.LowStock,
		EquipmentIssues:   eq.ConditionIssues,
		EquipmentTotal:    eq.FleetSize,
		RecentHarvest:     head(harvest, recentActivityLimit),
		RecentFinance:     head(finances, recentActivityLimit),
	}
}

func head[T any](records []T, n int) []T {
	if len(records) <= n {
		return records
	}
	return records[:n]
}
