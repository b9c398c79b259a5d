package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/highvale/orchard-backend/internal/types"
)

func TestComputeDashboardOverview(t *testing.T) {
	ref := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	fields := []types.Field{{Name: "North"}, {Name: "South"}}
	blocks := []types.TreeBlock{{TreeCount: 120}, {TreeCount: 80}}
	harvest := []types.HarvestRecord{
		{BinCount: 10, TotalRevenue: 1000},
		{BinCount: 5, TotalRevenue: 600},
	}
	treatments := []types.PestTreatment{
		{Completed: true}, {Completed: false}, {Completed: false},
	}
	finances := []types.FinancialEntry{
		{EntryType: types.EntryIncome, Amount: 2000},
		{EntryType: types.EntryExpense, Amount: 500},
	}
	inventory := []types.InventoryItem{{Quantity: 50}, {Quantity: 500}}
	equipment := []types.Equipment{
		{Condition: types.ConditionGood, NextService: ref.AddDate(0, 0, 90)},
		{Condition: types.ConditionPoor, NextService: ref.AddDate(0, 0, 90)},
	}

	got := ComputeDashboardOverview(fields, blocks, harvest, treatments, finances, inventory, equipment, ref)

	if got.FieldCount != 2 {
		t.Fatalf("field count=%d, want 2", got.FieldCount)
	}
	if got.TotalTrees != 200 {
		t.Fatalf("total trees=%d, want 200", got.TotalTrees)
	}
	if !almostEqual(got.HarvestRevenue, 1600) || !almostEqual(got.HarvestBins, 15) {
		t.Fatalf("harvest revenue/bins=%v/%v, want 1600/15", got.HarvestRevenue, got.HarvestBins)
	}
	if got.PendingTreatments != 2 {
		t.Fatalf("pending treatments=%d, want 2", got.PendingTreatments)
	}
	if !almostEqual(got.NetProfit, 1500) {
		t.Fatalf("net profit=%v, want 1500", got.NetProfit)
	}
	if got.LowStockItems != 1 {
		t.Fatalf("low stock=%d, want 1", got.LowStockItems)
	}
	if got.EquipmentIssues != 1 || got.EquipmentTotal != 2 {
		t.Fatalf("equipment issues/total=%d/%d, want 1/2", got.EquipmentIssues, got.EquipmentTotal)
	}
}

func TestDashboardRecentActivityLimit(t *testing.T) {
	var finances []types.FinancialEntry
	for i := 0; i < 8; i++ {
		finances = append(finances, types.FinancialEntry{Description: fmt.Sprintf("entry-%d", i), Amount: float64(i)})
	}
	got := ComputeDashboardOverview(nil, nil, nil, nil, finances, nil, nil, time.Now())
	if len(got.RecentFinance) != 5 {
		t.Fatalf("recent finance length=%d, want 5", len(got.RecentFinance))
	}
	// The store returns newest-first, so "recent" is simply the head.
	if got.RecentFinance[0].Description != "entry-0" {
		t.Fatalf("recent finance[0]=%q, want head of list", got.RecentFinance[0].Description)
	}
	if len(got.RecentHarvest) != 0 {
		t.Fatalf("recent harvest length=%d, want 0", len(got.RecentHarvest))
	}
}
