package analytics

import (
	"testing"
	"time"

	"github.com/highvale/orchard-backend/internal/types"
)

func eff(e types.Effectiveness) *types.Effectiveness { return &e }

func TestComputeFinancialTotals(t *testing.T) {
	cases := []struct {
		name    string
		entries []types.FinancialEntry
		want    FinancialTotals
	}{
		{
			name:    "empty",
			entries: nil,
			want:    FinancialTotals{},
		},
		{
			name: "income_and_expense",
			entries: []types.FinancialEntry{
				{EntryType: types.EntryIncome, Amount: 500},
				{EntryType: types.EntryExpense, Amount: 200},
			},
			want: FinancialTotals{Income: 500, Expenses: 200, Net: 300},
		},
		{
			name: "net_may_be_negative",
			entries: []types.FinancialEntry{
				{EntryType: types.EntryIncome, Amount: 100},
				{EntryType: types.EntryExpense, Amount: 450},
			},
			want: FinancialTotals{Income: 100, Expenses: 450, Net: -350},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeFinancialTotals(tc.entries)
			if got != tc.want {
				t.Fatalf("ComputeFinancialTotals=%+v, want %+v", got, tc.want)
			}
			if !almostEqual(got.Net, got.Income-got.Expenses) {
				t.Fatalf("net=%v, want income-expenses=%v", got.Net, got.Income-got.Expenses)
			}
		})
	}
}

func TestTotalsByCategory(t *testing.T) {
	entries := []types.FinancialEntry{
		{Category: types.CategorySales, Amount: 100},
		{Category: types.CategoryLabor, Amount: 40},
		{Category: types.CategorySales, Amount: 60},
	}
	got := TotalsByCategory(entries)
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2", len(got))
	}
	if got[0].Category != types.CategorySales || !almostEqual(got[0].Total, 160) {
		t.Fatalf("first category=%+v, want sales=160", got[0])
	}
	if got[1].Category != types.CategoryLabor || !almostEqual(got[1].Total, 40) {
		t.Fatalf("second category=%+v, want labor=40", got[1])
	}
}

func TestEffectivenessRate(t *testing.T) {
	cases := []struct {
		name       string
		treatments []types.PestTreatment
		want       float64
	}{
		{name: "empty_is_zero_not_nan", treatments: nil, want: 0},
		{
			name: "counts_excellent_and_good",
			treatments: []types.PestTreatment{
				{Effectiveness: eff(types.EffectivenessExcellent)},
				{Effectiveness: eff(types.EffectivenessGood)},
				{Effectiveness: eff(types.EffectivenessFair)},
				{Effectiveness: eff(types.EffectivenessPoor)},
			},
			want: 0.5,
		},
		{
			name: "unrated_counts_against",
			treatments: []types.PestTreatment{
				{Effectiveness: eff(types.EffectivenessGood)},
				{Effectiveness: nil},
			},
			want: 0.5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EffectivenessRate(tc.treatments)
			if !almostEqual(got, tc.want) {
				t.Fatalf("EffectivenessRate=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestSummarizeTreatments(t *testing.T) {
	treatments := []types.PestTreatment{
		{Completed: true, Cost: 120, Effectiveness: eff(types.EffectivenessExcellent)},
		{Completed: false, Cost: 80},
		{Completed: false, Cost: 50},
	}
	got := SummarizeTreatments(treatments)
	if got.Completed != 1 || got.Pending != 2 {
		t.Fatalf("completed/pending=%d/%d, want 1/2", got.Completed, got.Pending)
	}
	if !almostEqual(got.TotalCost, 250) {
		t.Fatalf("total cost=%v, want 250", got.TotalCost)
	}
}

func TestSummarizeInventory(t *testing.T) {
	ref := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	soon := ref.AddDate(0, 0, 45)
	far := ref.AddDate(0, 0, 120)

	items := []types.InventoryItem{
		{Quantity: 80, Unit: "kg", PricePerUnit: 2},
		{Quantity: 150, Unit: "kg", PricePerUnit: 1, ExpiryDate: &soon},
		{Quantity: 300, Unit: "l", PricePerUnit: 0.5, ExpiryDate: &far},
	}
	got := SummarizeInventory(items, ref)
	if got.LowStock != 1 {
		t.Fatalf("low stock=%d, want 1 (quantity 80 below threshold 100)", got.LowStock)
	}
	if got.Expiring != 1 {
		t.Fatalf("expiring=%d, want 1 (only the 45-day item is inside the 90-day window)", got.Expiring)
	}
	if !almostEqual(got.TotalValue, 80*2+150*1+300*0.5) {
		t.Fatalf("total value=%v", got.TotalValue)
	}
}

func TestItemExpiringNilDate(t *testing.T) {
	ref := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if ItemExpiring(types.InventoryItem{Quantity: 10}, ref) {
		t.Fatalf("item without expiry date must never classify as expiring")
	}
}

func TestSummarizeEquipment(t *testing.T) {
	ref := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		nextService time.Time
		wantDue     bool
	}{
		{name: "due_in_29_days", nextService: ref.AddDate(0, 0, 29), wantDue: true},
		{name: "due_in_exactly_30_days", nextService: ref.AddDate(0, 0, 30), wantDue: true},
		{name: "due_in_31_days", nextService: ref.AddDate(0, 0, 31), wantDue: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eq := types.Equipment{NextService: tc.nextService}
			if got := ServiceDue(eq, ref); got != tc.wantDue {
				t.Fatalf("ServiceDue=%v, want %v", got, tc.wantDue)
			}
		})
	}

	fleet := []types.Equipment{
		{Ownership: types.OwnershipOwned, DailyCost: 50, Condition: types.ConditionGood, NextService: ref.AddDate(0, 0, 10)},
		{Ownership: types.OwnershipLeased, DailyCost: 120, Condition: types.ConditionPoor, NextService: ref.AddDate(0, 0, 60)},
		{Ownership: types.OwnershipOwned, DailyCost: 30, Condition: types.ConditionFair, NextService: ref.AddDate(0, 0, 90)},
	}
	got := SummarizeEquipment(fleet, ref)
	if got.OwnedCount != 2 || got.LeasedCount != 1 {
		t.Fatalf("owned/leased=%d/%d, want 2/1", got.OwnedCount, got.LeasedCount)
	}
	if !almostEqual(got.OwnedRatio, 2.0/3.0) {
		t.Fatalf("owned ratio=%v", got.OwnedRatio)
	}
	if got.ServiceDue != 1 {
		t.Fatalf("service due=%d, want 1", got.ServiceDue)
	}
	if got.ConditionIssues != 2 {
		t.Fatalf("condition issues=%d, want 2 (fair and poor)", got.ConditionIssues)
	}
	if !almostEqual(got.TotalDailyCost, 200) {
		t.Fatalf("total daily cost=%v, want 200", got.TotalDailyCost)
	}

	empty := SummarizeEquipment(nil, ref)
	if empty.OwnedRatio != 0 {
		t.Fatalf("empty fleet owned ratio=%v, want 0", empty.OwnedRatio)
	}
}

func TestSummarizeHarvest(t *testing.T) {
	records := []types.HarvestRecord{
		{Variety: "Ambri", BinCount: 10, PricePerBin: 100, TotalRevenue: 1000, QualityGrade: types.GradePremium},
		{Variety: "Ambri", BinCount: 20, PricePerBin: 150, TotalRevenue: 3000, QualityGrade: types.GradeStandard},
	}
	got := SummarizeHarvest(records)
	if !almostEqual(got.TotalBins, 30) {
		t.Fatalf("total bins=%v, want 30", got.TotalBins)
	}
	if !almostEqual(got.TotalRevenue, 4000) {
		t.Fatalf("total revenue=%v, want 4000", got.TotalRevenue)
	}
	// Average price is revenue-weighted: 4000/30, not (100+150)/2.
	if !almostEqual(got.AvgPricePerBin, 4000.0/30.0) {
		t.Fatalf("avg price/bin=%v, want %v", got.AvgPricePerBin, 4000.0/30.0)
	}
	if !almostEqual(got.PremiumRatio, 0.5) {
		t.Fatalf("premium ratio=%v, want 0.5", got.PremiumRatio)
	}

	empty := SummarizeHarvest(nil)
	if empty.AvgPricePerBin != 0 {
		t.Fatalf("empty harvest avg price=%v, want 0", empty.AvgPricePerBin)
	}
}

func TestSummarizeTrees(t *testing.T) {
	blocks := []types.TreeBlock{
		{TreeCount: 40, Status: types.TreeHealthy, YieldEstimate: 200},
		{TreeCount: 60, Status: types.TreeDiseased, YieldEstimate: 150},
	}
	got := SummarizeTrees(blocks)
	if got.TotalTrees != 100 {
		t.Fatalf("total trees=%d, want 100", got.TotalTrees)
	}
	if !almostEqual(got.HealthyRatio, 0.5) {
		t.Fatalf("healthy ratio=%v, want 0.5", got.HealthyRatio)
	}
	if SummarizeTrees(nil).HealthyRatio != 0 {
		t.Fatalf("empty block list healthy ratio must be 0")
	}
}

func TestSummarizeFields(t *testing.T) {
	fields := []types.Field{
		{
			Area:      2.5,
			WeedState: types.WeedLow,
			FertilizerApplications: []types.FertilizerApplication{
				{Cost: 100}, {Cost: 50},
			},
		},
		{Area: 4.0, WeedState: types.WeedHigh},
		{Area: 1.5, WeedState: types.WeedMedium},
	}
	got := SummarizeFields(fields)
	if !almostEqual(got.TotalArea, 8.0) {
		t.Fatalf("total area=%v, want 8.0", got.TotalArea)
	}
	if got.WeedAlerts != 2 {
		t.Fatalf("weed alerts=%d, want 2 (medium and high)", got.WeedAlerts)
	}
	if got.ApplicationCount != 2 || !almostEqual(got.ApplicationCost, 150) {
		t.Fatalf("applications=%d cost=%v, want 2/150", got.ApplicationCount, got.ApplicationCost)
	}
}

func TestSummarizeUsers(t *testing.T) {
	users := []types.User{
		{Role: types.RoleOwner, Status: types.UserStatusActive},
		{Role: types.RoleEditor, Status: types.UserStatusActive},
		{Role: types.RoleViewer, Status: types.UserStatusPending},
	}
	got := SummarizeUsers(users)
	if got.Active != 2 || got.Pending != 1 {
		t.Fatalf("active/pending=%d/%d, want 2/1", got.Active, got.Pending)
	}
	if got.CountsByRole["owner"] != 1 {
		t.Fatalf("owner count=%d, want 1", got.CountsByRole["owner"])
	}
}
