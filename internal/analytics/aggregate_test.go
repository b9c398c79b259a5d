package analytics

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSumBy(t *testing.T) {
	ident := func(v float64) float64 { return v }

	if got := SumBy(nil, ident); got != 0 {
		t.Fatalf("SumBy(nil)=%v, want 0", got)
	}
	if got := SumBy([]float64{}, ident); got != 0 {
		t.Fatalf("SumBy(empty)=%v, want 0", got)
	}

	vals := []float64{3, 1.5, 0, 2.5}
	forward := SumBy(vals, ident)
	if !almostEqual(forward, 7) {
		t.Fatalf("SumBy=%v, want 7", forward)
	}

	reversed := make([]float64, len(vals))
	for i, v := range vals {
		reversed[len(vals)-1-i] = v
	}
	if got := SumBy(reversed, ident); !almostEqual(got, forward) {
		t.Fatalf("SumBy is order-dependent: %v vs %v", got, forward)
	}
}

func TestGroupBy(t *testing.T) {
	type rec struct {
		key string
		n   int
	}
	records := []rec{
		{"b", 1}, {"a", 2}, {"b", 3}, {"", 4}, {"c", 5},
	}
	order, groups := GroupBy(records, func(r rec) (string, bool) {
		return r.key, r.key != ""
	})

	wantOrder := []string{"b", "a", "c"}
	if len(order) != len(wantOrder) {
		t.Fatalf("key order length=%d, want %d", len(order), len(wantOrder))
	}
	for i, k := range wantOrder {
		if order[i] != k {
			t.Fatalf("key order[%d]=%q, want %q (first-seen order must be preserved)", i, order[i], k)
		}
	}
	if len(groups["b"]) != 2 {
		t.Fatalf("group b size=%d, want 2", len(groups["b"]))
	}
	// A record with no key is excluded entirely, not bucketed under "".
	if _, ok := groups[""]; ok {
		t.Fatalf("record with empty key must not produce a bucket")
	}
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != 4 {
		t.Fatalf("grouped %d records, want 4", total)
	}
}

func TestClassifyByThreshold(t *testing.T) {
	thresholds := []Threshold{
		{UpperBound: 10, Category: "critical"},
		{UpperBound: 100, Category: "low"},
	}

	cases := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "below_first_bound", value: 5, want: "critical"},
		{name: "first_bound_exact_falls_to_next", value: 10, want: "low"},
		{name: "between_bounds", value: 80, want: "low"},
		{name: "second_bound_exact_falls_through", value: 100, want: "normal"},
		{name: "above_all_bounds", value: 150, want: "normal"},
		{name: "negative", value: -3, want: "critical"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyByThreshold(tc.value, thresholds, "normal")
			if got != tc.want {
				t.Fatalf("ClassifyByThreshold(%v)=%q, want %q", tc.value, got, tc.want)
			}
			// Deterministic: reapplying to the same value yields the same category.
			if again := ClassifyByThreshold(tc.value, thresholds, "normal"); again != got {
				t.Fatalf("ClassifyByThreshold not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestClassifyStock(t *testing.T) {
	if got := ClassifyStock(80); got != StockLow {
		t.Fatalf("ClassifyStock(80)=%q, want %q", got, StockLow)
	}
	if got := ClassifyStock(150); got != StockNormal {
		t.Fatalf("ClassifyStock(150)=%q, want %q", got, StockNormal)
	}
	if got := ClassifyStock(100); got != StockNormal {
		t.Fatalf("ClassifyStock(100)=%q, want %q (threshold is exclusive)", got, StockNormal)
	}
}

func TestDateWithinWindow(t *testing.T) {
	ref := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	cases := []struct {
		name   string
		target time.Time
		days   int
		want   bool
	}{
		{name: "inside_window", target: ref.AddDate(0, 0, 29), days: 30, want: true},
		{name: "boundary_inclusive", target: ref.AddDate(0, 0, 30), days: 30, want: true},
		{name: "outside_window", target: ref.AddDate(0, 0, 31), days: 30, want: false},
		{name: "past_date", target: ref.AddDate(0, 0, -10), days: 30, want: true},
		{name: "same_day", target: ref, days: 0, want: true},
		// Calendar-day comparison: a target late on the boundary day still counts.
		{
			name:   "boundary_day_later_clock_time",
			target: time.Date(2025, 7, 1, 23, 59, 0, 0, time.UTC),
			days:   30,
			want:   true,
		},
		{
			name:   "boundary_day_other_zone",
			target: time.Date(2025, 7, 1, 23, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			days:   30,
			want:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DateWithinWindow(tc.target, ref, tc.days)
			if got != tc.want {
				t.Fatalf("DateWithinWindow(%v, %v, %d)=%v, want %v", tc.target, ref, tc.days, got, tc.want)
			}
		})
	}
}

func TestRatioAndSafeDiv(t *testing.T) {
	if got := Ratio(0, 0); got != 0 {
		t.Fatalf("Ratio(0,0)=%v, want 0", got)
	}
	if got := Ratio(3, 4); !almostEqual(got, 0.75) {
		t.Fatalf("Ratio(3,4)=%v, want 0.75", got)
	}
	if got := SafeDiv(5, 0); got != 0 {
		t.Fatalf("SafeDiv(5,0)=%v, want 0", got)
	}
	if math.IsNaN(Ratio(0, 0)) || math.IsNaN(SafeDiv(0, 0)) {
		t.Fatalf("guarded division must never return NaN")
	}
}
