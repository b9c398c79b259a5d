// Package analytics derives the summary metrics and status classifications the
// dashboard screens render. Every function here is pure: no store access, no
// ambient clock, no mutation of its inputs. Reference dates are always passed
// in by the caller.
package analytics

import "time"

// SumBy folds a numeric field across records. Empty input sums to 0;
// selectors for optional fields are expected to return 0 for missing values.
func SumBy[T any](records []T, sel func(T) float64) float64 {
	var total float64
	for _, r := range records {
		total += sel(r)
	}
	return total
}

// CountBy counts the records matching pred.
func CountBy[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// GroupBy buckets records by key, preserving first-seen key order. A record
// whose key func reports ok=false is excluded from every group rather than
// landing in a zero-value bucket.
func GroupBy[T any, K comparable](records []T, key func(T) (K, bool)) ([]K, map[K][]T) {
	order := make([]K, 0)
	groups := make(map[K][]T)
	for _, r := range records {
		k, ok := key(r)
		if !ok {
			continue
		}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}
	return order, groups
}

// Threshold pairs an exclusive upper bound with the category assigned to
// values below it.
type Threshold struct {
	UpperBound float64
	Category   string
}

// ClassifyByThreshold returns the category of the first threshold the value
// falls under, evaluated in order (most restrictive first), or the default
// category when none match. With ordered bounds every value maps to exactly
// one category.
func ClassifyByThreshold(value float64, thresholds []Threshold, def string) string {
	for _, t := range thresholds {
		if value < t.UpperBound {
			return t.Category
		}
	}
	return def
}

// DateWithinWindow reports whether target falls on or before reference plus
// windowDays, comparing calendar days rather than instants so a record due at
// 23:00 and a reference at 01:00 land on the expected side of the boundary
// regardless of timezone.
func DateWithinWindow(target, reference time.Time, windowDays int) bool {
	limit := civil(reference).AddDate(0, 0, windowDays)
	return !civil(target).After(limit)
}

// Ratio divides part by whole, returning 0 for an empty whole instead of NaN.
func Ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// SafeDiv divides num by den, returning 0 for a zero denominator.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
