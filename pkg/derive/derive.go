// Package derive holds the pure aggregation helpers the dashboard views are
// built from. Every function is deterministic given its inputs; the
// time-based ones take the current instant explicitly.
package derive

import (
	"math"
	"time"
)

// CountBy returns how many items match pred.
func CountBy[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// SumBy totals value over the items matching pred. A nil pred matches all.
func SumBy[T any](items []T, pred func(T) bool, value func(T) float64) float64 {
	total := 0.0
	for _, item := range items {
		if pred == nil || pred(item) {
			total += value(item)
		}
	}
	return total
}

// Percentage returns num out of den as a whole percent, rounded to the
// nearest integer. A zero (or negative) denominator yields 0.
func Percentage(num, den int) int {
	if den <= 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(den) * 100))
}

// DaysUntil returns the number of days from now until deadline, rounding
// partial days up. A deadline later today counts as 1, one that passed
// earlier today as 0, and older deadlines go negative.
func DaysUntil(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// Overdue reports whether deadline is strictly before now.
func Overdue(deadline, now time.Time) bool {
	return deadline.Before(now)
}

// Score pairs points earned with points achievable.
type Score struct {
	Earned float64
	Total  float64
}

// AveragePercent returns the rounded mean percentage of the scores. Entries
// with a zero total are skipped; an empty input yields 0.
func AveragePercent(scores []Score) int {
	sum := 0.0
	n := 0
	for _, s := range scores {
		if s.Total <= 0 {
			continue
		}
		sum += s.Earned / s.Total * 100
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(sum / float64(n)))
}
