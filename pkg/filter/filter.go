package filter

import "strings"

// All is the sentinel value that disables a categorical criterion.
const All = "all"

// Criterion decides whether a single record belongs in a filtered view.
// A nil Criterion matches everything.
type Criterion[T any] func(T) bool

// Apply returns the records matching every criterion, preserving the
// original relative order. The input slice is never mutated.
func Apply[T any](items []T, criteria ...Criterion[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, criteria) {
			out = append(out, item)
		}
	}
	return out
}

func matches[T any](item T, criteria []Criterion[T]) bool {
	for _, c := range criteria {
		if c != nil && !c(item) {
			return false
		}
	}
	return true
}

// Search matches records where any of the given fields contains the query
// as a case-insensitive substring. An empty query matches everything.
func Search[T any](query string, fields ...func(T) string) Criterion[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), q) {
				return true
			}
		}
		return false
	}
}

// Equals matches records whose field equals value exactly. An empty value
// or the "all" sentinel disables the criterion.
func Equals[T any](value string, field func(T) string) Criterion[T] {
	if value == "" || value == All {
		return nil
	}
	return func(item T) bool {
		return field(item) == value
	}
}
