package domain

import (
	"strings"
)

// FilterState holds the view parameters a user has selected for one page.
// The zero value means "show everything".
type FilterState struct {
	Category string // category tag or CategoryAll
	Status   string // status tag or CategoryAll
	Tab      string // active tab identifier
	Query    string // free-text search, case-insensitive substring
}

// IsEmpty returns true if the filter state selects the full catalog.
func (f FilterState) IsEmpty() bool {
	return (f.Category == "" || f.Category == CategoryAll) &&
		(f.Status == "" || f.Status == CategoryAll) &&
		f.Query == ""
}

// Predicate is a pure filter over a single catalog item.
type Predicate[T Filterable] func(T) bool

// FilterByCategory returns all items when category is empty or the All
// sentinel; otherwise the items whose category tag matches, compared
// case-insensitively. Items without a category tag only appear under All.
func FilterByCategory[T Filterable](items []T, category string) []T {
	if category == "" || category == CategoryAll {
		return items
	}
	return Filter(items, CategoryIs[T](category))
}

// FilterByStatus returns all items when status is empty or the All
// sentinel; otherwise the items whose status tag matches. Items without a
// status tag only appear under All.
func FilterByStatus[T Filterable](items []T, status string) []T {
	if status == "" || status == CategoryAll {
		return items
	}
	return Filter(items, StatusIs[T](status))
}

// FilterBySearch returns items whose search text contains query as a
// case-insensitive substring. An empty query returns the input unchanged.
func FilterBySearch[T Filterable](items []T, query string) []T {
	if query == "" {
		return items
	}
	return Filter(items, Matches[T](query))
}

// CategoryIs returns a predicate matching the category tag.
func CategoryIs[T Filterable](category string) Predicate[T] {
	want := strings.ToLower(category)
	return func(item T) bool {
		got := item.Category()
		return got != "" && strings.ToLower(got) == want
	}
}

// StatusIs returns a predicate matching the status tag.
func StatusIs[T Filterable](status string) Predicate[T] {
	want := strings.ToLower(status)
	return func(item T) bool {
		got := item.Status()
		return got != "" && strings.ToLower(got) == want
	}
}

// Matches returns a predicate for case-insensitive substring search.
func Matches[T Filterable](query string) Predicate[T] {
	q := strings.ToLower(query)
	return func(item T) bool {
		return strings.Contains(strings.ToLower(item.SearchText()), q)
	}
}

// Filter returns the items satisfying the predicate, preserving catalog
// order. The input slice is never mutated.
func Filter[T Filterable](items []T, pred Predicate[T]) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result
}

// Combine applies predicates in sequence with AND semantics. Each
// predicate is a pure filter over the full attribute set, so application
// order does not affect the result.
func Combine[T Filterable](items []T, preds ...Predicate[T]) []T {
	result := items
	for _, pred := range preds {
		result = Filter(result, pred)
	}
	return result
}

// Apply derives the visible subset for a filter state: category, status
// and search applied in sequence over the catalog.
func Apply[T Filterable](items []T, state FilterState) []T {
	result := FilterByCategory(items, state.Category)
	result = FilterByStatus(result, state.Status)
	return FilterBySearch(result, state.Query)
}

// Aggregate counts items per bucket. Seed keys are reported even when no
// item falls into them, so declared filter tabs keep their zero badges.
func Aggregate[T Filterable](items []T, keyFn func(T) string, seed ...string) map[string]int {
	counts := make(map[string]int, len(seed))
	for _, key := range seed {
		counts[key] = 0
	}
	for _, item := range items {
		counts[keyFn(item)]++
	}
	return counts
}
