// Package domain provides the domain layer for WasteWise catalogs.
// It contains entities, value objects, and the pure view-filter engine.
package domain

// CategoryAll is the sentinel that matches every category or status.
const CategoryAll = "All"

// Filterable is the capability shared by every catalog entity.
// Category and Status return the display form of the tag; matching is done
// on a normalized (lowercased) comparison so that source-data casing does
// not leak into filter semantics.
type Filterable interface {
	// ItemID returns the stable identifier, unique within its catalog.
	ItemID() string
	// Category returns the categorical tag, or "" when the entity has none.
	Category() string
	// Status returns the status tag, or "" when the entity has none.
	Status() string
	// SearchText returns the text searched by free-text queries.
	SearchText() string
}

// ClampPercent clamps a percentage to [0, 100] for display.
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
