package view

import "homestock/internal/domain"

// Mode selects which items the view shows.
type Mode string

const (
	ModeAll     Mode = "all"
	ModeRestock Mode = "tobuy"
)

// ParseMode falls back to ModeAll for anything unrecognized.
func ParseMode(s string) Mode {
	if Mode(s) == ModeRestock {
		return ModeRestock
	}
	return ModeAll
}

// IsLowStock: strictly below the reorder threshold. Equal is not low.
func IsLowStock(it domain.Item) bool {
	return it.Quantity < it.MinQuantity
}

// FilterForView keeps every item in ModeAll and only low-stock items in
// ModeRestock, preserving relative order.
func FilterForView(items []domain.Item, mode Mode) []domain.Item {
	if mode != ModeRestock {
		return items
	}
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if IsLowStock(it) {
			out = append(out, it)
		}
	}
	return out
}

// GroupByCategory partitions items into the fixed buckets. Items with an
// unknown category land in no bucket at all.
func GroupByCategory(items []domain.Item) map[string][]domain.Item {
	grouped := make(map[string][]domain.Item, len(domain.Categories))
	for _, cat := range domain.Categories {
		grouped[cat] = []domain.Item{}
	}
	for _, it := range items {
		if _, ok := grouped[it.Category]; ok {
			grouped[it.Category] = append(grouped[it.Category], it)
		}
	}
	return grouped
}

// AllEmpty reports whether every bucket is empty.
func AllEmpty(grouped map[string][]domain.Item) bool {
	for _, cat := range domain.Categories {
		if len(grouped[cat]) > 0 {
			return false
		}
	}
	return true
}

// EmptyMessage is the text shown when the active view has nothing in it.
func EmptyMessage(mode Mode) string {
	if mode == ModeRestock {
		return "Your shopping list is empty 🎉"
	}
	return "No items yet. Use “+ Add” to create one."
}
