package domain

import "time"

// Fixed category buckets the view knows how to group. The store accepts
// category as opaque text; anything outside this set simply never shows
// up in a bucket.
const (
	CategoryRefrigerator = "refrigerator"
	CategoryDaily        = "daily"
	CategoryOther        = "other"
)

// Categories in display order.
var Categories = []string{CategoryRefrigerator, CategoryDaily, CategoryOther}

// DefaultUnit is written when the unit field is blank after trimming.
const DefaultUnit = "pcs"

// TimeLayout is the timestamp form stored in the items table. Fixed-width
// fractional seconds keep the strings lexically sortable.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

// Now returns the current wall-clock time formatted for storage.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

type Item struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Category    string `db:"category" json:"category"`
	Quantity    int    `db:"quantity" json:"quantity"`
	MinQuantity int    `db:"minQuantity" json:"minQuantity"`
	Unit        string `db:"unit" json:"unit"`
	CreatedAt   string `db:"createdAt" json:"createdAt"`
	UpdatedAt   string `db:"updatedAt" json:"updatedAt"`
}

// LowStock reports whether the item needs restocking. Equal to the
// threshold is NOT low stock.
func (it Item) LowStock() bool {
	return it.Quantity < it.MinQuantity
}

// KnownCategory reports whether the category is one of the fixed buckets.
func KnownCategory(c string) bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}
