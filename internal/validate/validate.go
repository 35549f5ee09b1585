package validate

import (
	"regexp"
	"strconv"
	"strings"

	"homestock/internal/domain"
)

var reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ID validates an item identifier from a path parameter.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name trims and bounds a displayable item name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Category checks membership in the fixed bucket set. Used at the form
// boundary only; the JSON API and the store accept category as opaque text.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, domain.KnownCategory(s)
}

// Qty parses a non-negative quantity, defaulting to 0.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// MinQty parses a reorder threshold, defaulting to 1. No lower bound is
// enforced beyond the parse.
func MinQty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return n
}

// Unit trims and falls back to the generic unit label.
func Unit(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.DefaultUnit
	}
	return s
}
