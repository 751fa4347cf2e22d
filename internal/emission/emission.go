// Package emission converts activity amounts into CO2-equivalent estimates.
//
// Each Category has a fixed multiplier (kg CO2 per unit) and a unit:
//
//	transport  0.2 kg/km
//	energy     0.5 kg/kWh
//	food       2.0 kg/meal
//
// Unknown categories are estimated with the transport multiplier.
package emission

import (
	"fmt"
	"math"
	"strings"
)

// Category is an activity class.
type Category string

const (
	Transport Category = "transport"
	Energy    Category = "energy"
	Food      Category = "food"
)

// DefaultMultiplier applies to transport and to any unrecognized category.
const DefaultMultiplier = 0.2

var multipliers = map[Category]float64{
	Transport: DefaultMultiplier,
	Energy:    0.5,
	Food:      2.0,
}

var units = map[Category]string{
	Transport: "km",
	Energy:    "kWh",
	Food:      "meals",
}

// Categories returns the closed set of categories in display order.
func Categories() []Category {
	return []Category{Transport, Energy, Food}
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := multipliers[c]; !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := multipliers[c]
	return ok
}

// Multiplier returns kg CO2 per unit for c.
func (c Category) Multiplier() float64 {
	if m, ok := multipliers[c]; ok {
		return m
	}
	return DefaultMultiplier
}

// Unit returns the quantity unit for c, or "units" for unknown categories.
func (c Category) Unit() string {
	if u, ok := units[c]; ok {
		return u
	}
	return "units"
}

// Estimate returns amount * multiplier rounded to two decimal places.
func Estimate(c Category, amount float64) float64 {
	return Round2(amount * c.Multiplier())
}

// Round2 rounds v half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
