// Package nutrition holds the domain value types shared by the catalog,
// the meal log, and the external food search.
package nutrition

import "time"

// Food is a row in the local food catalog. Nutrient fields are defined
// relative to Portion grams; Sodium is in milligrams, everything else in
// grams. The zero value (empty Name) is the not-found sentinel.
type Food struct {
	Name     string
	Portion  float64
	Proteins float64
	Fats     float64
	Carbs    float64
	Sugar    float64
	Sodium   float64
	Water    float64
	ID       string
}

// NewFood builds a Food and assigns its reference ID: the name when the
// food is named, otherwise a creation timestamp so nameless ad-hoc foods
// stay addressable from the meal log.
func NewFood(name string, portion, proteins, fats, carbs, sugar, sodium, water float64) Food {
	f := Food{
		Name:     name,
		Portion:  portion,
		Proteins: proteins,
		Fats:     fats,
		Carbs:    carbs,
		Sugar:    sugar,
		Sodium:   sodium,
		Water:    water,
		ID:       name,
	}
	if f.ID == "" {
		f.ID = time.Now().Format(time.RFC3339Nano)
	}
	return f
}

// IsZero reports whether f is the not-found sentinel. Callers must check
// this instead of expecting an absence error from catalog lookups.
func (f Food) IsZero() bool {
	return f.Name == ""
}

// Calories derives the energy of one reference portion.
func (f Food) Calories() float64 {
	return f.Proteins*4 + f.Carbs*4 + f.Fats*9
}

// Scaled returns a copy with every per-portion nutrient field multiplied
// by ratio. The receiver is left untouched; scaling is presentation-only
// and never written back to the catalog.
func (f Food) Scaled(ratio float64) Food {
	f.Proteins *= ratio
	f.Fats *= ratio
	f.Carbs *= ratio
	f.Sugar *= ratio
	f.Sodium *= ratio
	f.Water *= ratio
	return f
}

// Columns returns the display headers for a Food, in spreadsheet order.
func Columns() []string {
	return []string{
		"Name", "Portion (g)", "Protein (g)", "Fats (g)", "Carbs (g)",
		"Sugar (g)", "Sodium (mg)", "Water (g)", "Calories",
	}
}

// Values returns the display values matching Columns.
func (f Food) Values() []any {
	return []any{
		f.Name, f.Portion, f.Proteins, f.Fats, f.Carbs,
		f.Sugar, f.Sodium, f.Water, f.Calories(),
	}
}
