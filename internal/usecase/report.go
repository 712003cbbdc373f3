package usecase

import (
	"math"
	"sort"

	"github.com/caltrack/caltrack/internal/services"
)

// Slice is one pie-chart segment with its computed percentage.
type Slice struct {
	Label   string
	Value   float64
	Percent float64
}

// Percentages converts a label-to-quantity mapping into pie slices whose
// percentages, rounded to one decimal place, sum to exactly 100: the last
// slice absorbs the rounding leftover. Labels are sorted so the output is
// deterministic. A zero total yields nil.
func Percentages(data map[string]float64) []Slice {
	labels := make([]string, 0, len(data))
	total := 0.0
	for label, value := range data {
		labels = append(labels, label)
		total += value
	}
	if total == 0 {
		return nil
	}
	sort.Strings(labels)

	slices := make([]Slice, 0, len(labels))
	allocated := 0.0
	for i, label := range labels {
		value := data[label]
		var pct float64
		if i == len(labels)-1 {
			pct = math.Round((100-allocated)*10) / 10
		} else {
			pct = math.Round(value/total*100*10) / 10
			allocated += pct
		}
		slices = append(slices, Slice{Label: label, Value: value, Percent: pct})
	}
	return slices
}

// DailyCalories sums entry calories per calendar day.
func DailyCalories(entries []services.MealEntry) map[string]float64 {
	totals := make(map[string]float64)
	for _, entry := range entries {
		totals[entry.Date] += entry.Food.Calories()
	}
	return totals
}

// MacroTotals sums the nutrient fields across entries, keyed by display
// label, for pie charts.
func MacroTotals(entries []services.MealEntry) map[string]float64 {
	totals := make(map[string]float64)
	for _, entry := range entries {
		totals["Protein (g)"] += entry.Food.Proteins
		totals["Fats (g)"] += entry.Food.Fats
		totals["Carbs (g)"] += entry.Food.Carbs
		totals["Sugar (g)"] += entry.Food.Sugar
		totals["Sodium (mg)"] += entry.Food.Sodium
		totals["Water (g)"] += entry.Food.Water
	}
	return totals
}
