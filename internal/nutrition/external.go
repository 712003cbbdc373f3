package nutrition

import (
	"strconv"
	"strings"
)

// ExternalFood is a row in the read-mostly reference catalog. Description
// is free text and doubles as the primary key; Portions is a serialized
// unit-to-grams mapping such as "cup:240,bowl:350".
type ExternalFood struct {
	Description string
	Portions    string
	Proteins    float64
	Fats        float64
	Carbs       float64
	Sodium      float64
	Sugar       float64
	Water       float64
}

// NewExternalFood builds an ExternalFood, stripping double quotes from the
// description so upstream CSV artifacts cannot split the key space.
func NewExternalFood(description, portions string, proteins, fats, carbs, sodium, sugar, water float64) ExternalFood {
	return ExternalFood{
		Description: strings.ReplaceAll(description, `"`, ""),
		Portions:    portions,
		Proteins:    proteins,
		Fats:        fats,
		Carbs:       carbs,
		Sodium:      sodium,
		Sugar:       sugar,
		Water:       water,
	}
}

// Calories derives the energy content from the macros using the Atwater
// factors, same as Food.Calories.
func (f ExternalFood) Calories() float64 {
	return f.Proteins*4 + f.Carbs*4 + f.Fats*9
}

// PortionsMap parses the Portions field. Segments missing a colon or
// carrying a non-numeric weight are skipped; a malformed segment never
// fails the record.
func (f ExternalFood) PortionsMap() map[string]float64 {
	return ParsePortions(f.Portions)
}

// ParsePortions tolerantly parses a "unit:grams,unit:grams" list.
func ParsePortions(s string) map[string]float64 {
	result := make(map[string]float64)
	if s == "" {
		return result
	}
	for _, segment := range strings.Split(s, ",") {
		unit, grams, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(grams), 64)
		if err != nil {
			continue
		}
		result[strings.TrimSpace(unit)] = weight
	}
	return result
}
