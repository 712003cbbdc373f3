package database

// MealEntryRecord represents a row in the meal_entries table. The row holds
// only a weak reference to the consumed food (by its catalog id), the
// portion actually eaten, and the calendar day; nutrient values are joined
// back in at read time.
type MealEntryRecord struct {
	ID      string
	MealID  string
	Portion float64
	Date    string
}
