package services

import (
	"context"
	"time"

	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/nutrition"
)

// DateLayout is the calendar-day format used throughout the log. ISO 8601
// dates compare lexically in calendar order, which the range query relies on.
const DateLayout = "2006-01-02"

// MealEntry is the presentation form of one logged meal. Food carries the
// nutrient values already rescaled to the consumed portion; the stored row
// keeps only the reference, the portion, and the date.
type MealEntry struct {
	Name    string
	Portion float64
	Date    string
	Food    nutrition.Food
	ID      string
}

// MealEntryColumns returns the display headers for a MealEntry, in
// spreadsheet order.
func MealEntryColumns() []string {
	return []string{
		"Date", "Name", "Portion (g)", "Protein (g)", "Fats (g)", "Carbs (g)",
		"Sugar (g)", "Sodium (mg)", "Water (g)", "Calories",
	}
}

// Values returns the display values matching MealEntryColumns.
func (e MealEntry) Values() []any {
	return []any{
		e.Date, e.Name, e.Portion, e.Food.Proteins, e.Food.Fats, e.Food.Carbs,
		e.Food.Sugar, e.Food.Sodium, e.Food.Water, e.Food.Calories(),
	}
}

// MealLog manages the time-ordered record of consumed meals.
type MealLog struct {
	entries *database.MealEntryRepository
	foods   *database.FoodRepository
}

// NewMealLog creates a MealLog over the given connection context.
func NewMealLog(dbCtx *database.Context) *MealLog {
	return &MealLog{
		entries: database.NewMealEntryRepository(dbCtx),
		foods:   database.NewFoodRepository(dbCtx),
	}
}

// Add assigns the entry a fresh time-derived id and persists the row.
// Nutrient values are never snapshotted; display queries recompute them
// from the catalog.
func (l *MealLog) Add(ctx context.Context, entry *MealEntry) error {
	entry.ID = time.Now().Format(time.RFC3339Nano)
	return l.entries.Insert(ctx, database.MealEntryRecord{
		ID:      entry.ID,
		MealID:  entry.Food.ID,
		Portion: entry.Portion,
		Date:    entry.Date,
	})
}

// EntriesBetween returns the entries with startDate <= date <= endDate
// (inclusive), each joined back to its food record and rescaled to the
// consumed portion. Order follows the storage scan.
func (l *MealLog) EntriesBetween(ctx context.Context, startDate, endDate string) ([]MealEntry, error) {
	rows, err := l.entries.ListBetween(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	result := make([]MealEntry, 0, len(rows))
	for _, row := range rows {
		food, err := l.foods.FindByID(ctx, row.MealID)
		if err != nil {
			return nil, err
		}
		if row.Portion != food.Portion && food.Portion > 0 {
			food = food.Scaled(row.Portion / food.Portion)
		}
		result = append(result, MealEntry{
			Name:    food.Name,
			Portion: row.Portion,
			Date:    row.Date,
			Food:    food,
			ID:      row.ID,
		})
	}
	return result, nil
}

// FirstAndLastDates returns the calendar bounds of the log. An empty log
// yields today's date for both, not an error.
func (l *MealLog) FirstAndLastDates(ctx context.Context) (time.Time, time.Time, error) {
	first, last, ok, err := l.entries.DateBounds(ctx)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !ok {
		today, _ := time.ParseInLocation(DateLayout, time.Now().Format(DateLayout), time.Local)
		return today, today, nil
	}

	start, err := time.ParseInLocation(DateLayout, first, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation(DateLayout, last, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Delete removes the entry with that id; absent ids are a no-op.
func (l *MealLog) Delete(ctx context.Context, id string) error {
	_, err := l.entries.Delete(ctx, id)
	return err
}

// Count returns the number of logged entries.
func (l *MealLog) Count(ctx context.Context) (int64, error) {
	return l.entries.Count(ctx)
}
