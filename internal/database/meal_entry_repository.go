package database

import (
	"context"
	"fmt"

	sqldb "github.com/caltrack/caltrack/internal/database/sqlc"
)

// MealEntryRepository accesses the meal_entries table.
type MealEntryRepository struct {
	ctx *Context
}

func NewMealEntryRepository(dbCtx *Context) *MealEntryRepository {
	return &MealEntryRepository{ctx: dbCtx}
}

// Insert persists one log row.
func (r *MealEntryRepository) Insert(ctx context.Context, record MealEntryRecord) error {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return fmt.Errorf("meal entry repository: missing database context")
	}
	return queries.InsertMealEntry(ctx, sqldb.InsertMealEntryParams{
		ID:      record.ID,
		MealID:  nullString(record.MealID),
		Portion: nullFloat64(record.Portion),
		Date:    nullString(record.Date),
	})
}

// ListBetween returns rows with start <= date <= end, in storage order.
// Dates are ISO 8601 so lexical comparison matches calendar order.
func (r *MealEntryRepository) ListBetween(ctx context.Context, startDate, endDate string) ([]MealEntryRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("meal entry repository: missing database context")
	}

	rows, err := queries.ListMealEntriesBetween(ctx, sqldb.ListMealEntriesBetweenParams{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, err
	}

	result := make([]MealEntryRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, mapMealEntryRow(row))
	}
	return result, nil
}

// DateBounds returns the minimum and maximum entry dates. ok is false when
// the log is empty.
func (r *MealEntryRepository) DateBounds(ctx context.Context) (first, last string, ok bool, err error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return "", "", false, fmt.Errorf("meal entry repository: missing database context")
	}

	row, err := queries.MinMaxMealEntryDates(ctx)
	if err != nil {
		return "", "", false, err
	}
	if !row.Min.Valid || !row.Max.Valid {
		return "", "", false, nil
	}
	return row.Min.String, row.Max.String, true, nil
}

// Delete removes the row with that id; deleting an absent id is a no-op.
func (r *MealEntryRepository) Delete(ctx context.Context, id string) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, fmt.Errorf("meal entry repository: missing database context")
	}

	affected, err := queries.DeleteMealEntryByID(ctx, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the number of logged entries.
func (r *MealEntryRepository) Count(ctx context.Context) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, fmt.Errorf("meal entry repository: missing database context")
	}
	return queries.CountMealEntries(ctx)
}
