package sqldb

import (
	"context"
	"database/sql"
)

// MealEntry mirrors a row of the meal_entries table. Only the food
// reference, the consumed portion, and the date are stored; nutrient
// values are recomputed from the catalog on read.
type MealEntry struct {
	ID      string
	MealID  sql.NullString
	Portion sql.NullFloat64
	Date    sql.NullString
}

const insertMealEntry = `INSERT INTO meal_entries (id, meal_id, portion, date)
VALUES (?, ?, ?, ?)`

// InsertMealEntryParams carries the column values for InsertMealEntry.
type InsertMealEntryParams struct {
	ID      string
	MealID  sql.NullString
	Portion sql.NullFloat64
	Date    sql.NullString
}

func (q *Queries) InsertMealEntry(ctx context.Context, arg InsertMealEntryParams) error {
	_, err := q.db.ExecContext(ctx, insertMealEntry, arg.ID, arg.MealID, arg.Portion, arg.Date)
	return err
}

const listMealEntriesBetween = `SELECT id, meal_id, portion, date
FROM meal_entries WHERE date >= ? AND date <= ?`

// ListMealEntriesBetweenParams bounds the inclusive date range.
type ListMealEntriesBetweenParams struct {
	StartDate string
	EndDate   string
}

func (q *Queries) ListMealEntriesBetween(ctx context.Context, arg ListMealEntriesBetweenParams) ([]MealEntry, error) {
	rows, err := q.db.QueryContext(ctx, listMealEntriesBetween, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MealEntry
	for rows.Next() {
		var e MealEntry
		if err := rows.Scan(&e.ID, &e.MealID, &e.Portion, &e.Date); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const minMaxMealEntryDates = `SELECT MIN(date), MAX(date) FROM meal_entries`

// MinMaxMealEntryDatesRow holds the aggregate bounds; both are NULL on an
// empty table.
type MinMaxMealEntryDatesRow struct {
	Min sql.NullString
	Max sql.NullString
}

func (q *Queries) MinMaxMealEntryDates(ctx context.Context) (MinMaxMealEntryDatesRow, error) {
	var row MinMaxMealEntryDatesRow
	err := q.db.QueryRowContext(ctx, minMaxMealEntryDates).Scan(&row.Min, &row.Max)
	return row, err
}

const deleteMealEntryByID = `DELETE FROM meal_entries WHERE id = ?`

func (q *Queries) DeleteMealEntryByID(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteMealEntryByID, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countMealEntriesByMealID = `SELECT COUNT(*) FROM meal_entries WHERE meal_id = ?`

func (q *Queries) CountMealEntriesByMealID(ctx context.Context, mealID sql.NullString) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countMealEntriesByMealID, mealID).Scan(&count)
	return count, err
}

const countMealEntries = `SELECT COUNT(*) FROM meal_entries`

func (q *Queries) CountMealEntries(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countMealEntries).Scan(&count)
	return count, err
}
