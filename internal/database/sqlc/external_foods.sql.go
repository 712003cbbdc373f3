package sqldb

import (
	"context"
	"database/sql"
)

// ExternalFood mirrors a row of the read-mostly reference table.
type ExternalFood struct {
	Description string
	Portions    sql.NullString
	Protein     sql.NullFloat64
	Fats        sql.NullFloat64
	Carbs       sql.NullFloat64
	Sodium      sql.NullFloat64
	Sugar       sql.NullFloat64
	Water       sql.NullFloat64
}

const findExternalFoodByDescription = `SELECT description, portions, protein, fats, carbs, sodium, sugar, water
FROM foods WHERE description = ? LIMIT 1`

func (q *Queries) FindExternalFoodByDescription(ctx context.Context, description string) (ExternalFood, error) {
	row := q.db.QueryRowContext(ctx, findExternalFoodByDescription, description)
	var f ExternalFood
	err := row.Scan(&f.Description, &f.Portions, &f.Protein, &f.Fats, &f.Carbs, &f.Sodium, &f.Sugar, &f.Water)
	return f, err
}

const insertExternalFood = `INSERT INTO foods (description, portions, protein, fats, carbs, sodium, sugar, water)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// InsertExternalFoodParams carries the column values for InsertExternalFood.
type InsertExternalFoodParams struct {
	Description string
	Portions    sql.NullString
	Protein     sql.NullFloat64
	Fats        sql.NullFloat64
	Carbs       sql.NullFloat64
	Sodium      sql.NullFloat64
	Sugar       sql.NullFloat64
	Water       sql.NullFloat64
}

func (q *Queries) InsertExternalFood(ctx context.Context, arg InsertExternalFoodParams) error {
	_, err := q.db.ExecContext(ctx, insertExternalFood,
		arg.Description, arg.Portions, arg.Protein, arg.Fats, arg.Carbs, arg.Sodium, arg.Sugar, arg.Water)
	return err
}

// instr keeps the containment check case-sensitive; LIKE folds ASCII case.
const listExternalFoodsContaining = `SELECT description, portions, protein, fats, carbs, sodium, sugar, water
FROM foods WHERE instr(description, ?) > 0 LIMIT ?`

// ListExternalFoodsContainingParams bounds the substring scan.
type ListExternalFoodsContainingParams struct {
	Substring string
	Limit     int64
}

func (q *Queries) ListExternalFoodsContaining(ctx context.Context, arg ListExternalFoodsContainingParams) ([]ExternalFood, error) {
	rows, err := q.db.QueryContext(ctx, listExternalFoodsContaining, arg.Substring, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ExternalFood
	for rows.Next() {
		var f ExternalFood
		if err := rows.Scan(&f.Description, &f.Portions, &f.Protein, &f.Fats, &f.Carbs, &f.Sodium, &f.Sugar, &f.Water); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

const listExternalFoods = `SELECT description, portions, protein, fats, carbs, sodium, sugar, water
FROM foods`

func (q *Queries) ListExternalFoods(ctx context.Context) ([]ExternalFood, error) {
	rows, err := q.db.QueryContext(ctx, listExternalFoods)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ExternalFood
	for rows.Next() {
		var f ExternalFood
		if err := rows.Scan(&f.Description, &f.Portions, &f.Protein, &f.Fats, &f.Carbs, &f.Sodium, &f.Sugar, &f.Water); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

const countExternalFoods = `SELECT COUNT(*) FROM foods`

func (q *Queries) CountExternalFoods(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countExternalFoods).Scan(&count)
	return count, err
}
