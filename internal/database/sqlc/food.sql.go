package sqldb

import (
	"context"
	"database/sql"
)

// Food mirrors a row of the local catalog table.
type Food struct {
	Name    string
	Portion sql.NullFloat64
	Protein sql.NullFloat64
	Fats    sql.NullFloat64
	Carbs   sql.NullFloat64
	Sugar   sql.NullFloat64
	Sodium  sql.NullFloat64
	Water   sql.NullFloat64
	ID      sql.NullString
}

const findFoodByName = `SELECT name, portion, protein, fats, carbs, sugar, sodium, water, id
FROM food WHERE name = ? LIMIT 1`

func (q *Queries) FindFoodByName(ctx context.Context, name string) (Food, error) {
	row := q.db.QueryRowContext(ctx, findFoodByName, name)
	var f Food
	err := row.Scan(&f.Name, &f.Portion, &f.Protein, &f.Fats, &f.Carbs, &f.Sugar, &f.Sodium, &f.Water, &f.ID)
	return f, err
}

const findFoodByID = `SELECT name, portion, protein, fats, carbs, sugar, sodium, water, id
FROM food WHERE id = ? LIMIT 1`

func (q *Queries) FindFoodByID(ctx context.Context, id string) (Food, error) {
	row := q.db.QueryRowContext(ctx, findFoodByID, id)
	var f Food
	err := row.Scan(&f.Name, &f.Portion, &f.Protein, &f.Fats, &f.Carbs, &f.Sugar, &f.Sodium, &f.Water, &f.ID)
	return f, err
}

const listFoods = `SELECT name, portion, protein, fats, carbs, sugar, sodium, water, id
FROM food WHERE name != ''`

func (q *Queries) ListFoods(ctx context.Context) ([]Food, error) {
	rows, err := q.db.QueryContext(ctx, listFoods)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Food
	for rows.Next() {
		var f Food
		if err := rows.Scan(&f.Name, &f.Portion, &f.Protein, &f.Fats, &f.Carbs, &f.Sugar, &f.Sodium, &f.Water, &f.ID); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

const listFoodNames = `SELECT name FROM food WHERE name != ''`

func (q *Queries) ListFoodNames(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listFoodNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

const insertFood = `INSERT INTO food (name, portion, protein, fats, carbs, sugar, sodium, water, id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// InsertFoodParams carries the column values for InsertFood.
type InsertFoodParams struct {
	Name    string
	Portion sql.NullFloat64
	Protein sql.NullFloat64
	Fats    sql.NullFloat64
	Carbs   sql.NullFloat64
	Sugar   sql.NullFloat64
	Sodium  sql.NullFloat64
	Water   sql.NullFloat64
	ID      sql.NullString
}

func (q *Queries) InsertFood(ctx context.Context, arg InsertFoodParams) error {
	_, err := q.db.ExecContext(ctx, insertFood,
		arg.Name, arg.Portion, arg.Protein, arg.Fats, arg.Carbs, arg.Sugar, arg.Sodium, arg.Water, arg.ID)
	return err
}

const updateFoodByName = `UPDATE food
SET portion = ?, protein = ?, fats = ?, carbs = ?, sugar = ?, sodium = ?, water = ?, id = ?
WHERE name = ?`

// UpdateFoodByNameParams carries the column values for UpdateFoodByName.
type UpdateFoodByNameParams struct {
	Portion sql.NullFloat64
	Protein sql.NullFloat64
	Fats    sql.NullFloat64
	Carbs   sql.NullFloat64
	Sugar   sql.NullFloat64
	Sodium  sql.NullFloat64
	Water   sql.NullFloat64
	ID      sql.NullString
	Name    string
}

func (q *Queries) UpdateFoodByName(ctx context.Context, arg UpdateFoodByNameParams) error {
	_, err := q.db.ExecContext(ctx, updateFoodByName,
		arg.Portion, arg.Protein, arg.Fats, arg.Carbs, arg.Sugar, arg.Sodium, arg.Water, arg.ID, arg.Name)
	return err
}

const deleteFoodByName = `DELETE FROM food WHERE name = ?`

func (q *Queries) DeleteFoodByName(ctx context.Context, name string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteFoodByName, name)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const clearFoodName = `UPDATE food SET name = '' WHERE name = ?`

func (q *Queries) ClearFoodName(ctx context.Context, name string) error {
	_, err := q.db.ExecContext(ctx, clearFoodName, name)
	return err
}

const countFoods = `SELECT COUNT(*) FROM food`

func (q *Queries) CountFoods(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countFoods).Scan(&count)
	return count, err
}
