package sqldb

import "context"

const deleteAllMealEntries = `DELETE FROM meal_entries`

func (q *Queries) DeleteAllMealEntries(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllMealEntries)
	return err
}

const deleteAllFoods = `DELETE FROM food`

func (q *Queries) DeleteAllFoods(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllFoods)
	return err
}

const deleteAllExternalFoods = `DELETE FROM foods`

func (q *Queries) DeleteAllExternalFoods(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllExternalFoods)
	return err
}
