package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqldb "github.com/caltrack/caltrack/internal/database/sqlc"
	"github.com/caltrack/caltrack/internal/nutrition"
)

// FoodRepository accesses the local food catalog table.
type FoodRepository struct {
	ctx *Context
}

func NewFoodRepository(dbCtx *Context) *FoodRepository {
	return &FoodRepository{ctx: dbCtx}
}

// FindByName returns the food with that name, or the zero sentinel when no
// row matches.
func (r *FoodRepository) FindByName(ctx context.Context, name string) (nutrition.Food, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nutrition.Food{}, fmt.Errorf("food repository: missing database context")
	}

	row, err := queries.FindFoodByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nutrition.Food{}, nil
		}
		return nutrition.Food{}, err
	}
	return mapFoodRow(row), nil
}

// FindByID returns the food with that reference id, or the zero sentinel.
func (r *FoodRepository) FindByID(ctx context.Context, id string) (nutrition.Food, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nutrition.Food{}, fmt.Errorf("food repository: missing database context")
	}

	row, err := queries.FindFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nutrition.Food{}, nil
		}
		return nutrition.Food{}, err
	}
	return mapFoodRow(row), nil
}

// ListAll returns every named food in storage order.
func (r *FoodRepository) ListAll(ctx context.Context) ([]nutrition.Food, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("food repository: missing database context")
	}

	rows, err := queries.ListFoods(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]nutrition.Food, 0, len(rows))
	for _, row := range rows {
		result = append(result, mapFoodRow(row))
	}
	return result, nil
}

// ListNames returns every non-empty food name in storage order.
func (r *FoodRepository) ListNames(ctx context.Context) ([]string, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("food repository: missing database context")
	}
	return queries.ListFoodNames(ctx)
}

// Insert adds a new catalog row.
func (r *FoodRepository) Insert(ctx context.Context, food nutrition.Food) error {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return fmt.Errorf("food repository: missing database context")
	}
	return queries.InsertFood(ctx, foodParams(food))
}

// Update overwrites all nutrient fields, the portion, and the id of the
// row with food.Name.
func (r *FoodRepository) Update(ctx context.Context, food nutrition.Food) error {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return fmt.Errorf("food repository: missing database context")
	}
	return queries.UpdateFoodByName(ctx, sqldb.UpdateFoodByNameParams{
		Portion: nullFloat64(food.Portion),
		Protein: nullFloat64(food.Proteins),
		Fats:    nullFloat64(food.Fats),
		Carbs:   nullFloat64(food.Carbs),
		Sugar:   nullFloat64(food.Sugar),
		Sodium:  nullFloat64(food.Sodium),
		Water:   nullFloat64(food.Water),
		ID:      nullString(food.ID),
		Name:    food.Name,
	})
}

// Remove deletes or anonymises the named foods in one transaction. Foods
// still referenced by meal entries keep their row with the name cleared so
// history joins keep resolving; unreferenced foods are deleted outright.
func (r *FoodRepository) Remove(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	return WithTx(ctx, r.ctx, func(q *sqldb.Queries) error {
		var toClear, toDelete []string
		for _, name := range names {
			row, err := q.FindFoodByName(ctx, name)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					continue
				}
				return err
			}

			refs, err := q.CountMealEntriesByMealID(ctx, row.ID)
			if err != nil {
				return err
			}
			if refs > 0 {
				toClear = append(toClear, name)
			} else {
				toDelete = append(toDelete, name)
			}
		}

		for _, name := range toDelete {
			if _, err := q.DeleteFoodByName(ctx, name); err != nil {
				return err
			}
		}
		for _, name := range toClear {
			if err := q.ClearFoodName(ctx, name); err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of rows in the catalog, anonymised rows included.
func (r *FoodRepository) Count(ctx context.Context) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, fmt.Errorf("food repository: missing database context")
	}
	return queries.CountFoods(ctx)
}
