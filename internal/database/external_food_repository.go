package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqldb "github.com/caltrack/caltrack/internal/database/sqlc"
	"github.com/caltrack/caltrack/internal/nutrition"
)

// ExternalFoodRepository accesses the read-mostly reference catalog.
type ExternalFoodRepository struct {
	ctx *Context
}

func NewExternalFoodRepository(dbCtx *Context) *ExternalFoodRepository {
	return &ExternalFoodRepository{ctx: dbCtx}
}

// Exists reports whether a record with that description is present.
func (r *ExternalFoodRepository) Exists(ctx context.Context, description string) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, fmt.Errorf("external food repository: missing database context")
	}

	_, err := queries.FindExternalFoodByDescription(ctx, description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Insert adds a reference record.
func (r *ExternalFoodRepository) Insert(ctx context.Context, food nutrition.ExternalFood) error {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return fmt.Errorf("external food repository: missing database context")
	}
	return queries.InsertExternalFood(ctx, externalFoodParams(food))
}

// ListContaining returns up to limit records whose description contains
// substr (case-sensitive), in storage order.
func (r *ExternalFoodRepository) ListContaining(ctx context.Context, substr string, limit int64) ([]nutrition.ExternalFood, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("external food repository: missing database context")
	}

	rows, err := queries.ListExternalFoodsContaining(ctx, sqldb.ListExternalFoodsContainingParams{
		Substring: substr,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	result := make([]nutrition.ExternalFood, 0, len(rows))
	for _, row := range rows {
		result = append(result, mapExternalFoodRow(row))
	}
	return result, nil
}

// ListAll returns every reference record in storage order.
func (r *ExternalFoodRepository) ListAll(ctx context.Context) ([]nutrition.ExternalFood, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("external food repository: missing database context")
	}

	rows, err := queries.ListExternalFoods(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]nutrition.ExternalFood, 0, len(rows))
	for _, row := range rows {
		result = append(result, mapExternalFoodRow(row))
	}
	return result, nil
}

// Count returns the number of reference records.
func (r *ExternalFoodRepository) Count(ctx context.Context) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, fmt.Errorf("external food repository: missing database context")
	}
	return queries.CountExternalFoods(ctx)
}
