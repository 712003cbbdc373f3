// Package services exposes the application operations over the catalog,
// the reference catalog, and the meal log.
package services

import (
	"context"

	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/nutrition"
)

// FoodCatalog manages the local food catalog.
//
// Lookups return the zero nutrition.Food as a not-found sentinel; callers
// check Food.IsZero() rather than handling an absence error.
type FoodCatalog struct {
	repo *database.FoodRepository
}

// NewFoodCatalog creates a FoodCatalog over the given connection context.
func NewFoodCatalog(dbCtx *database.Context) *FoodCatalog {
	return &FoodCatalog{repo: database.NewFoodRepository(dbCtx)}
}

// AddOrUpdate inserts the food when its name is absent. When the name is
// already present, update selects between overwriting the row in place and
// first-write-wins (no-op). Nameless ad-hoc foods are always inserted; they
// are only reachable through their id.
func (c *FoodCatalog) AddOrUpdate(ctx context.Context, food nutrition.Food, update bool) error {
	if food.Name == "" {
		return c.repo.Insert(ctx, food)
	}

	existing, err := c.repo.FindByName(ctx, food.Name)
	if err != nil {
		return err
	}
	if existing.IsZero() {
		return c.repo.Insert(ctx, food)
	}
	if update {
		return c.repo.Update(ctx, food)
	}
	return nil
}

// GetByName returns the named food, or the zero sentinel when absent. The
// empty name is the sentinel itself and never resolves to a row.
func (c *FoodCatalog) GetByName(ctx context.Context, name string) (nutrition.Food, error) {
	if name == "" {
		return nutrition.Food{}, nil
	}
	return c.repo.FindByName(ctx, name)
}

// GetByID returns the food with that reference id, or the zero sentinel.
func (c *FoodCatalog) GetByID(ctx context.Context, id string) (nutrition.Food, error) {
	if id == "" {
		return nutrition.Food{}, nil
	}
	return c.repo.FindByID(ctx, id)
}

// ListAll returns all named foods in storage order.
func (c *FoodCatalog) ListAll(ctx context.Context) ([]nutrition.Food, error) {
	return c.repo.ListAll(ctx)
}

// ListNames returns all food names in storage order.
func (c *FoodCatalog) ListNames(ctx context.Context) ([]string, error) {
	return c.repo.ListNames(ctx)
}

// Remove deletes the named foods, keeping (anonymised) any row still
// referenced by meal history. One transaction covers the whole call.
func (c *FoodCatalog) Remove(ctx context.Context, names ...string) error {
	return c.repo.Remove(ctx, names)
}

// Count returns the catalog row count, anonymised rows included.
func (c *FoodCatalog) Count(ctx context.Context) (int64, error) {
	return c.repo.Count(ctx)
}
