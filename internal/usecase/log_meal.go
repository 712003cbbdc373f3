// Package usecase wires the services into the operations the front ends
// call: logging meals and building report data.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/nutrition"
	"github.com/caltrack/caltrack/internal/services"
)

// ErrNoFood is the validation error for a meal entry built with neither a
// food name nor an inline food record.
var ErrNoFood = errors.New("meal entry requires a food name or an inline food")

// ErrFoodNotFound is returned when a named meal entry does not resolve to
// a catalog record.
var ErrFoodNotFound = errors.New("food not found in catalog")

// Log resolves and records meal entries.
type Log struct {
	catalog *services.FoodCatalog
	meals   *services.MealLog
}

// NewLog creates the meal-logging usecase over one connection context.
func NewLog(dbCtx *database.Context) *Log {
	return &Log{
		catalog: services.NewFoodCatalog(dbCtx),
		meals:   services.NewMealLog(dbCtx),
	}
}

// MealInput describes a meal to log. Exactly one of Name and Food drives
// the resolution: Name looks the food up in the catalog, Food registers an
// inline (possibly nameless) record before the entry is stored.
type MealInput struct {
	Name    string
	Food    *nutrition.Food
	Portion float64
	Date    string
}

// Resolve runs the entry construction state machine: pick the lookup or
// auto-register path, default the date to today and the portion to the
// food's reference portion, and rescale the presentation copy when the
// consumed portion differs. The catalog row is never mutated.
func (l *Log) Resolve(ctx context.Context, input MealInput) (*services.MealEntry, error) {
	if input.Name == "" && input.Food == nil {
		return nil, ErrNoFood
	}

	var food nutrition.Food
	switch {
	case input.Name != "":
		found, err := l.catalog.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if found.IsZero() {
			return nil, fmt.Errorf("%w: %q", ErrFoodNotFound, input.Name)
		}
		food = found
	default:
		food = *input.Food
		if food.ID == "" {
			food = nutrition.NewFood(food.Name, food.Portion, food.Proteins,
				food.Fats, food.Carbs, food.Sugar, food.Sodium, food.Water)
		}
		if err := l.catalog.AddOrUpdate(ctx, food, false); err != nil {
			return nil, err
		}
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format(services.DateLayout)
	}

	portion := input.Portion
	if portion == 0 {
		portion = food.Portion
	}

	display := food
	if portion != food.Portion && food.Portion > 0 {
		display = food.Scaled(portion / food.Portion)
	}

	return &services.MealEntry{
		Name:    food.Name,
		Portion: portion,
		Date:    date,
		Food:    display,
	}, nil
}

// Add resolves the input and persists the entry, returning the stored
// presentation form with its assigned id.
func (l *Log) Add(ctx context.Context, input MealInput) (*services.MealEntry, error) {
	entry, err := l.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := l.meals.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// EntriesBetween exposes the log's inclusive date-range query.
func (l *Log) EntriesBetween(ctx context.Context, startDate, endDate string) ([]services.MealEntry, error) {
	return l.meals.EntriesBetween(ctx, startDate, endDate)
}

// FirstAndLastDates exposes the log's calendar bounds.
func (l *Log) FirstAndLastDates(ctx context.Context) (time.Time, time.Time, error) {
	return l.meals.FirstAndLastDates(ctx)
}

// Delete removes one entry by id.
func (l *Log) Delete(ctx context.Context, id string) error {
	return l.meals.Delete(ctx, id)
}
