package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/nutrition"
	"github.com/caltrack/caltrack/internal/services"
)

func setupUsecaseDB(t *testing.T) *database.Context {
	t.Helper()
	ctx, err := database.CreateDatabase(":memory:")
	if err != nil {
		t.Fatalf("CreateDatabase error: %v", err)
	}

	t.Cleanup(func() {
		if err := database.CloseDatabase(ctx); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return ctx
}

func addFood(t *testing.T, dbCtx *database.Context, food nutrition.Food) {
	t.Helper()
	if err := services.NewFoodCatalog(dbCtx).AddOrUpdate(context.Background(), food, false); err != nil {
		t.Fatalf("AddOrUpdate failed: %v", err)
	}
}

func TestResolveRequiresNameOrFood(t *testing.T) {
	dbCtx := setupUsecaseDB(t)
	uc := NewLog(dbCtx)

	_, err := uc.Resolve(context.Background(), MealInput{})
	if !errors.Is(err, ErrNoFood) {
		t.Fatalf("expected ErrNoFood, got %v", err)
	}
}

func TestResolveUnknownName(t *testing.T) {
	dbCtx := setupUsecaseDB(t)
	uc := NewLog(dbCtx)

	_, err := uc.Resolve(context.Background(), MealInput{Name: "Banana"})
	if !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}
}

func TestResolveDefaultsDateAndPortion(t *testing.T) {
	dbCtx := setupUsecaseDB(t)
	uc := NewLog(dbCtx)

	apple := nutrition.NewFood("Apple", 100, 0.5, 0.2, 10, 8, 1, 85)
	addFood(t, dbCtx, apple)

	entry, err := uc.Resolve(context.Background(), MealInput{Name: "Apple"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if entry.Portion != 100 {
		t.Fatalf("expected the reference portion, got %v", entry.Portion)
	}
	if entry.Date != time.Now().Format(services.DateLayout) {
		t.Fatalf("expected today's date, got %q", entry.Date)
	}
	if entry.Food != apple {
		t.Fatalf("expected unscaled food at the reference portion, got %+v", entry.Food)
	}
}

func TestResolveScalesToConsumedPortion(t *testing.T) {
	dbCtx := setupUsecaseDB(t)
	uc := NewLog(dbCtx)

	addFood(t, dbCtx, nutrition.NewFood("Apple", 100, 0.5, 0.2, 10, 8, 1, 85))

	entry, err := uc.Resolve(context.Background(), MealInput{Name: "Apple", Portion: 200, Date: "2022-01-01"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if entry.Food.Proteins != 1.0 || entry.Food.Carbs != 20 || math.Abs(entry.Food.Fats-0.4) > 1e-9 {
		t.Fatalf("expected doubled nutrients, got %+v", entry.Food)
	}

	// The stored catalog row keeps the reference values.
	stored, err := services.NewFoodCatalog(dbCtx).GetByName(context.Background(), "Apple")
	if err != nil || stored.Proteins != 0.5 {
		t.Fatalf("catalog row mutated: %+v err=%v", stored, err)
	}
}

func TestAddWithInlineFoodRegistersIt(t *testing.T) {
	dbCtx := setupUsecaseDB(t)
	uc := NewLog(dbCtx)
	ctx := context.Background()

	inline := nutrition.Food{Name: "Protein bar", Portion: 60, Proteins: 20, Fats: 9, Carbs: 22}
	entry, err := uc.Add(ctx, MealInput{Food: &inline, Date: "2022-01-01"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if entry.ID == "" {
		t.Fatalf("expected a stored entry id")
	}

	stored, err := services.NewFoodCatalog(dbCtx).GetByName(ctx, "Protein bar")
	if err != nil {
		t.Fatalf("GetByName error: %v", err)
	}
	if stored.IsZero() || stored.ID != "Protein bar" {
		t.Fatalf("expected inline food registered, got %+v", stored)
	}
}

func TestAddAndEntriesBetween(t *testing.T) {
	dbCtx := setupUsecaseDB(t)
	uc := NewLog(dbCtx)
	ctx := context.Background()

	addFood(t, dbCtx, nutrition.NewFood("Apple", 100, 0.5, 0.2, 10, 8, 1, 85))

	dates := []string{"2022-01-01", "2022-01-02", "2022-01-03", "2022-01-04"}
	for _, date := range dates {
		if _, err := uc.Add(ctx, MealInput{Name: "Apple", Date: date}); err != nil {
			t.Fatalf("Add %s failed: %v", date, err)
		}
	}

	entries, err := uc.EntriesBetween(ctx, "2022-01-02", "2022-01-03")
	if err != nil {
		t.Fatalf("EntriesBetween error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first, last, err := uc.FirstAndLastDates(ctx)
	if err != nil {
		t.Fatalf("FirstAndLastDates error: %v", err)
	}
	if first.Format(services.DateLayout) != "2022-01-01" || last.Format(services.DateLayout) != "2022-01-04" {
		t.Fatalf("unexpected bounds %v..%v", first, last)
	}

	if err := uc.Delete(ctx, entries[0].ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	remaining, err := uc.EntriesBetween(ctx, "2022-01-01", "2022-01-04")
	if err != nil || len(remaining) != 3 {
		t.Fatalf("expected 3 remaining entries, len=%d err=%v", len(remaining), err)
	}
}
