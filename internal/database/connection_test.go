package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/caltrack/caltrack/internal/nutrition"
)

func setupTestDB(t *testing.T) *Context {
	t.Helper()
	dbFile := filepath.Join(t.TempDir(), "calorie_app.db")

	ctx, err := CreateDatabase(dbFile)
	if err != nil {
		t.Fatalf("CreateDatabase returned error: %v", err)
	}

	t.Cleanup(func() {
		if err := CloseDatabase(ctx); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return ctx
}

func TestDatabaseCreationAndMigration(t *testing.T) {
	dbCtx := setupTestDB(t)
	ctx := context.Background()

	// All three tables must exist and start empty.
	if count, err := dbCtx.Queries.CountFoods(ctx); err != nil || count != 0 {
		t.Fatalf("CountFoods: count=%d err=%v", count, err)
	}
	if count, err := dbCtx.Queries.CountMealEntries(ctx); err != nil || count != 0 {
		t.Fatalf("CountMealEntries: count=%d err=%v", count, err)
	}
	if count, err := dbCtx.Queries.CountExternalFoods(ctx); err != nil || count != 0 {
		t.Fatalf("CountExternalFoods: count=%d err=%v", count, err)
	}
}

func TestCreateDatabaseIsIdempotent(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "calorie_app.db")

	first, err := CreateDatabase(dbFile)
	if err != nil {
		t.Fatalf("first CreateDatabase error: %v", err)
	}
	if err := CloseDatabase(first); err != nil {
		t.Fatalf("CloseDatabase error: %v", err)
	}

	// Reopening an already-migrated file must not fail.
	second, err := CreateDatabase(dbFile)
	if err != nil {
		t.Fatalf("second CreateDatabase error: %v", err)
	}
	if err := CloseDatabase(second); err != nil {
		t.Fatalf("CloseDatabase error: %v", err)
	}
}

func TestCloseDatabaseNilContext(t *testing.T) {
	if err := CloseDatabase(nil); err != nil {
		t.Fatalf("expected nil error for nil context, got %v", err)
	}
}

func TestClearDatabase(t *testing.T) {
	dbCtx := setupTestDB(t)
	ctx := context.Background()

	foods := NewFoodRepository(dbCtx)
	entries := NewMealEntryRepository(dbCtx)
	external := NewExternalFoodRepository(dbCtx)

	food := nutrition.NewFood("Apple", 100, 0.5, 0.2, 10, 8, 1, 85)
	if err := foods.Insert(ctx, food); err != nil {
		t.Fatalf("food insert failed: %v", err)
	}
	if err := entries.Insert(ctx, MealEntryRecord{ID: "e1", MealID: food.ID, Portion: 100, Date: "2022-01-01"}); err != nil {
		t.Fatalf("entry insert failed: %v", err)
	}
	if err := external.Insert(ctx, nutrition.NewExternalFood("Apple, raw", "", 0.3, 0.2, 14, 1, 10, 86)); err != nil {
		t.Fatalf("external insert failed: %v", err)
	}

	if err := ClearDatabase(dbCtx); err != nil {
		t.Fatalf("ClearDatabase error: %v", err)
	}

	if count, err := foods.Count(ctx); err != nil || count != 0 {
		t.Fatalf("expected empty food table, count=%d err=%v", count, err)
	}
	if count, err := entries.Count(ctx); err != nil || count != 0 {
		t.Fatalf("expected empty meal_entries table, count=%d err=%v", count, err)
	}
	if count, err := external.Count(ctx); err != nil || count != 0 {
		t.Fatalf("expected empty foods table, count=%d err=%v", count, err)
	}
}
