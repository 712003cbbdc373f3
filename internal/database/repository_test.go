package database

import (
	"context"
	"testing"

	"github.com/caltrack/caltrack/internal/nutrition"
)

func TestFoodRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	repo := NewFoodRepository(dbCtx)

	food := nutrition.NewFood("Apple", 100, 0.5, 0.2, 10, 8, 1, 85)
	if err := repo.Insert(ctx, food); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	byName, err := repo.FindByName(ctx, "Apple")
	if err != nil {
		t.Fatalf("FindByName error: %v", err)
	}
	if byName != food {
		t.Fatalf("expected %+v, got %+v", food, byName)
	}

	byID, err := repo.FindByID(ctx, food.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if byID != food {
		t.Fatalf("expected %+v, got %+v", food, byID)
	}

	missing, err := repo.FindByName(ctx, "Banana")
	if err != nil {
		t.Fatalf("FindByName missing error: %v", err)
	}
	if !missing.IsZero() {
		t.Fatalf("expected sentinel for missing food, got %+v", missing)
	}

	updated := food
	updated.Carbs = 12
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	fetched, err := repo.FindByName(ctx, "Apple")
	if err != nil || fetched.Carbs != 12 {
		t.Fatalf("expected carbs 12 after update, got %+v err=%v", fetched, err)
	}

	names, err := repo.ListNames(ctx)
	if err != nil || len(names) != 1 || names[0] != "Apple" {
		t.Fatalf("ListNames: %v err=%v", names, err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListAll: len=%d err=%v", len(all), err)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 1 {
		t.Fatalf("Count: %d err=%v", count, err)
	}
}

func TestFoodRepositoryRemoveDeletesUnreferenced(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	repo := NewFoodRepository(dbCtx)

	if err := repo.Insert(ctx, nutrition.NewFood("Apple", 100, 0.5, 0.2, 10, 8, 1, 85)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := repo.Remove(ctx, []string{"Apple", "NoSuchFood"}); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 0 {
		t.Fatalf("expected empty table after remove, count=%d err=%v", count, err)
	}
}

func TestFoodRepositoryRemoveKeepsReferencedRows(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	foods := NewFoodRepository(dbCtx)
	entries := NewMealEntryRepository(dbCtx)

	apple := nutrition.NewFood("Apple", 100, 0.5, 0.2, 10, 8, 1, 85)
	banana := nutrition.NewFood("Banana", 100, 1.1, 0.3, 23, 12, 1, 75)
	if err := foods.Insert(ctx, apple); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := foods.Insert(ctx, banana); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := entries.Insert(ctx, MealEntryRecord{ID: "e1", MealID: apple.ID, Portion: 100, Date: "2022-01-01"}); err != nil {
		t.Fatalf("entry insert failed: %v", err)
	}

	if err := foods.Remove(ctx, []string{"Apple", "Banana"}); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	// Banana had no history and is gone. Apple keeps its row with the name
	// cleared so the entry's join still resolves.
	count, err := foods.Count(ctx)
	if err != nil || count != 1 {
		t.Fatalf("expected 1 remaining row, count=%d err=%v", count, err)
	}

	byName, err := foods.FindByName(ctx, "Apple")
	if err != nil || !byName.IsZero() {
		t.Fatalf("expected name lookup to miss, got %+v err=%v", byName, err)
	}

	byID, err := foods.FindByID(ctx, apple.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if byID.Name != "" || byID.Carbs != apple.Carbs {
		t.Fatalf("expected anonymised row with nutrients intact, got %+v", byID)
	}

	names, err := foods.ListNames(ctx)
	if err != nil || len(names) != 0 {
		t.Fatalf("expected no listed names, got %v err=%v", names, err)
	}
}

func TestMealEntryRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	repo := NewMealEntryRepository(dbCtx)

	records := []MealEntryRecord{
		{ID: "e1", MealID: "Apple", Portion: 100, Date: "2022-01-01"},
		{ID: "e2", MealID: "Apple", Portion: 150, Date: "2022-01-02"},
		{ID: "e3", MealID: "Banana", Portion: 80, Date: "2022-01-03"},
	}
	for _, record := range records {
		if err := repo.Insert(ctx, record); err != nil {
			t.Fatalf("Insert %s failed: %v", record.ID, err)
		}
	}

	// Both bounds are inclusive.
	between, err := repo.ListBetween(ctx, "2022-01-02", "2022-01-03")
	if err != nil {
		t.Fatalf("ListBetween error: %v", err)
	}
	if len(between) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(between))
	}
	if between[0].ID != "e2" || between[1].ID != "e3" {
		t.Fatalf("unexpected rows: %+v", between)
	}

	first, last, ok, err := repo.DateBounds(ctx)
	if err != nil || !ok {
		t.Fatalf("DateBounds failed: ok=%v err=%v", ok, err)
	}
	if first != "2022-01-01" || last != "2022-01-03" {
		t.Fatalf("unexpected bounds %q..%q", first, last)
	}

	deleted, err := repo.Delete(ctx, "e2")
	if err != nil || !deleted {
		t.Fatalf("Delete failed: deleted=%v err=%v", deleted, err)
	}
	deleted, err = repo.Delete(ctx, "e2")
	if err != nil || deleted {
		t.Fatalf("expected repeat delete to be a no-op, deleted=%v err=%v", deleted, err)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 2 {
		t.Fatalf("Count: %d err=%v", count, err)
	}
}

func TestMealEntryRepositoryDateBoundsEmptyLog(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	repo := NewMealEntryRepository(dbCtx)

	_, _, ok, err := repo.DateBounds(ctx)
	if err != nil {
		t.Fatalf("DateBounds error: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for an empty log")
	}
}

func TestExternalFoodRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	repo := NewExternalFoodRepository(dbCtx)

	food := nutrition.NewExternalFood("Apple, raw", "cup:125", 0.3, 0.2, 14, 1, 10, 86)
	if err := repo.Insert(ctx, food); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	exists, err := repo.Exists(ctx, "Apple, raw")
	if err != nil || !exists {
		t.Fatalf("Exists: %v err=%v", exists, err)
	}
	exists, err = repo.Exists(ctx, "Pear, raw")
	if err != nil || exists {
		t.Fatalf("expected Pear to be absent: %v err=%v", exists, err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListAll: len=%d err=%v", len(all), err)
	}
	if all[0] != food {
		t.Fatalf("expected %+v, got %+v", food, all[0])
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 1 {
		t.Fatalf("Count: %d err=%v", count, err)
	}
}

func TestExternalFoodRepositoryListContainingIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	repo := NewExternalFoodRepository(dbCtx)

	descriptions := []string{"Apple, raw", "Apple juice", "Pineapple, canned", "APPLE PIE"}
	for _, description := range descriptions {
		if err := repo.Insert(ctx, nutrition.NewExternalFood(description, "", 1, 1, 1, 0, 0, 0)); err != nil {
			t.Fatalf("Insert %q failed: %v", description, err)
		}
	}

	matches, err := repo.ListContaining(ctx, "Apple", 10)
	if err != nil {
		t.Fatalf("ListContaining error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 case-sensitive matches, got %d: %+v", len(matches), matches)
	}
	if matches[0].Description != "Apple, raw" || matches[1].Description != "Apple juice" {
		t.Fatalf("unexpected matches: %+v", matches)
	}

	limited, err := repo.ListContaining(ctx, "Apple", 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("expected limit to apply, len=%d err=%v", len(limited), err)
	}
}
