package services

import (
	"context"
	"testing"

	"github.com/caltrack/caltrack/internal/nutrition"
)

func seedExternal(t *testing.T, catalog *ExternalCatalog, descriptions ...string) {
	t.Helper()
	ctx := context.Background()
	for _, description := range descriptions {
		food := nutrition.NewExternalFood(description, "", 1, 1, 1, 0, 0, 0)
		if err := catalog.Add(ctx, food); err != nil {
			t.Fatalf("Add %q failed: %v", description, err)
		}
	}
}

func collectSimilar(t *testing.T, catalog *ExternalCatalog, name string, maxResults int) []string {
	t.Helper()
	var descriptions []string
	for food, err := range catalog.FindSimilar(context.Background(), name, maxResults) {
		if err != nil {
			t.Fatalf("FindSimilar yielded error: %v", err)
		}
		descriptions = append(descriptions, food.Description)
	}
	return descriptions
}

func TestExternalCatalogAddIsIdempotent(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	catalog := NewExternalCatalog(dbCtx)

	food := nutrition.NewExternalFood("Apple, raw", "cup:125", 0.3, 0.2, 14, 1, 10, 86)
	if err := catalog.Add(ctx, food); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := catalog.Add(ctx, food); err != nil {
		t.Fatalf("second Add failed: %v", err)
	}

	count, err := catalog.Count(ctx)
	if err != nil || count != 1 {
		t.Fatalf("expected a single record, count=%d err=%v", count, err)
	}
}

func TestFindSimilarContainmentFirst(t *testing.T) {
	dbCtx := setupServiceDB(t)
	catalog := NewExternalCatalog(dbCtx)

	seedExternal(t, catalog,
		"Apples, raw",
		"Carrot, raw",
		"Apples, dried",
		"Apple",
	)

	got := collectSimilar(t, catalog, "Apples", 10)

	// Containment matches come first in storage order, then near matches
	// above the similarity threshold: "Apple" scores 10/11 against
	// "Apples". "Carrot, raw" qualifies for neither.
	want := []string{"Apples, raw", "Apples, dried", "Apple"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFindSimilarHonoursCap(t *testing.T) {
	dbCtx := setupServiceDB(t)
	catalog := NewExternalCatalog(dbCtx)

	seedExternal(t, catalog,
		"Apple, raw",
		"Apple juice",
		"Apple pie",
		"Apple sauce",
	)

	got := collectSimilar(t, catalog, "Apple", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %v", got)
	}
}

func TestFindSimilarEmptyCatalog(t *testing.T) {
	dbCtx := setupServiceDB(t)
	catalog := NewExternalCatalog(dbCtx)

	if got := collectSimilar(t, catalog, "Apple", 10); len(got) != 0 {
		t.Fatalf("expected no results, got %v", got)
	}
}

func TestFindSimilarStopsWhenCallerBreaks(t *testing.T) {
	dbCtx := setupServiceDB(t)
	catalog := NewExternalCatalog(dbCtx)

	seedExternal(t, catalog, "Apple, raw", "Apple juice", "Apple pie")

	count := 0
	for _, err := range catalog.FindSimilar(context.Background(), "Apple", 10) {
		if err != nil {
			t.Fatalf("FindSimilar yielded error: %v", err)
		}
		count++
		break
	}
	if count != 1 {
		t.Fatalf("expected a single yield, got %d", count)
	}
}
