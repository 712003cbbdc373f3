package nutrition

import (
	"math"
	"testing"
	"time"
)

func TestNewFoodAssignsNameAsID(t *testing.T) {
	food := NewFood("Apple", 100, 0.5, 0.2, 10, 8, 1, 85)
	if food.ID != "Apple" {
		t.Fatalf("expected id %q, got %q", "Apple", food.ID)
	}
	if food.IsZero() {
		t.Fatalf("named food must not be the sentinel")
	}
}

func TestNewFoodMintsTimestampIDForNamelessFood(t *testing.T) {
	food := NewFood("", 100, 1, 1, 1, 0, 0, 0)
	if food.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if _, err := time.Parse(time.RFC3339Nano, food.ID); err != nil {
		t.Fatalf("expected a timestamp id, got %q: %v", food.ID, err)
	}
	if !food.IsZero() {
		t.Fatalf("nameless food must still read as the sentinel")
	}
}

func TestCalories(t *testing.T) {
	food := NewFood("Apple", 100, 0.5, 0.2, 10, 8, 1, 85)
	if got, want := food.Calories(), 43.8; math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %.1f calories, got %v", want, got)
	}

	if got := (Food{}).Calories(); got != 0 {
		t.Fatalf("expected zero calories for the sentinel, got %v", got)
	}
}

func TestScaledMultipliesNutrientsOnly(t *testing.T) {
	food := NewFood("Apple", 100, 0.5, 0.2, 10, 8, 1, 85)
	scaled := food.Scaled(2)

	if scaled.Proteins != 1.0 || scaled.Fats != 0.4 || scaled.Carbs != 20 {
		t.Fatalf("unexpected macros after scaling: %+v", scaled)
	}
	if scaled.Sugar != 16 || scaled.Sodium != 2 || scaled.Water != 170 {
		t.Fatalf("expected sugar, sodium and water to scale too: %+v", scaled)
	}
	if scaled.Portion != food.Portion || scaled.Name != food.Name || scaled.ID != food.ID {
		t.Fatalf("scaling must not touch identity fields: %+v", scaled)
	}
	if food.Proteins != 0.5 {
		t.Fatalf("receiver mutated by Scaled: %+v", food)
	}
}

func TestValuesMatchColumns(t *testing.T) {
	food := NewFood("Apple", 100, 0.5, 0.2, 10, 8, 1, 85)
	if got, want := len(food.Values()), len(Columns()); got != want {
		t.Fatalf("expected %d values, got %d", want, got)
	}
}
