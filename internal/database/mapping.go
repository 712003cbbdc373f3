package database

import (
	sqldb "github.com/caltrack/caltrack/internal/database/sqlc"
	"github.com/caltrack/caltrack/internal/nutrition"
)

func mapFoodRow(row sqldb.Food) nutrition.Food {
	return nutrition.Food{
		Name:     row.Name,
		Portion:  optionalFloat64(row.Portion),
		Proteins: optionalFloat64(row.Protein),
		Fats:     optionalFloat64(row.Fats),
		Carbs:    optionalFloat64(row.Carbs),
		Sugar:    optionalFloat64(row.Sugar),
		Sodium:   optionalFloat64(row.Sodium),
		Water:    optionalFloat64(row.Water),
		ID:       optionalString(row.ID),
	}
}

func foodParams(food nutrition.Food) sqldb.InsertFoodParams {
	return sqldb.InsertFoodParams{
		Name:    food.Name,
		Portion: nullFloat64(food.Portion),
		Protein: nullFloat64(food.Proteins),
		Fats:    nullFloat64(food.Fats),
		Carbs:   nullFloat64(food.Carbs),
		Sugar:   nullFloat64(food.Sugar),
		Sodium:  nullFloat64(food.Sodium),
		Water:   nullFloat64(food.Water),
		ID:      nullString(food.ID),
	}
}

func mapExternalFoodRow(row sqldb.ExternalFood) nutrition.ExternalFood {
	return nutrition.ExternalFood{
		Description: row.Description,
		Portions:    optionalString(row.Portions),
		Proteins:    optionalFloat64(row.Protein),
		Fats:        optionalFloat64(row.Fats),
		Carbs:       optionalFloat64(row.Carbs),
		Sodium:      optionalFloat64(row.Sodium),
		Sugar:       optionalFloat64(row.Sugar),
		Water:       optionalFloat64(row.Water),
	}
}

func externalFoodParams(food nutrition.ExternalFood) sqldb.InsertExternalFoodParams {
	return sqldb.InsertExternalFoodParams{
		Description: food.Description,
		Portions:    nullString(food.Portions),
		Protein:     nullFloat64(food.Proteins),
		Fats:        nullFloat64(food.Fats),
		Carbs:       nullFloat64(food.Carbs),
		Sodium:      nullFloat64(food.Sodium),
		Sugar:       nullFloat64(food.Sugar),
		Water:       nullFloat64(food.Water),
	}
}

func mapMealEntryRow(row sqldb.MealEntry) MealEntryRecord {
	return MealEntryRecord{
		ID:      row.ID,
		MealID:  optionalString(row.MealID),
		Portion: optionalFloat64(row.Portion),
		Date:    optionalString(row.Date),
	}
}
