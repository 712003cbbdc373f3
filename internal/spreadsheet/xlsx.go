// Package spreadsheet bulk-serializes the catalog and the meal log to and
// from a two-sheet xlsx workbook.
package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/nutrition"
	"github.com/caltrack/caltrack/internal/services"
	"github.com/caltrack/caltrack/internal/usecase"
)

const (
	// FoodSheet mirrors the food catalog columns.
	FoodSheet = "Foods"
	// MealSheet mirrors the meal-entry display columns.
	MealSheet = "Meals"

	// DefaultFile is the workbook name used when the caller passes none.
	DefaultFile = "calorie_data.xlsx"
)

// ErrBadHeader rejects an import whose sheet headers do not exactly match
// the expected column set.
var ErrBadHeader = errors.New("spreadsheet: unexpected headers")

// Export writes the food catalog and the full meal history into a new
// workbook at path, one sheet each.
func Export(ctx context.Context, dbCtx *database.Context, path string) error {
	catalog := services.NewFoodCatalog(dbCtx)
	meals := services.NewMealLog(dbCtx)

	foods, err := catalog.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read food catalog: %w", err)
	}

	first, last, err := meals.FirstAndLastDates(ctx)
	if err != nil {
		return fmt.Errorf("failed to read meal log bounds: %w", err)
	}
	entries, err := meals.EntriesBetween(ctx,
		first.Format(services.DateLayout), last.Format(services.DateLayout))
	if err != nil {
		return fmt.Errorf("failed to read meal log: %w", err)
	}

	workbook := excelize.NewFile()
	defer func() {
		_ = workbook.Close()
	}()

	if err := workbook.SetSheetName(workbook.GetSheetName(0), FoodSheet); err != nil {
		return err
	}
	if _, err := workbook.NewSheet(MealSheet); err != nil {
		return err
	}

	if err := writeRow(workbook, FoodSheet, 1, toAnys(nutrition.Columns())); err != nil {
		return err
	}
	for i, food := range foods {
		if err := writeRow(workbook, FoodSheet, i+2, food.Values()); err != nil {
			return err
		}
	}

	if err := writeRow(workbook, MealSheet, 1, toAnys(services.MealEntryColumns())); err != nil {
		return err
	}
	for i, entry := range entries {
		if err := writeRow(workbook, MealSheet, i+2, entry.Values()); err != nil {
			return err
		}
	}

	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Import loads a workbook previously produced by Export. Sheet headers
// must match the expected columns exactly, otherwise the whole file is
// rejected. Foods are upserted; meal rows are re-logged by name, skipping
// rows whose food no longer resolves.
func Import(ctx context.Context, dbCtx *database.Context, path string) error {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		_ = workbook.Close()
	}()

	foodRows, err := workbook.GetRows(FoodSheet)
	if err != nil {
		return fmt.Errorf("failed to read %s sheet: %w", FoodSheet, err)
	}
	mealRows, err := workbook.GetRows(MealSheet)
	if err != nil {
		return fmt.Errorf("failed to read %s sheet: %w", MealSheet, err)
	}

	if len(foodRows) == 0 || !slices.Equal(foodRows[0], nutrition.Columns()) {
		return fmt.Errorf("%w in sheet %s", ErrBadHeader, FoodSheet)
	}
	if len(mealRows) == 0 || !slices.Equal(mealRows[0], services.MealEntryColumns()) {
		return fmt.Errorf("%w in sheet %s", ErrBadHeader, MealSheet)
	}

	catalog := services.NewFoodCatalog(dbCtx)
	for _, row := range foodRows[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		food := nutrition.NewFood(row[0],
			cellFloat(row, 1), cellFloat(row, 2), cellFloat(row, 3),
			cellFloat(row, 4), cellFloat(row, 5), cellFloat(row, 6),
			cellFloat(row, 7))
		if err := catalog.AddOrUpdate(ctx, food, true); err != nil {
			return fmt.Errorf("failed to import food %q: %w", food.Name, err)
		}
	}

	log := usecase.NewLog(dbCtx)
	for _, row := range mealRows[1:] {
		if len(row) < 3 || row[1] == "" {
			continue
		}
		_, err := log.Add(ctx, usecase.MealInput{
			Name:    row[1],
			Portion: cellFloat(row, 2),
			Date:    row[0],
		})
		if err != nil {
			if errors.Is(err, usecase.ErrFoodNotFound) {
				continue
			}
			return fmt.Errorf("failed to import meal entry for %q: %w", row[1], err)
		}
	}

	return nil
}

func writeRow(workbook *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return workbook.SetSheetRow(sheet, cell, &values)
}

func toAnys(values []string) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}

func cellFloat(row []string, idx int) float64 {
	if idx >= len(row) {
		return 0
	}
	value, err := strconv.ParseFloat(row[idx], 64)
	if err != nil {
		return 0
	}
	return value
}
