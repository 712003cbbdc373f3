package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/nutrition"
	"github.com/caltrack/caltrack/internal/services"
)

func newFoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Manage the food catalog",
	}

	cmd.AddCommand(newFoodAddCmd())
	cmd.AddCommand(newFoodGetCmd())
	cmd.AddCommand(newFoodListCmd())
	cmd.AddCommand(newFoodRemoveCmd())

	return cmd
}

func newFoodAddCmd() *cobra.Command {
	var (
		portion float64
		protein float64
		fats    float64
		carbs   float64
		sugar   float64
		sodium  float64
		water   float64
		update  bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a food to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCtx, err := database.CreateDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			food := nutrition.NewFood(args[0], portion, protein, fats, carbs, sugar, sodium, water)
			catalog := services.NewFoodCatalog(dbCtx)
			if err := catalog.AddOrUpdate(context.Background(), food, update); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%.1f kcal per %.0f g)\n", food.Name, food.Calories(), food.Portion)
			return nil
		},
	}

	cmd.Flags().Float64Var(&portion, "portion", 0, "Reference portion in grams")
	cmd.Flags().Float64Var(&protein, "protein", 0, "Protein per portion (g)")
	cmd.Flags().Float64Var(&fats, "fats", 0, "Fats per portion (g)")
	cmd.Flags().Float64Var(&carbs, "carbs", 0, "Carbs per portion (g)")
	cmd.Flags().Float64Var(&sugar, "sugar", 0, "Sugar per portion (g)")
	cmd.Flags().Float64Var(&sodium, "sodium", 0, "Sodium per portion (mg)")
	cmd.Flags().Float64Var(&water, "water", 0, "Water per portion (g)")
	cmd.Flags().BoolVar(&update, "update", false, "Overwrite the food if it already exists")

	return cmd
}

func newFoodGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Show nutrition facts for a food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCtx, err := database.CreateDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			catalog := services.NewFoodCatalog(dbCtx)
			food, err := catalog.GetByName(context.Background(), args[0])
			if err != nil {
				return err
			}
			if food.IsZero() {
				return fmt.Errorf("food not found: %s", args[0])
			}

			printFoodTable(cmd, []nutrition.Food{food})
			return nil
		},
	}

	return cmd
}

func newFoodListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List foods in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbCtx, err := database.CreateDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			catalog := services.NewFoodCatalog(dbCtx)
			foods, err := catalog.ListAll(context.Background())
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputFoodJSON(cmd, foods)
			case "table":
				printFoodTable(cmd, foods)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func newFoodRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>...",
		Short: "Remove foods from the catalog",
		Long: "Remove foods by name. A food still referenced by meal history keeps its " +
			"row with the name cleared so old entries stay resolvable.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCtx, err := database.CreateDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			catalog := services.NewFoodCatalog(dbCtx)
			if err := catalog.Remove(context.Background(), args...); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d food(s)\n", len(args))
			return nil
		},
	}

	return cmd
}

type foodOutput struct {
	Name     string  `json:"name"`
	Portion  float64 `json:"portion"`
	Proteins float64 `json:"proteins"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Water    float64 `json:"water"`
	Calories float64 `json:"calories"`
}

func outputFoodJSON(cmd *cobra.Command, foods []nutrition.Food) error {
	output := make([]foodOutput, 0, len(foods))
	for _, food := range foods {
		output = append(output, foodOutput{
			Name:     food.Name,
			Portion:  food.Portion,
			Proteins: food.Proteins,
			Fats:     food.Fats,
			Carbs:    food.Carbs,
			Sugar:    food.Sugar,
			Sodium:   food.Sodium,
			Water:    food.Water,
			Calories: food.Calories(),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func printFoodTable(cmd *cobra.Command, foods []nutrition.Food) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	header := table.Row{}
	for _, column := range nutrition.Columns() {
		header = append(header, column)
	}
	t.AppendHeader(header)

	nameWidth := nameColumnWidth(len(nutrition.Columns()))
	for _, food := range foods {
		t.AppendRow(table.Row{
			truncateCell(food.Name, nameWidth),
			food.Portion, food.Proteins, food.Fats, food.Carbs,
			food.Sugar, food.Sodium, food.Water,
			fmt.Sprintf("%.1f", food.Calories()),
		})
	}

	t.Render()
}
