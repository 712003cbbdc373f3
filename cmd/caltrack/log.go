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
	"github.com/caltrack/caltrack/internal/usecase"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Manage the meal log",
	}

	cmd.AddCommand(newLogAddCmd())
	cmd.AddCommand(newLogListCmd())
	cmd.AddCommand(newLogDeleteCmd())

	return cmd
}

func newLogAddCmd() *cobra.Command {
	var (
		portion float64
		date    string
		protein float64
		fats    float64
		carbs   float64
		sugar   float64
		sodium  float64
		water   float64
		inline  bool
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Log a consumed meal",
		Long: "Log a meal by catalog name, or with --inline and nutrient flags for an " +
			"ad-hoc food that is registered in the catalog on the fly.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCtx, err := database.CreateDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			input := usecase.MealInput{Portion: portion, Date: date}
			switch {
			case len(args) == 1 && !inline:
				input.Name = args[0]
			case inline:
				name := ""
				if len(args) == 1 {
					name = args[0]
				}
				food := nutrition.NewFood(name, portion, protein, fats, carbs, sugar, sodium, water)
				input.Food = &food
			}

			uc := usecase.NewLog(dbCtx)
			entry, err := uc.Add(context.Background(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %.0f g  %.1f kcal\n",
				entry.ID, entry.Date, entry.Portion, entry.Food.Calories())
			return nil
		},
	}

	cmd.Flags().Float64Var(&portion, "portion", 0, "Consumed portion in grams (food's reference portion if omitted)")
	cmd.Flags().StringVar(&date, "date", "", "Calendar day YYYY-MM-DD (today if omitted)")
	cmd.Flags().BoolVar(&inline, "inline", false, "Register the food from the nutrient flags instead of a catalog lookup")
	cmd.Flags().Float64Var(&protein, "protein", 0, "Protein per portion (g), with --inline")
	cmd.Flags().Float64Var(&fats, "fats", 0, "Fats per portion (g), with --inline")
	cmd.Flags().Float64Var(&carbs, "carbs", 0, "Carbs per portion (g), with --inline")
	cmd.Flags().Float64Var(&sugar, "sugar", 0, "Sugar per portion (g), with --inline")
	cmd.Flags().Float64Var(&sodium, "sodium", 0, "Sodium per portion (mg), with --inline")
	cmd.Flags().Float64Var(&water, "water", 0, "Water per portion (g), with --inline")

	return cmd
}

func newLogListCmd() *cobra.Command {
	var (
		fromDate string
		toDate   string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged meals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbCtx, err := database.CreateDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()
			uc := usecase.NewLog(dbCtx)

			start, end := fromDate, toDate
			if start == "" || end == "" {
				first, last, err := uc.FirstAndLastDates(ctx)
				if err != nil {
					return err
				}
				if start == "" {
					start = first.Format(services.DateLayout)
				}
				if end == "" {
					end = last.Format(services.DateLayout)
				}
			}

			entries, err := uc.EntriesBetween(ctx, start, end)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputEntryJSON(cmd, entries)
			case "table":
				printEntryTable(cmd, entries)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "Range start YYYY-MM-DD (first logged day if omitted)")
	cmd.Flags().StringVar(&toDate, "to", "", "Range end YYYY-MM-DD (last logged day if omitted)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

func newLogDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a logged meal by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCtx, err := database.CreateDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			uc := usecase.NewLog(dbCtx)
			if err := uc.Delete(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		},
	}

	return cmd
}

type entryOutput struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Name     string  `json:"name,omitempty"`
	Portion  float64 `json:"portion"`
	Proteins float64 `json:"proteins"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Water    float64 `json:"water"`
	Calories float64 `json:"calories"`
}

func outputEntryJSON(cmd *cobra.Command, entries []services.MealEntry) error {
	output := make([]entryOutput, 0, len(entries))
	for _, entry := range entries {
		output = append(output, entryOutput{
			ID:       entry.ID,
			Date:     entry.Date,
			Name:     entry.Name,
			Portion:  entry.Portion,
			Proteins: entry.Food.Proteins,
			Fats:     entry.Food.Fats,
			Carbs:    entry.Food.Carbs,
			Sugar:    entry.Food.Sugar,
			Sodium:   entry.Food.Sodium,
			Water:    entry.Food.Water,
			Calories: entry.Food.Calories(),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func printEntryTable(cmd *cobra.Command, entries []services.MealEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	header := table.Row{"ID"}
	for _, column := range services.MealEntryColumns() {
		header = append(header, column)
	}
	t.AppendHeader(header)

	nameWidth := nameColumnWidth(len(header))
	for _, entry := range entries {
		name := entry.Name
		if name == "" {
			name = "(unnamed)"
		}
		t.AppendRow(table.Row{
			entry.ID,
			entry.Date,
			truncateCell(name, nameWidth),
			entry.Portion,
			entry.Food.Proteins, entry.Food.Fats, entry.Food.Carbs,
			entry.Food.Sugar, entry.Food.Sodium, entry.Food.Water,
			fmt.Sprintf("%.1f", entry.Food.Calories()),
		})
	}

	t.Render()
}
