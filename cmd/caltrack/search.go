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

func newSearchCmd() *cobra.Command {
	var (
		maxResults int
		format     string
	)

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Fuzzy-search the external food catalog",
		Long: "Search the reference catalog by name: substring matches rank first, " +
			"then close matches by edit similarity.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCtx, err := database.CreateDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			external := services.NewExternalCatalog(dbCtx)

			var results []nutrition.ExternalFood
			for food, err := range external.FindSimilar(context.Background(), args[0], maxResults) {
				if err != nil {
					return err
				}
				results = append(results, food)
			}

			switch format {
			case "json":
				return outputSearchJSON(cmd, results)
			case "table":
				printSearchTable(cmd, results)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().IntVar(&maxResults, "max", services.DefaultMaxResults, "Maximum number of results")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

type searchOutput struct {
	Description string             `json:"description"`
	Portions    map[string]float64 `json:"portions,omitempty"`
	Proteins    float64            `json:"proteins"`
	Fats        float64            `json:"fats"`
	Carbs       float64            `json:"carbs"`
	Sodium      float64            `json:"sodium"`
	Sugar       float64            `json:"sugar"`
	Water       float64            `json:"water"`
}

func outputSearchJSON(cmd *cobra.Command, results []nutrition.ExternalFood) error {
	output := make([]searchOutput, 0, len(results))
	for _, food := range results {
		output = append(output, searchOutput{
			Description: food.Description,
			Portions:    food.PortionsMap(),
			Proteins:    food.Proteins,
			Fats:        food.Fats,
			Carbs:       food.Carbs,
			Sodium:      food.Sodium,
			Sugar:       food.Sugar,
			Water:       food.Water,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func printSearchTable(cmd *cobra.Command, results []nutrition.ExternalFood) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Description", "Portions", "Protein (g)", "Fats (g)", "Carbs (g)", "Sugar (g)"})

	descWidth := nameColumnWidth(6)
	for _, food := range results {
		t.AppendRow(table.Row{
			truncateCell(food.Description, descWidth),
			truncateCell(food.Portions, 24),
			food.Proteins, food.Fats, food.Carbs, food.Sugar,
		})
	}

	t.Render()
}
