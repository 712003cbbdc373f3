package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caltrack/caltrack/internal/config"
	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/services"
)

type infoOutput struct {
	Version       string `json:"version"`
	DatabasePath  string `json:"databasePath"`
	ConfigPath    string `json:"configPath"`
	Foods         int64  `json:"foods"`
	MealEntries   int64  `json:"mealEntries"`
	ExternalFoods int64  `json:"externalFoods"`
}

func newInfoCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show tracker version, file locations and record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolvedPath := dbPath
			if resolvedPath == "" {
				resolvedPath = config.GetDBPath(config.Path())
			}

			dbCtx, err := database.CreateDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			ctx := context.Background()

			foods, err := services.NewFoodCatalog(dbCtx).Count(ctx)
			if err != nil {
				return err
			}
			entries, err := services.NewMealLog(dbCtx).Count(ctx)
			if err != nil {
				return err
			}
			external, err := services.NewExternalCatalog(dbCtx).Count(ctx)
			if err != nil {
				return err
			}

			info := infoOutput{
				Version:       version,
				DatabasePath:  resolvedPath,
				ConfigPath:    config.Path(),
				Foods:         foods,
				MealEntries:   entries,
				ExternalFoods: external,
			}

			if format == "json" {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Version:        %s\n", info.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Database:       %s\n", info.DatabasePath)
			fmt.Fprintf(cmd.OutOrStdout(), "Config:         %s\n", info.ConfigPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Foods:          %d\n", info.Foods)
			fmt.Fprintf(cmd.OutOrStdout(), "Meal entries:   %d\n", info.MealEntries)
			fmt.Fprintf(cmd.OutOrStdout(), "External foods: %d\n", info.ExternalFoods)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format (table or json)")

	return cmd
}
