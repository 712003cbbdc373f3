package main

import (
	"github.com/spf13/cobra"
)

// dbPath overrides the database location from the settings file when set.
var dbPath string

var rootCmd = &cobra.Command{
	Use:   "caltrack",
	Short: "caltrack - A personal calorie tracker",
	Long:  "caltrack keeps a local food catalog and a log of consumed meals in a single SQLite file.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file (defaults to the configured path)")

	rootCmd.AddCommand(newFoodCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newChartCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newMCPCmd())
}
