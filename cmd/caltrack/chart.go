package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caltrack/caltrack/internal/chart"
	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/services"
	"github.com/caltrack/caltrack/internal/usecase"
)

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render nutrition charts as PNG files",
	}

	cmd.AddCommand(newChartCaloriesCmd())
	cmd.AddCommand(newChartMacrosCmd())

	return cmd
}

func newChartCaloriesCmd() *cobra.Command {
	var (
		fromDate string
		toDate   string
		outFile  string
	)

	cmd := &cobra.Command{
		Use:   "calories",
		Short: "Render calories per day over a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := rangeEntries(fromDate, toDate)
			if err != nil {
				return err
			}

			data := usecase.DailyCalories(entries)
			if len(data) == 0 {
				return fmt.Errorf("no entries in range")
			}

			out, err := os.Create(outFile)
			if err != nil {
				return err
			}
			defer func() {
				_ = out.Close()
			}()

			if err := chart.TimeSeries(data, "Calories", out); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), outFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "Range start YYYY-MM-DD (first logged day if omitted)")
	cmd.Flags().StringVar(&toDate, "to", "", "Range end YYYY-MM-DD (last logged day if omitted)")
	cmd.Flags().StringVar(&outFile, "out", "calories.png", "Output PNG file")

	return cmd
}

func newChartMacrosCmd() *cobra.Command {
	var (
		fromDate string
		toDate   string
		outFile  string
	)

	cmd := &cobra.Command{
		Use:   "macros",
		Short: "Render the macro split over a date range as a pie chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := rangeEntries(fromDate, toDate)
			if err != nil {
				return err
			}

			out, err := os.Create(outFile)
			if err != nil {
				return err
			}
			defer func() {
				_ = out.Close()
			}()

			if err := chart.Pie(usecase.MacroTotals(entries), out); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), outFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "Range start YYYY-MM-DD (first logged day if omitted)")
	cmd.Flags().StringVar(&toDate, "to", "", "Range end YYYY-MM-DD (last logged day if omitted)")
	cmd.Flags().StringVar(&outFile, "out", "macros.png", "Output PNG file")

	return cmd
}

// rangeEntries loads the entries between the given dates, defaulting open
// ends to the log's calendar bounds.
func rangeEntries(fromDate, toDate string) ([]services.MealEntry, error) {
	dbCtx, err := database.CreateDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = database.CloseDatabase(dbCtx)
	}()

	ctx := context.Background()
	uc := usecase.NewLog(dbCtx)

	if fromDate == "" || toDate == "" {
		first, last, err := uc.FirstAndLastDates(ctx)
		if err != nil {
			return nil, err
		}
		if fromDate == "" {
			fromDate = first.Format(services.DateLayout)
		}
		if toDate == "" {
			toDate = last.Format(services.DateLayout)
		}
	}

	return uc.EntriesBetween(ctx, fromDate, toDate)
}
