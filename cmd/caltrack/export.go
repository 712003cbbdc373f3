package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/spreadsheet"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the catalog and meal log to an xlsx workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := spreadsheet.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}

			dbCtx, err := database.CreateDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			if err := spreadsheet.Export(context.Background(), dbCtx, path); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import foods and meals from an xlsx workbook",
		Long: "Import a workbook previously produced by export. The sheet headers must " +
			"match the expected columns exactly, otherwise the file is rejected.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCtx, err := database.CreateDatabase(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = database.CloseDatabase(dbCtx)
			}()

			if err := spreadsheet.Import(context.Background(), dbCtx, args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Imported")
			return nil
		},
	}

	return cmd
}
