package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caltrack/caltrack/internal/config"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Read or change the saved GUI theme",
	}

	cmd.AddCommand(newThemeGetCmd())
	cmd.AddCommand(newThemeSetCmd())

	return cmd
}

func newThemeGetCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the saved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme := config.GetTheme(config.Path())

			if format == "json" {
				data, err := json.MarshalIndent(theme, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Style:           %s\n", theme.Style)
			fmt.Fprintf(cmd.OutOrStdout(), "Primary palette: %s\n", theme.PrimaryPalette)
			fmt.Fprintf(cmd.OutOrStdout(), "Accent palette:  %s\n", theme.AccentPalette)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format (table or json)")

	return cmd
}

func newThemeSetCmd() *cobra.Command {
	var (
		style   string
		primary string
		accent  string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change theme fields, keeping unspecified ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath := config.Path()
			theme := config.GetTheme(configPath)

			if style != "" {
				theme.Style = style
			}
			if primary != "" {
				theme.PrimaryPalette = primary
			}
			if accent != "" {
				theme.AccentPalette = accent
			}

			if err := config.SetTheme(configPath, theme); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Theme updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "Theme style, e.g. Dark or Light")
	cmd.Flags().StringVar(&primary, "primary", "", "Primary palette name")
	cmd.Flags().StringVar(&accent, "accent", "", "Accent palette name")

	return cmd
}
