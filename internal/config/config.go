// Package config reads and writes the application settings file.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/ini.v1"
)

// Settings file layout: a THEME section with three style fields and a
// DB_PATH section pointing at the SQLite database file.
const (
	themeSection = "THEME"

	dbPathSection = "DB_PATH"
	dbPathKey     = "path"

	// Theme defaults used when a key is missing from the file.
	DefaultThemeStyle     = "Dark"
	DefaultAccentPalette  = "Teal"
	DefaultPrimaryPalette = "BlueGray"

	// Historical fallback for a missing database path. The original
	// application returned the theme default here; kept verbatim for
	// compatibility with existing installs.
	defaultDBPathFallback = "Dark"

	databaseFile = "calorie_app.db"
	configFile   = "config.ini"
)

// AppDir resolves the directory holding the settings file and the default
// database. CALTRACK_DIR wins when set, then the XDG data home, then a
// temp-dir fallback when no home directory can be determined.
func AppDir() string {
	if explicit := os.Getenv("CALTRACK_DIR"); explicit != "" {
		return explicit
	}

	xdg.Reload()

	dataHome := xdg.DataHome
	if dataHome == "" {
		home := xdg.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), "caltrack")
			}
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "caltrack")
}

// Path returns the absolute path of the settings file.
func Path() string {
	return filepath.Join(AppDir(), configFile)
}

// DefaultDatabasePath returns the database location used when the settings
// file carries none.
func DefaultDatabasePath() string {
	return filepath.Join(AppDir(), databaseFile)
}

// Theme holds the three GUI style fields.
type Theme struct {
	Style          string
	AccentPalette  string
	PrimaryPalette string
}

// GetTheme reads the theme from the settings file, falling back to the
// documented defaults per missing key.
func GetTheme(configPath string) Theme {
	file := load(configPath)
	section := file.Section(themeSection)
	return Theme{
		Style:          stringOr(section, "theme_style", DefaultThemeStyle),
		AccentPalette:  stringOr(section, "accent_palette", DefaultAccentPalette),
		PrimaryPalette: stringOr(section, "primary_palette", DefaultPrimaryPalette),
	}
}

// SetTheme replaces the THEME section and writes the file.
func SetTheme(configPath string, theme Theme) error {
	file := load(configPath)
	section := file.Section(themeSection)
	section.Key("theme_style").SetValue(theme.Style)
	section.Key("primary_palette").SetValue(theme.PrimaryPalette)
	section.Key("accent_palette").SetValue(theme.AccentPalette)
	return save(file, configPath)
}

// GetDBPath reads the configured database file location. A missing key
// yields the historical "Dark" fallback (see defaultDBPathFallback).
func GetDBPath(configPath string) string {
	return stringOr(load(configPath).Section(dbPathSection), dbPathKey, defaultDBPathFallback)
}

// SetDBPath stores the database file location and writes the file.
func SetDBPath(configPath, dbPath string) error {
	file := load(configPath)
	file.Section(dbPathSection).Key(dbPathKey).SetValue(dbPath)
	return save(file, configPath)
}

func load(configPath string) *ini.File {
	file, err := ini.LooseLoad(configPath)
	if err != nil {
		return ini.Empty()
	}
	return file
}

func save(file *ini.File, configPath string) error {
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	return file.SaveTo(configPath)
}

func stringOr(section *ini.Section, key, fallback string) string {
	if !section.HasKey(key) {
		return fallback
	}
	if value := section.Key(key).String(); value != "" {
		return value
	}
	return fallback
}
