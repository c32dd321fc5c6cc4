// config.go: settings structs and functions to load and save the
// medialabel-go configuration.
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// LogConfig defines the configuration for a log file
type LogConfig struct {
	Enabled bool   // true to enable this log
	Path    string // path to log file
}

// MainSettings contains general application settings.
type MainSettings struct {
	Name string    // name of this node, can be used to identify the source of annotations
	Log  LogConfig // main log configuration
}

// AnnotationSettings holds the validity thresholds for the annotation
// engine. These are the gates every region and segment passes before it
// is stored, whether drawn by hand or merged from a suggestion provider.
type AnnotationSettings struct {
	MinRegionPercent  float64 // minimum region dimension as percent of the frame (width and height)
	MinSegmentSeconds float64 // minimum temporal segment duration in seconds
	TimestampEpsilon  float64 // visibility window in seconds around a region's timestamp
}

// SuggestionSettings contains settings for the AI suggestion collaborator.
type SuggestionSettings struct {
	Enabled       bool  // true to request suggestions on artifact load
	Seed          int64 // seed for the simulated provider, 0 for time-based
	MaxCandidates int   // upper bound on candidates accepted per response
	CacheTTL      int   // provider response cache TTL in minutes
}

// PaletteSettings points to the class palette files per medium.
type PaletteSettings struct {
	Image string // path to image palette yaml
	Video string // path to video palette yaml
	Audio string // path to audio (speaker) palette yaml
}

// SQLiteSettings contains settings for the snapshot SQLite database.
type SQLiteSettings struct {
	Enabled bool   // true to enable snapshot persistence
	Path    string // path to the database file
}

// OutputSettings contains output/persistence settings.
type OutputSettings struct {
	SQLite SQLiteSettings
}

// Settings is the root configuration struct.
type Settings struct {
	Debug bool // true to enable debug behavior

	Main       MainSettings
	Annotation AnnotationSettings
	Suggestion SuggestionSettings
	Palettes   PaletteSettings
	Output     OutputSettings
}

// initSettings initializes viper and loads the configuration, falling back
// to defaults when no config file exists.
func initSettings() *Settings {
	setDefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	for _, path := range configPaths() {
		viper.AddConfigPath(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "error reading config file: %v\n", err)
		}
		// Defaults remain in effect when no config file is present.
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		fmt.Fprintf(os.Stderr, "error unmarshaling config: %v\n", err)
		return defaultSettings()
	}
	return settings
}

// configPaths returns the config search paths in priority order.
func configPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "medialabel-go"))
	}
	return paths
}

// Load reads the configuration from disk, validates it and returns it.
// Defaults apply for anything the config file leaves unset.
func Load() (*Settings, error) {
	settings := initSettings()
	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return settings, nil
}

// SaveSettings writes the current settings to the given path as YAML.
func SaveSettings(settings *Settings, path string) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error marshaling settings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating config directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file %s: %w", path, err)
	}
	return nil
}

// GetBasePath expands the given path relative to the working directory and
// ensures the directory exists.
func GetBasePath(path string) string {
	if filepath.IsAbs(path) {
		_ = os.MkdirAll(path, 0o755)
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	full := filepath.Join(wd, path)
	_ = os.MkdirAll(full, 0o755)
	return full
}
