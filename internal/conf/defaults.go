// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Default annotation thresholds. Values confirmed against the labeling
// tool's behavior: sub-0.5% boxes and sub-0.1s segments are pointer noise.
const (
	DefaultMinRegionPercent  = 0.5
	DefaultMinSegmentSeconds = 0.1
	DefaultTimestampEpsilon  = 0.5
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "medialabel-go")
	viper.SetDefault("main.log.enabled", true)
	viper.SetDefault("main.log.path", "medialabel.log")

	viper.SetDefault("annotation.minregionpercent", DefaultMinRegionPercent)
	viper.SetDefault("annotation.minsegmentseconds", DefaultMinSegmentSeconds)
	viper.SetDefault("annotation.timestampepsilon", DefaultTimestampEpsilon)

	viper.SetDefault("suggestion.enabled", true)
	viper.SetDefault("suggestion.seed", 0)
	viper.SetDefault("suggestion.maxcandidates", 16)
	viper.SetDefault("suggestion.cachettl", 15)

	viper.SetDefault("palettes.image", "palettes/image.yaml")
	viper.SetDefault("palettes.video", "palettes/video.yaml")
	viper.SetDefault("palettes.audio", "palettes/audio.yaml")

	viper.SetDefault("output.sqlite.enabled", true)
	viper.SetDefault("output.sqlite.path", "medialabel.db")
}

// defaultSettings returns a Settings struct populated with the defaults,
// bypassing viper. Used as a fallback when unmarshaling fails.
func defaultSettings() *Settings {
	s := &Settings{}
	s.Main.Name = "medialabel-go"
	s.Main.Log = LogConfig{Enabled: true, Path: "medialabel.log"}
	s.Annotation = AnnotationSettings{
		MinRegionPercent:  DefaultMinRegionPercent,
		MinSegmentSeconds: DefaultMinSegmentSeconds,
		TimestampEpsilon:  DefaultTimestampEpsilon,
	}
	s.Suggestion = SuggestionSettings{Enabled: true, MaxCandidates: 16, CacheTTL: 15}
	s.Palettes = PaletteSettings{
		Image: "palettes/image.yaml",
		Video: "palettes/video.yaml",
		Audio: "palettes/audio.yaml",
	}
	s.Output.SQLite = SQLiteSettings{Enabled: true, Path: "medialabel.db"}
	return s
}
