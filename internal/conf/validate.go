// conf/validate.go

package conf

import (
	"fmt"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// ValidateSettings validates the entire Settings struct
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateAnnotationSettings(&settings.Annotation); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}
	if err := validateSuggestionSettings(&settings.Suggestion); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}
	if err := validateOutputSettings(&settings.Output); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateAnnotationSettings(settings *AnnotationSettings) error {
	if settings.MinRegionPercent <= 0 || settings.MinRegionPercent >= 100 {
		return fmt.Errorf("annotation minregionpercent must be between 0 and 100 exclusive, got %g", settings.MinRegionPercent)
	}
	if settings.MinSegmentSeconds <= 0 {
		return fmt.Errorf("annotation minsegmentseconds must be positive, got %g", settings.MinSegmentSeconds)
	}
	if settings.TimestampEpsilon <= 0 {
		return fmt.Errorf("annotation timestampepsilon must be positive, got %g", settings.TimestampEpsilon)
	}
	return nil
}

func validateSuggestionSettings(settings *SuggestionSettings) error {
	if !settings.Enabled {
		return nil
	}
	if settings.MaxCandidates <= 0 {
		return fmt.Errorf("suggestion maxcandidates must be positive when suggestions are enabled, got %d", settings.MaxCandidates)
	}
	if settings.CacheTTL < 0 {
		return fmt.Errorf("suggestion cachettl must not be negative, got %d", settings.CacheTTL)
	}
	return nil
}

func validateOutputSettings(settings *OutputSettings) error {
	if settings.SQLite.Enabled && settings.SQLite.Path == "" {
		return fmt.Errorf("output sqlite path must be set when sqlite output is enabled")
	}
	return nil
}
