package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/KilimcininKorOglu/obaext/internal/extop"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks every field and returns all problems joined, or nil.
func (c *Config) Validate() error {
	var errs []error

	errs = append(errs, validateLogConfig(&c.Logging)...)

	if _, err := extop.ParseDuplicatePolicy(c.Registry.DuplicatePolicy); err != nil {
		errs = append(errs, ValidationError{
			Field:   "registry.duplicatePolicy",
			Message: "must be one of: reject, replace, keep",
		})
	}

	if !slices.Contains([]string{"text", "json", "yaml"}, c.Output.Format) {
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Message: "must be one of: text, json, yaml",
		})
	}

	return errors.Join(errs...)
}

func validateLogConfig(config *LogConfig) []error {
	var errs []error

	if config.Level != "" && !slices.Contains([]string{"debug", "info", "warn", "error"}, config.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: "must be one of: debug, info, warn, error",
		})
	}

	if config.Format != "" && !slices.Contains([]string{"text", "json"}, config.Format) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: "must be one of: text, json",
		})
	}

	return errs
}
