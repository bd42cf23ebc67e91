package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override file configuration.
const (
	EnvLogLevel        = "EXTOP_LOG_LEVEL"
	EnvLogFormat       = "EXTOP_LOG_FORMAT"
	EnvDuplicatePolicy = "EXTOP_DUPLICATE_POLICY"
	EnvOutput          = "EXTOP_OUTPUT"
)

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set are not overridden.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

// ApplyEnv overrides fields of c from EXTOP_* environment variables.
// Unset or empty variables leave the field unchanged.
func (c *Config) ApplyEnv() {
	override(&c.Logging.Level, EnvLogLevel)
	override(&c.Logging.Format, EnvLogFormat)
	override(&c.Registry.DuplicatePolicy, EnvDuplicatePolicy)
	override(&c.Output.Format, EnvOutput)
}

func override(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
