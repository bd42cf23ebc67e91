package config

// Config holds the complete client configuration.
type Config struct {
	Logging  LogConfig      `yaml:"logging" toml:"logging"`
	Registry RegistryConfig `yaml:"registry" toml:"registry"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	Output string `yaml:"output" toml:"output"`
}

// RegistryConfig holds response registry configuration.
type RegistryConfig struct {
	// DuplicatePolicy is "reject", "replace" or "keep".
	DuplicatePolicy string `yaml:"duplicatePolicy" toml:"duplicatePolicy"`
}

// OutputConfig controls how decoded responses are printed.
type OutputConfig struct {
	// Format is "text", "json" or "yaml".
	Format string `yaml:"format" toml:"format"`
}
