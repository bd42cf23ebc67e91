// Package config provides configuration loading for the extop command.
//
// # Sources
//
// Configuration is layered, later sources overriding earlier ones:
//
//   - DefaultConfig
//   - a YAML or TOML file passed to LoadFile
//   - EXTOP_* environment variables applied by Config.ApplyEnv
//
// A .env file can seed the environment first with LoadEnvFile.
//
// # Example
//
//	logging:
//	  level: debug
//	  format: json
//	registry:
//	  duplicatePolicy: ${EXTOP_POLICY:-reject}
//	output:
//	  format: yaml
//
// The TOML equivalent uses [logging], [registry] and [output] tables with the
// same keys.
package config
