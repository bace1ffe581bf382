// Package config loads slugger configuration from YAML.
//
// # Usage
//
//	cfg, err := config.LoadFile("slugger.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Fields absent from the file keep the values from Default, so a file only
// needs the settings it changes.
//
// ## Environment Variable Substitution
//
// ${VAR_NAME} anywhere in the file is replaced with the variable's value
// before parsing, and ${VAR_NAME:-fallback} supplies a value for unset
// variables:
//
//	# slugger.yaml
//	data:
//	  path: ${SLUGGER_DATA:-Batting.csv}
//	  limit: 0
//	logging:
//	  level: ${LOG_LEVEL:-warn}
//	output:
//	  format: json
//
// The CLI loads a .env file from the working directory first, so variables
// defined there are visible to substitution.
//
// # Configuration Structure
//
//	type Config struct {
//		Data          DataConfig          `yaml:"data"`
//		Logging       LoggingConfig       `yaml:"logging"`
//		Observability ObservabilityConfig `yaml:"observability"`
//		Output        OutputConfig        `yaml:"output"`
//	}
//
// Command-line flags are applied on top of the loaded file.
package config
