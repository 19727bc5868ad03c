// Package config loads and validates the application configuration from a
// YAML file, with ${VAR_NAME} environment interpolation for values that
// should not live in the file, such as passwords and API keys.
package config

import (
	"time"

	"github.com/shubhampawar16/synthea/internal/graph"
	"github.com/shubhampawar16/synthea/internal/llm"
)

// Config is the root configuration.
type Config struct {
	Neo4j   graph.Config  `mapstructure:"neo4j" yaml:"neo4j" validate:"required"`
	Loader  LoaderConfig  `mapstructure:"loader" yaml:"loader"`
	LLM     llm.Config    `mapstructure:"llm" yaml:"llm"`
	API     APIConfig     `mapstructure:"api" yaml:"api"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoaderConfig contains load-engine settings.
type LoaderConfig struct {
	// Dir is the directory holding the source CSV files.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// BatchSize caps rows per write statement.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size" validate:"min=1,max=100000"`

	// NodeMode is "create" (duplicate nodes on reload, matching the source
	// data model) or "merge" (idempotent reloads for identified entities).
	NodeMode string `mapstructure:"node_mode" yaml:"node_mode" validate:"oneof=create merge"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	// Address is the listen address, e.g. ":8080".
	Address string `mapstructure:"address" yaml:"address"`

	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" validate:"min=1s"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" validate:"min=1s"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=json text"`
}
