package config

import (
	"time"

	"github.com/shubhampawar16/synthea/internal/graph"
	"github.com/shubhampawar16/synthea/internal/llm"
)

// DefaultConfig returns a Config with sensible default values. The Neo4j
// password and LLM API key have no defaults and must come from the file or
// the environment.
func DefaultConfig() *Config {
	return &Config{
		Neo4j: graph.DefaultConfig(),
		Loader: LoaderConfig{
			Dir:       "data/csv",
			BatchSize: 1000,
			NodeMode:  "create",
		},
		LLM: llm.Config{
			Provider:    "google",
			Model:       "gemini-2.0-flash",
			Temperature: 0.0,
			MaxTokens:   2048,
			Timeout:     60 * time.Second,
		},
		API: APIConfig{
			Address:         ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
