package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhampawar16/synthea/internal/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "neo4j", cfg.Neo4j.Username)
	assert.Empty(t, cfg.Neo4j.Password)

	assert.Equal(t, "data/csv", cfg.Loader.Dir)
	assert.Equal(t, 1000, cfg.Loader.BatchSize)
	assert.Equal(t, "create", cfg.Loader.NodeMode)

	assert.Equal(t, "google", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)

	assert.Equal(t, ":8080", cfg.API.Address)
	assert.Equal(t, 15*time.Second, cfg.API.ReadTimeout)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
neo4j:
  uri: bolt://graph.internal:7687
  username: loader
  password: secret
  database: synthea

loader:
  dir: /srv/synthea/csv
  batch_size: 500
  node_mode: merge

llm:
  provider: google
  model: gemini-2.0-flash
  api_key: test-key
  temperature: 0.2
  max_tokens: 1024

api:
  address: ":9090"
  read_timeout: 5s
  write_timeout: 10s

logging:
  level: debug
  format: text
`

	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	loader := NewLoader(NewValidator())
	cfg, err := loader.Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "bolt://graph.internal:7687", cfg.Neo4j.URI)
	assert.Equal(t, "loader", cfg.Neo4j.Username)
	assert.Equal(t, "secret", cfg.Neo4j.Password)
	assert.Equal(t, "synthea", cfg.Neo4j.Database)

	assert.Equal(t, "/srv/synthea/csv", cfg.Loader.Dir)
	assert.Equal(t, 500, cfg.Loader.BatchSize)
	assert.Equal(t, "merge", cfg.Loader.NodeMode)

	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, 0.2, cfg.LLM.Temperature)
	assert.Equal(t, 1024, cfg.LLM.MaxTokens)

	assert.Equal(t, ":9090", cfg.API.Address)
	assert.Equal(t, 5*time.Second, cfg.API.ReadTimeout)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
neo4j:
  password: secret
loader:
  batch_size: 250
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := NewLoader(NewValidator()).Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "secret", cfg.Neo4j.Password)
	assert.Equal(t, 250, cfg.Loader.BatchSize)
	assert.Equal(t, "create", cfg.Loader.NodeMode)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(NewValidator())
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	var serr *types.SyntheaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, types.CONFIG_NOT_FOUND, serr.Code)
}

func TestLoadWithDefaults_MissingFileUsesDefaults(t *testing.T) {
	loader := NewLoader(NewValidator())
	cfg, err := loader.LoadWithDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, 1000, cfg.Loader.BatchSize)
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("neo4j: [unclosed"), 0o644))

	_, err := NewLoader(NewValidator()).Load(configPath)
	require.Error(t, err)

	var serr *types.SyntheaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, types.CONFIG_PARSE_FAILED, serr.Code)
}

func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "bad node mode",
			content: `
loader:
  node_mode: upsert
`,
			wantErr: "loader.node_mode must be one of [create merge]",
		},
		{
			name: "bad batch size",
			content: `
loader:
  batch_size: 0
`,
			wantErr: "loader.batch_size must be at least 1",
		},
		{
			name: "bad log level",
			content: `
logging:
  level: loud
`,
			wantErr: "logging.level must be one of [debug info warn error]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yaml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0o644))

			_, err := NewLoader(NewValidator()).Load(configPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.ErrorIs(t, err, types.NewError(types.CONFIG_VALIDATION_FAILED, ""))
		})
	}
}

func TestEnvInterpolation(t *testing.T) {
	t.Setenv("SYNTHEA_TEST_NEO4J_PASSWORD", "from-env")
	t.Setenv("SYNTHEA_TEST_API_KEY", "key-from-env")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
neo4j:
  password: ${SYNTHEA_TEST_NEO4J_PASSWORD}
llm:
  api_key: ${SYNTHEA_TEST_API_KEY}
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := NewLoader(NewValidator()).Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Neo4j.Password)
	assert.Equal(t, "key-from-env", cfg.LLM.APIKey)
}

func TestEnvInterpolation_UnsetVariableFailsValidation(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
neo4j:
  password: ${SYNTHEA_TEST_DEFINITELY_UNSET_VAR}
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	_, err := NewLoader(NewValidator()).Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unset environment variable")
}

func TestInterpolateString(t *testing.T) {
	t.Setenv("SYNTHEA_TEST_VAR", "value")

	assert.Equal(t, "value", interpolateString("${SYNTHEA_TEST_VAR}"))
	assert.Equal(t, "bolt://value:7687", interpolateString("bolt://${SYNTHEA_TEST_VAR}:7687"))
	assert.Equal(t, "plain", interpolateString("plain"))
	assert.Equal(t, "${UNSET_VAR_XYZ}", interpolateString("${UNSET_VAR_XYZ}"))
}
