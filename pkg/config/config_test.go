package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scimkit/scimkit/pkg/config"
)

func TestNewConfigDefaults(t *testing.T) {
	assert := require.New(t)

	cfg, err := config.NewConfig("")
	assert.NoError(err)

	assert.Equal("info", cfg.Logging.LogLevel)
	assert.True(cfg.Output.Indent)
	assert.Empty(cfg.Validate.Kind)
}

func TestNewConfigMissingFile(t *testing.T) {
	assert := require.New(t)

	_, err := config.NewConfig("/nonexistent/scimctl.yaml")
	assert.Error(err)
}

func TestNewConfigFromFile(t *testing.T) {
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "scimctl.yaml")
	assert.NoError(os.WriteFile(path, []byte(`
logging:
  log_level: debug
output:
  indent: false
validate:
  kind: User
`), 0o600))

	cfg, err := config.NewConfig(path)
	assert.NoError(err)

	assert.Equal("debug", cfg.Logging.LogLevel)
	assert.False(cfg.Output.Indent)
	assert.Equal("User", cfg.Validate.Kind)
}

func TestNewConfigBadLogLevel(t *testing.T) {
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "scimctl.yaml")
	assert.NoError(os.WriteFile(path, []byte("logging:\n  log_level: loud\n"), 0o600))

	_, err := config.NewConfig(path)
	assert.Error(err)
}
