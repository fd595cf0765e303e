package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axioncore/value"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "default_precision: 10\ndefault_data_type: long\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.DefaultPrecision)
	dt, err := cfg.DataType()
	require.NoError(t, err)
	assert.Equal(t, value.Long, dt)
}

func TestConfig_TokenizerConfig(t *testing.T) {
	cfg := Default()
	tc, err := cfg.TokenizerConfig()
	require.NoError(t, err)
	assert.Equal(t, byte('$'), tc.VarFlag)
	assert.Equal(t, byte('{'), tc.VarStart)
	assert.Equal(t, byte('}'), tc.VarEnd)
}

func TestConfig_TokenizerConfigRejectsMultiByte(t *testing.T) {
	cfg := Default()
	cfg.VarFlag = "$$"
	_, err := cfg.TokenizerConfig()
	assert.Error(t, err)
}

func TestConfig_DataTypeRejectsUnknown(t *testing.T) {
	cfg := Default()
	cfg.DefaultDataType = "complex"
	_, err := cfg.DataType()
	assert.Error(t, err)
}
