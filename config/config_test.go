package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfs/hackfs/internal/util"
)

// TestNewConfig_WithNilOverride tests that NewConfig creates a config with all
// default values when no override is provided.
func TestNewConfig_WithNilOverride(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(nil)

	require.NotNil(t, cfg)
	assert.Equal(t, NewDefaultConfig(), cfg, "must use default values when no config provided")
}

func TestNewConfig_WithAllOverride(t *testing.T) {
	t.Parallel()

	override := &ConfigOverride{
		LogLvl:   util.Pointer(TraceVerbose),
		SeedPath: util.Pointer("seed.json"),
	}
	cfg := NewConfig(override)

	expCfg := &Config{
		LogLvl:   util.TraceLevel,
		SeedPath: "seed.json",
	}
	require.NotNil(t, cfg)
	assert.Equal(t, expCfg, cfg, "must override all provided fields")
}

func TestConfig_Merge_LogLvlConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		verboseValue  int
		expectedLevel util.LogLevel
	}{
		{"verbose_1_error", 1, util.ErrorLevel},
		{"verbose_2_warn", 2, util.WarnLevel},
		{"verbose_3_info", 3, util.InfoLevel},
		{"verbose_4_debug", 4, util.DebugLevel},
		{"verbose_5_trace", 5, util.TraceLevel},
		{"verbose_0_clamped_to_1", 0, util.ErrorLevel},
		{"verbose_100_clamped_to_5", 100, util.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override := &ConfigOverride{
				LogLvl: &tt.verboseValue,
			}

			cfg := NewConfig(override)
			assert.Equal(t, tt.expectedLevel, cfg.LogLvl)
		})
	}
}

func TestConfig_Merge_PreservesUnsetFields(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()
	cfg.Merge(&ConfigOverride{SeedPath: util.Pointer("nodes.json")})

	assert.Equal(t, DefaultLogLvl, cfg.LogLvl)
	assert.Equal(t, "nodes.json", cfg.SeedPath)
}

func TestLoadConfigOverrideFile_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_lvl: 5\nseed_path: seed.json\n"), 0o644))

	override, err := LoadConfigOverrideFile(path)
	require.NoError(t, err)
	require.NotNil(t, override.LogLvl)
	assert.Equal(t, 5, *override.LogLvl)
	require.NotNil(t, override.SeedPath)
	assert.Equal(t, "seed.json", *override.SeedPath)
}

func TestLoadConfigOverrideFile_JSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_lvl": 1}`), 0o644))

	override, err := LoadConfigOverrideFile(path)
	require.NoError(t, err)
	require.NotNil(t, override.LogLvl)
	assert.Equal(t, 1, *override.LogLvl)
	assert.Nil(t, override.SeedPath)
}

func TestLoadConfigOverrideFile_UnknownExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	_, err := LoadConfigOverrideFile(path)
	assert.Error(t, err)
}

func TestNewConfigFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_lvl: 4\n"), 0o644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, util.DebugLevel, cfg.LogLvl)
	assert.Equal(t, "", cfg.SeedPath)
}

func TestNewConfigFromFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
