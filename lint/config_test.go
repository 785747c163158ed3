package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "text", "")
	flags.Int("name-width", 25, "")
	flags.StringSlice("extensions", nil, "")
	flags.String("log-level", "warn", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nameit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: custom
extensions:
  - js
  - .VUE
format: json
name_width: 12
`), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, []string{".js", ".vue"}, cfg.Extensions)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 12, cfg.NameWidth)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nameit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nname_width: 12\n"), 0o644))

	t.Setenv("NAMEIT_FORMAT", "table")
	t.Setenv("NAMEIT_NAME_WIDTH", "30")
	t.Setenv("NAMEIT_EXTENSIONS", ".js,.ts")

	cfg, err := LoadConfig(path, newFlags(t, "--name-width", "40"))
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Format, "env overrides file")
	assert.Equal(t, 40, cfg.NameWidth, "flags override env")
	assert.Equal(t, []string{".js", ".ts"}, cfg.Extensions)
}

func TestLoadConfigUnchangedFlagsKeepFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nameit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o644))

	cfg, err := LoadConfig(path, newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadConfigFlagExtensions(t *testing.T) {
	cfg, err := LoadConfig("", newFlags(t, "--extensions", "js,jsx"))
	require.NoError(t, err)
	assert.Equal(t, []string{".js", ".jsx"}, cfg.Extensions)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{"unknown format", func(c *Config) { c.Format = "xml" }, "unknown output format"},
		{"zero width", func(c *Config) { c.NameWidth = 0 }, "name_width must be positive"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigInvalidValue(t *testing.T) {
	_, err := LoadConfig("", newFlags(t, "--format", "xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
