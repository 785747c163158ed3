package lint

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/konstankino/nameit/formatter"
)

const (
	// DefaultConfigFile is read from the working directory when no path is given.
	DefaultConfigFile = ".nameit.yaml"

	envPrefix = "NAMEIT_"
)

// DefaultExtensions are linted when a directory is given.
var DefaultExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"}

// Config represents the linter configuration.
type Config struct {
	Name       string   `koanf:"name" yaml:"name"`
	Extensions []string `koanf:"extensions" yaml:"extensions"`
	Format     string   `koanf:"format" yaml:"format"`
	NameWidth  int      `koanf:"name_width" yaml:"name_width"`
	LogLevel   string   `koanf:"log_level" yaml:"log_level"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Name:       "nameit",
		Extensions: append([]string(nil), DefaultExtensions...),
		Format:     string(formatter.FormatText),
		NameWidth:  formatter.DefaultNameWidth,
		LogLevel:   "warn",
	}
}

// LoadConfig loads configuration from defaults, the config file, NAMEIT_*
// environment variables and explicitly set flags, in increasing precedence.
//
// An explicit configurationPath must exist. When it is empty, DefaultConfigFile
// is used if present.
func LoadConfig(configurationPath string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")
	def := DefaultConfig()

	if err := k.Load(confmap.Provider(map[string]any{
		"name":       def.Name,
		"extensions": def.Extensions,
		"format":     def.Format,
		"name_width": def.NameWidth,
		"log_level":  def.LogLevel,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := configurationPath
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Extensions = normalizeExtensions(cfg.Extensions)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be fixed up silently.
func (c Config) Validate() error {
	var errs []error
	if _, err := formatter.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.NameWidth <= 0 {
		errs = append(errs, fmt.Errorf("name_width must be positive, got %d", c.NameWidth))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log_level: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// normalizeExtensions splits comma separated entries, as given through the
// environment, and adds the leading dot where it is missing.
func normalizeExtensions(exts []string) []string {
	result := make([]string, 0, len(exts))
	for _, entry := range exts {
		for _, ext := range strings.Split(entry, ",") {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			result = append(result, ext)
		}
	}
	return result
}
