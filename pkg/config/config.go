// Package config loads designlint configuration.
//
// Configuration is read from TOML or YAML, chosen by file extension, and is
// discovered in this order:
//
//  1. An explicit path (the --config flag)
//  2. designlint.toml in the working directory or any parent
//  3. $XDG_CONFIG_HOME/designlint/config.toml
//  4. Built-in defaults
//
// Values absent from a file keep their defaults.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/designlint/pkg/errors"
	"github.com/matzehuels/designlint/pkg/lint"
)

const (
	// FileName is the project configuration file looked up from the working directory.
	FileName = "designlint.toml"

	// SchemaVersion is the configuration schema this build understands.
	SchemaVersion = "1.0.0"

	appName = "designlint"
)

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Output formats.
var Formats = []string{"text", "json", "sarif"}

// Config is the full designlint configuration.
type Config struct {
	SchemaVersion string       `toml:"schema_version" yaml:"schema_version"`
	Rules         RulesConfig  `toml:"rules" yaml:"rules"`
	Styles        StylesConfig `toml:"styles" yaml:"styles"`
	Ignore        IgnoreConfig `toml:"ignore" yaml:"ignore"`
	Cache         CacheConfig  `toml:"cache" yaml:"cache"`
	Output        OutputConfig `toml:"output" yaml:"output"`

	// Path is the file the configuration was loaded from, or "" for defaults.
	Path string `toml:"-" yaml:"-"`
}

// RulesConfig selects rules and their allow-lists.
type RulesConfig struct {
	Disabled []string  `toml:"disabled" yaml:"disabled"`
	Radii    []float64 `toml:"radii" yaml:"radii"`
}

// StylesConfig holds the style keys reserved for text and for backgrounds.
type StylesConfig struct {
	TextFills       []string `toml:"text_fills" yaml:"text_fills"`
	BackgroundFills []string `toml:"background_fills" yaml:"background_fills"`
}

// IgnoreConfig lists nodes to skip.
type IgnoreConfig struct {
	Nodes []string `toml:"nodes" yaml:"nodes"`
}

// CacheConfig configures the remote document cache.
type CacheConfig struct {
	Backend  string `toml:"backend" yaml:"backend"`
	TTL      string `toml:"ttl" yaml:"ttl"`
	Dir      string `toml:"dir,omitempty" yaml:"dir,omitempty"`
	RedisURL string `toml:"redis_url,omitempty" yaml:"redis_url,omitempty"`
	// Prefix namespaces keys when several teams share one backend.
	Prefix   string `toml:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// OutputConfig controls report output.
type OutputConfig struct {
	Format          string `toml:"format" yaml:"format"`
	FailOnViolation bool   `toml:"fail_on_violation" yaml:"fail_on_violation"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SchemaVersion: SchemaVersion,
		Rules: RulesConfig{
			Radii: append([]float64(nil), lint.DefaultRadii...),
		},
		Styles: StylesConfig{
			TextFills:       append([]string(nil), DefaultTextFills...),
			BackgroundFills: append([]string(nil), DefaultBackgroundFills...),
		},
		Cache: CacheConfig{
			Backend: CacheFile,
			TTL:     "24h",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads the configuration file at path on top of the defaults.
func Load(path string) (*Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, formatFromExt(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes a configuration in the given format ("toml" or "yaml") on
// top of the defaults and validates it.
func Parse(data []byte, format string) (*Config, error) {
	cfg := Default()
	switch format {
	case "toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse TOML")
		}
	case "yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse YAML")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return strings.TrimPrefix(filepath.Ext(path), ".")
	}
}

// CacheTTL returns the parsed cache TTL.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0
	}
	return d
}

// CacheDir returns the file cache directory, defaulting to
// $XDG_CACHE_HOME/designlint.
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	return defaultCacheDir()
}

// EngineOptions converts the configuration into lint engine options.
func (c *Config) EngineOptions() lint.Options {
	return lint.Options{
		Radii:           c.Rules.Radii,
		TextFills:       styleSet(c.Styles.TextFills),
		BackgroundFills: styleSet(c.Styles.BackgroundFills),
		Disabled:        c.Rules.Disabled,
		IgnoreNodes:     c.Ignore.Nodes,
	}
}

// styleSet builds a set of stripped style keys.
func styleSet(keys []string) lint.StyleSet {
	stripped := make([]string, len(keys))
	for i, k := range keys {
		stripped[i] = lint.StripStyleKey(k)
	}
	return lint.NewStyleSet(stripped...)
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc.Encode(c)
}

// WriteFile writes c as TOML to path, creating parent directories.
// Existing files are not overwritten unless force is set.
func (c *Config) WriteFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := c.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("write config: %w", err)
	}
	return f.Close()
}
