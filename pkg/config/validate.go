package config

import (
	"slices"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/matzehuels/designlint/pkg/errors"
	"github.com/matzehuels/designlint/pkg/lint"
)

// IsCompatible reports whether a file's schema_version can be read by this
// build, using a caret constraint on SchemaVersion.
func IsCompatible(version string) (bool, error) {
	constraint, err := semver.NewConstraint("^" + SchemaVersion)
	if err != nil {
		return false, err
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid schema_version %q", version)
	}
	return constraint.Check(v), nil
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if c.SchemaVersion == "" {
		c.SchemaVersion = SchemaVersion
	}
	ok, err := IsCompatible(c.SchemaVersion)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(errors.ErrCodeInvalidConfig,
			"schema_version %s is not compatible with %s", c.SchemaVersion, SchemaVersion)
	}

	if err := errors.ValidateRadii(c.Rules.Radii); err != nil {
		return err
	}
	for _, name := range c.Rules.Disabled {
		if !slices.Contains(lint.RuleNames, name) {
			return errors.New(errors.ErrCodeInvalidConfig, "rules.disabled: unknown rule %q", name)
		}
	}

	for _, key := range c.Styles.TextFills {
		if err := errors.ValidateStyleKey(key); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "styles.text_fills")
		}
	}
	for _, key := range c.Styles.BackgroundFills {
		if err := errors.ValidateStyleKey(key); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "styles.background_fills")
		}
	}

	switch c.Cache.Backend {
	case CacheNone, CacheFile:
	case CacheRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend: unknown backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL != "" {
		if d, err := time.ParseDuration(c.Cache.TTL); err != nil || d < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl: invalid duration %q", c.Cache.TTL)
		}
	}

	if !slices.Contains(Formats, c.Output.Format) {
		return errors.New(errors.ErrCodeInvalidConfig, "output.format: unknown format %q", c.Output.Format)
	}
	return nil
}
