package ship

import (
	"context"
	"fmt"
	"iter"

	"github.com/alecthomas/kong"
	"go.abhg.dev/log/silog"
	"go.abhg.dev/shipit/internal/git"
)

const (
	_configTag           = "config"
	_configSection       = "shipit"
	_configSectionPrefix = _configSection + "."
)

// GitConfigLister provides access to git-config output.
type GitConfigLister interface {
	ListRegexp(context.Context, string) iter.Seq2[git.ConfigEntry, error]
}

var _ GitConfigLister = (*git.Config)(nil)

// Config defines the shipit configuration source.
// It can be passed into Kong as a [kong.Resolver] to fill in flag values.
//
// Configuration for shipit is specified via git-config.
// These can be system, user, repository, or worktree-level.
//
// The configuration keys are read from the root namespace "shipit"
// for keys in the CLI grammar tagged with the `config:"key"` tag.
// Flags that are not tagged with `config:"key"` are ignored for
// configuration.
//
// For example:
//
//	type someCmd struct {
//		Remote string `config:"remote"`
//	}
//
// This will read the configuration key "shipit.remote" from git-config.
//
//	[shipit]
//	remote = upstream
//
// If a flag is passed on the CLI, it takes precedence over the
// configuration.
type Config struct {
	// items is a map from configuration key
	// to list of values for that field.
	items map[git.ConfigKey][]string
}

// ConfigOptions specifies options for the [Config].
type ConfigOptions struct {
	// Log specifies the logger to use for logging.
	// Defaults to no logging.
	Log *silog.Logger
}

// LoadConfig loads configuration from the provided [GitConfigLister].
func LoadConfig(ctx context.Context, cfg GitConfigLister, opts ConfigOptions) (*Config, error) {
	if opts.Log == nil {
		opts.Log = silog.Nop()
	}

	items := make(map[git.ConfigKey][]string)
	for entry, err := range cfg.ListRegexp(ctx, `^`+_configSection+`\.`) {
		if err != nil {
			return nil, fmt.Errorf("list configuration: %w", err)
		}

		key := entry.Key.Canonical()
		if key.Section() != _configSection {
			// Ignore keys that are not in the shipit namespace.
			// This will never happen if git config --get-regexp
			// behaves correctly, but it's easy to handle.
			continue
		}

		items[key] = append(items[key], entry.Value)
	}

	return &Config{items: items}, nil
}

// Validate checks if the configuration is valid for the given application.
// This is a no-op, as we allow unknown configuration keys.
func (*Config) Validate(*kong.Application) error { return nil }

// Resolve resolves the value for a flag from configuration.
func (c *Config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	k := flag.Tag.Get(_configTag)
	if k == "" {
		return nil, nil
	}

	key := git.ConfigKey(_configSectionPrefix + k).Canonical()
	values := c.items[key]
	switch len(values) {
	case 0:
		return nil, nil

	case 1:
		return values[0], nil

	default:
		if flag.IsSlice() {
			if flag.Tag.Sep != -1 {
				// If there are multiple values, and a separator is
				// defined, let Kong split the values.
				return kong.JoinEscaped(values, flag.Tag.Sep), nil
			}

			return nil, fmt.Errorf("key %q has multiple values but no separator is defined", key)
		}

		// Last value wins if there are multiple instances
		// for a single-valued flag.
		return values[len(values)-1], nil
	}
}
