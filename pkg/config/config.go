package config

import (
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/knadh/koanf/v2"
)

// Scope says which directory a link source is rooted at
type Scope string

const (
	// ScopeInstall sources live directly in the install directory
	ScopeInstall Scope = "install"
	// ScopeProfile sources live in the install directory's profile subdirectory
	ScopeProfile Scope = "profile"
)

// LinkEntry is one row of the link table
type LinkEntry struct {
	Name  string `koanf:"name"`
	Scope Scope  `koanf:"scope"`
}

// Config is the loaded link table
type Config struct {
	Links []LinkEntry `koanf:"links"`
}

// Load returns the embedded link table
func Load() (*Config, error) {
	return LoadFrom(defaultConfig)
}

// LoadFrom parses and validates a link table from TOML data
func LoadFrom(data []byte) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: data}, tomlParser{}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to parse link table")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to decode link table")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the table is non-empty, every entry is complete and no two
// entries share a name.
func (c *Config) Validate() error {
	if len(c.Links) == 0 {
		return errors.New(errors.ErrConfigInvalid, "link table is empty")
	}

	seen := make(map[string]int, len(c.Links))
	for i, link := range c.Links {
		if link.Name == "" {
			return errors.Newf(errors.ErrConfigInvalid, "link %d has no name", i).
				WithDetail("index", i)
		}
		if link.Scope != ScopeInstall && link.Scope != ScopeProfile {
			return errors.Newf(errors.ErrConfigInvalid, "link %q has unknown scope %q", link.Name, link.Scope).
				WithDetail("index", i)
		}
		if prev, ok := seen[link.Name]; ok {
			return errors.Newf(errors.ErrConfigInvalid, "links %d and %d both target %q", prev, i, link.Name).
				WithDetail("index", i)
		}
		seen[link.Name] = i
	}

	return nil
}
