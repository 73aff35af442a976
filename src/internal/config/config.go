// FILE: logvault/src/internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"logvault/src/internal/core"
)

type Config struct {
	Store   StoreConfig `toml:"store"`
	Logging LogConfig   `toml:"logging"`
}

// StoreConfig is the persistence surface consumed by the store
type StoreConfig struct {
	// Directory is the root under which group subdirectories are created
	Directory string `toml:"directory"`

	// MaxEntries is the default per-group cap; 0 or negative disables it
	MaxEntries int `toml:"max_entries"`

	// GroupLimits maps raw group names to per-group caps
	GroupLimits map[string]int `toml:"group_limits"`

	// QueueSize bounds the async write queue
	QueueSize int `toml:"queue_size"`
}

func (c *Config) validate() error {
	if c.Store.Directory == "" {
		return fmt.Errorf("store directory must not be empty")
	}
	if strings.Contains(c.Store.Directory, "..") {
		return fmt.Errorf("store directory contains directory traversal: %s", c.Store.Directory)
	}

	if c.Store.QueueSize < 1 {
		return fmt.Errorf("store queue size must be positive: %d", c.Store.QueueSize)
	}

	// Any limit integer is allowed; <= 0 means unbounded
	for group := range c.Store.GroupLimits {
		if group == "" {
			return fmt.Errorf("group limit with empty group name")
		}
	}

	return validateLogConfig(&c.Logging)
}

func defaults() *Config {
	return &Config{
		Store: StoreConfig{
			Directory:  DefaultDirectory(),
			MaxEntries: core.DefaultMaxEntries,
			QueueSize:  core.DefaultQueueSize,
		},
		Logging: *DefaultLogConfig(),
	}
}
