// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

// Config is the top-level Gyrus configuration.
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Memory    MemoryConfig    `mapstructure:"memory"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Picker    PickerConfig    `mapstructure:"picker"`
	Daemon    DaemonConfig    `mapstructure:"daemon"`
}

// StorageConfig selects the node store backend and its backing file.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

// MemoryConfig controls node lifetime and the recall window.
type MemoryConfig struct {
	// TTL is the age past which the background sweep deletes a node.
	TTL time.Duration `mapstructure:"ttl"`
	// SweepInterval is the cadence of the background TTL sweep.
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	// RecallWindow is how many recent nodes a recall fetches.
	RecallWindow int `mapstructure:"recall_window"`
}

// EmbeddingConfig selects the local embedding model.
type EmbeddingConfig struct {
	Model    string `mapstructure:"model"`
	CacheDir string `mapstructure:"cache_dir"`
}

// PickerConfig selects the picker binding.
type PickerConfig struct {
	Kind string `mapstructure:"kind"`
}

// DaemonConfig controls daemon process management.
type DaemonConfig struct {
	PIDFile string `mapstructure:"pid_file"`
}

// SetDefaults installs the default configuration values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", "sqlite")
	v.SetDefault("storage.path", filepath.Join(dataDir(), "gyrus.db"))
	v.SetDefault("memory.ttl", "72h")
	v.SetDefault("memory.sweep_interval", "10m")
	v.SetDefault("memory.recall_window", 15)
	v.SetDefault("embedding.model", "fast-bge-small-en-v1.5")
	v.SetDefault("embedding.cache_dir", filepath.Join(dataDir(), "models"))
	v.SetDefault("picker.kind", "terminal")
	v.SetDefault("daemon.pid_file", filepath.Join(dataDir(), "gyrus.pid"))
}

// SetupEnv binds GYRUS_-prefixed environment variables on v.
func SetupEnv(v *viper.Viper) {
	v.SetEnvPrefix("GYRUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from the given path (or defaults) with
// environment variable overrides (prefix GYRUS_).
func Load(path string) (*Config, error) {
	v := viper.New()

	SetDefaults(v)
	SetupEnv(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, gyruserr.Errorf(gyruserr.CodeConfigLoadReadFailure, "reading config %s: %w", path, err)
		}
	}

	return FromViper(v)
}

// FromViper decodes and validates a Config from an initialised Viper.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, gyruserr.Errorf(gyruserr.CodeConfigValidateInvalidValue, "unmarshalling config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, gyruserr.Errorf(gyruserr.CodeConfigValidateInvalidValue, "validating config: %w", errors.Join(errs...))
	}

	return &cfg, nil
}

// Validate checks the configuration for logical errors. It returns all
// validation errors found rather than stopping at the first one.
func (c *Config) Validate() []error {
	var errs []error

	validBackends := map[string]bool{"sqlite": true}
	if !validBackends[c.Storage.Backend] {
		errs = append(errs, gyruserr.Errorf(gyruserr.CodeConfigValidateInvalidValue,
			"config: storage.backend must be one of [sqlite], got %q", c.Storage.Backend))
	}
	if c.Storage.Path == "" {
		errs = append(errs, gyruserr.Errorf(gyruserr.CodeConfigValidateInvalidValue,
			"config: storage.path must not be empty"))
	}

	if c.Memory.TTL < 0 {
		errs = append(errs, gyruserr.Errorf(gyruserr.CodeConfigValidateInvalidValue,
			"config: memory.ttl must not be negative, got %s", c.Memory.TTL))
	}
	if c.Memory.SweepInterval <= 0 {
		errs = append(errs, gyruserr.Errorf(gyruserr.CodeConfigValidateInvalidValue,
			"config: memory.sweep_interval must be greater than 0, got %s", c.Memory.SweepInterval))
	}
	if c.Memory.RecallWindow <= 0 {
		errs = append(errs, gyruserr.Errorf(gyruserr.CodeConfigValidateInvalidValue,
			"config: memory.recall_window must be greater than 0, got %d", c.Memory.RecallWindow))
	}

	if c.Embedding.Model == "" {
		errs = append(errs, gyruserr.Errorf(gyruserr.CodeConfigValidateInvalidValue,
			"config: embedding.model must not be empty"))
	}

	validPickers := map[string]bool{"terminal": true}
	if !validPickers[c.Picker.Kind] {
		errs = append(errs, gyruserr.Errorf(gyruserr.CodeConfigValidateInvalidValue,
			"config: picker.kind must be one of [terminal], got %q", c.Picker.Kind))
	}

	return errs
}

// dataDir resolves ~/.local/share/gyrus, falling back to a relative
// directory when the home directory cannot be determined.
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gyrus-data"
	}
	return filepath.Join(home, ".local", "share", "gyrus")
}
