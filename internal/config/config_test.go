// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyrus-dev/gyrus/internal/config"
	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.NotEmpty(t, cfg.Storage.Path)
	assert.Equal(t, 72*time.Hour, cfg.Memory.TTL)
	assert.Equal(t, 10*time.Minute, cfg.Memory.SweepInterval)
	assert.Equal(t, 15, cfg.Memory.RecallWindow)
	assert.Equal(t, "fast-bge-small-en-v1.5", cfg.Embedding.Model)
	assert.Equal(t, "terminal", cfg.Picker.Kind)
	assert.NotEmpty(t, cfg.Daemon.PIDFile)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gyrus.yaml")
	content := `
storage:
  path: /tmp/custom.db
memory:
  ttl: 24h
  recall_window: 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Storage.Path)
	assert.Equal(t, 24*time.Hour, cfg.Memory.TTL)
	assert.Equal(t, 30, cfg.Memory.RecallWindow)
	// Untouched keys keep their defaults.
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Memory.SweepInterval)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, gyruserr.CodeConfigLoadReadFailure, gyruserr.CodeOf(err))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GYRUS_MEMORY_RECALL_WINDOW", "42")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Memory.RecallWindow)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("storage.backend", "postgres")
	v.Set("memory.ttl", "-1h")
	v.Set("memory.recall_window", 0)
	v.Set("picker.kind", "rofi")

	_, err := config.FromViper(v)
	require.Error(t, err)
	assert.Equal(t, gyruserr.CodeConfigValidateInvalidValue, gyruserr.CodeOf(err))

	msg := err.Error()
	assert.Contains(t, msg, "storage.backend")
	assert.Contains(t, msg, "memory.ttl")
	assert.Contains(t, msg, "memory.recall_window")
	assert.Contains(t, msg, "picker.kind")
}

func TestValidate_ZeroTTLIsValid(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("memory.ttl", "0s")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Memory.TTL)
}
