// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

// Package daemon runs the resident gyrus process: it owns the pidfile
// and drives the periodic TTL sweep until the process is signalled to
// stop. Capture and recall stay available to triggers (hotkey glue or
// the CLI) while a sweep runs; the store serialises access to the
// backing file.
package daemon

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gyrus-dev/gyrus/internal/usecase"
)

// Daemon is the resident sweep process.
type Daemon struct {
	purge         *usecase.Purge
	ttl           time.Duration
	sweepInterval time.Duration
	pidFile       string
	logger        *slog.Logger
}

// New wires a Daemon. ttl <= 0 disables the sweep entirely.
func New(purge *usecase.Purge, ttl, sweepInterval time.Duration, pidFile string, logger *slog.Logger) *Daemon {
	if logger == nil {
		logger = slog.Default()
	}
	return &Daemon{
		purge:         purge,
		ttl:           ttl,
		sweepInterval: sweepInterval,
		pidFile:       pidFile,
		logger:        logger,
	}
}

// Run writes the pidfile, sweeps on a ticker, and blocks until ctx is
// cancelled or SIGINT/SIGTERM arrives. Sweep failures are logged and the
// loop continues; the next tick retries naturally.
func (d *Daemon) Run(ctx context.Context) error {
	if err := writePIDFile(d.pidFile); err != nil {
		return err
	}
	defer removePIDFile(d.pidFile)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	d.logger.Info("gyrus daemon up", "ttl", d.ttl, "sweep_interval", d.sweepInterval, "pid", os.Getpid())

	if d.ttl <= 0 {
		d.logger.Info("ttl sweep disabled")
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(d.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("gyrus daemon stopping")
			return nil
		case <-ticker.C:
			if _, err := d.purge.Expired(ctx, d.ttl); err != nil {
				d.logger.Error("ttl sweep failed", "error", err)
			}
		}
	}
}
