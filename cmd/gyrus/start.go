// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gyrus-dev/gyrus/internal/daemon"
	"github.com/gyrus-dev/gyrus/internal/usecase"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the gyrus daemon",
		Long:  "Run the resident gyrus process: write the pidfile and sweep expired nodes on a timer until stopped.",
		RunE:  runStart,
	}
}

func runStart(cmd *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Starting gyrus daemon (db: %s, ttl: %s)\n",
		a.cfg.Storage.Path, a.cfg.Memory.TTL)
	if err != nil {
		return err
	}

	purge := usecase.NewPurge(a.nodes, a.notifier, a.logger)
	d := daemon.New(purge, a.cfg.Memory.TTL, a.cfg.Memory.SweepInterval, a.cfg.Daemon.PIDFile, a.logger)
	return d.Run(cmd.Context())
}
