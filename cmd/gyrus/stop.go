// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gyrus-dev/gyrus/internal/config"
	"github.com/gyrus-dev/gyrus/internal/daemon"
	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the gyrus daemon",
		RunE:  runStop,
	}
}

func runStop(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return err
	}

	if err := daemon.Stop(cfg.Daemon.PIDFile); err != nil {
		if gyruserr.HasCode(err, gyruserr.CodeDaemonNotRunning) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Daemon not running")
			return nil
		}
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Daemon stopped")
	return nil
}
