// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gyrus-dev/gyrus/internal/daemon"
	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon status and memory counts",
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()
	out := cmd.OutOrStdout()

	pid, err := daemon.RunningPID(a.cfg.Daemon.PIDFile)
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(out, "Daemon running (pid %d)\n", pid)
	case gyruserr.HasCode(err, gyruserr.CodeDaemonNotRunning):
		_, _ = fmt.Fprintln(out, "Daemon not running")
	default:
		return err
	}

	circles, err := a.nodes.ListCircles(cmd.Context())
	if err != nil {
		return err
	}
	if len(circles) == 0 {
		_, _ = fmt.Fprintln(out, "No memories stored")
		return nil
	}
	for _, c := range circles {
		_, _ = fmt.Fprintf(out, "circle %-12s %d nodes\n", c.CircleID, c.Count)
	}
	return nil
}
