// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyrus-dev/gyrus/internal/usecase"
)

func newPurgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete memories",
	}

	expired := &cobra.Command{
		Use:   "expired",
		Short: "Delete nodes older than the TTL",
		RunE:  runPurgeExpired,
	}
	expired.Flags().Duration("ttl", 0, "override the configured TTL")

	circleCmd := &cobra.Command{
		Use:   "circle [id]",
		Short: "Delete every node in one circle",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPurgeCircle,
	}

	all := &cobra.Command{
		Use:   "all",
		Short: "Delete every node in every circle",
		RunE:  runPurgeAll,
	}

	cmd.AddCommand(expired, circleCmd, all)
	return cmd
}

func runPurgeExpired(cmd *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	ttl, _ := cmd.Flags().GetDuration("ttl")
	if ttl <= 0 {
		ttl = a.cfg.Memory.TTL
	}

	deleted, err := usecase.NewPurge(a.nodes, a.notifier, a.logger).Expired(cmd.Context(), ttl)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d nodes older than %s\n", deleted, ttl.Round(time.Second))
	return nil
}

func runPurgeCircle(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	circleID := a.circles.Get()
	if len(args) == 1 {
		circleID = args[0]
	}

	deleted, err := usecase.NewPurge(a.nodes, a.notifier, a.logger).Circle(cmd.Context(), circleID)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d nodes from circle %q\n", deleted, circleID)
	return nil
}

func runPurgeAll(cmd *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	deleted, err := usecase.NewPurge(a.nodes, a.notifier, a.logger).All(cmd.Context())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d nodes from all circles\n", deleted)
	return nil
}
