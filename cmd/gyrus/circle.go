// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCircleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "circle",
		Short: "Show the active circle and list circles holding memories",
		Long:  "Print the active circle and every circle currently holding nodes, with live counts. Select a circle per invocation with the global --circle flag.",
		RunE:  runCircle,
	}

	return cmd
}

func runCircle(cmd *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()
	out := cmd.OutOrStdout()

	active := a.circles.Get()
	_, _ = fmt.Fprintf(out, "Active circle: %s\n", active)

	circles, err := a.nodes.ListCircles(cmd.Context())
	if err != nil {
		return err
	}
	for _, c := range circles {
		marker := " "
		if c.CircleID == active {
			marker = "*"
		}
		_, _ = fmt.Fprintf(out, "%s %-12s %d nodes\n", marker, c.CircleID, c.Count)
	}
	return nil
}
