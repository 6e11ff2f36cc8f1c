// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyrus-dev/gyrus/internal/memory"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "List recent memories (read-only)",
		Long:  "Print the most recent nodes in the active circle, newest first. Inspection only; nothing is modified.",
		RunE:  runShow,
	}

	cmd.Flags().Bool("full", false, "print full content and metadata")
	cmd.Flags().Int("limit", 0, "number of nodes to show (default: recall window)")

	return cmd
}

func runShow(cmd *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()
	out := cmd.OutOrStdout()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = a.cfg.Memory.RecallWindow
	}
	full, _ := cmd.Flags().GetBool("full")

	nodes, err := a.nodes.FindLast(cmd.Context(), limit, a.circles.Get())
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		_, _ = fmt.Fprintf(out, "No memories in circle %q\n", a.circles.Get())
		return nil
	}

	for _, n := range nodes {
		if full {
			printNodeFull(out, n)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s  %s\n", n.CreatedAt.Local().Format(time.DateTime), summarize(n.Content))
	}
	return nil
}

func printNodeFull(out io.Writer, n *memory.Node) {
	fmt.Fprintf(out, "id:         %s\n", n.ID)
	fmt.Fprintf(out, "circle:     %s\n", n.CircleID)
	fmt.Fprintf(out, "created_at: %s\n", n.CreatedAt.Local().Format(time.RFC3339))
	if !n.ExpiresAt.IsZero() {
		fmt.Fprintf(out, "expires_at: %s\n", n.ExpiresAt.Local().Format(time.RFC3339))
	}
	fmt.Fprintf(out, "model:      %s (%d dims)\n", n.VectorModelID, len(n.Vector))
	for k, v := range n.Metadata {
		fmt.Fprintf(out, "meta.%s: %s\n", k, v)
	}
	fmt.Fprintf(out, "%s\n\n", n.Content)
}

func summarize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 70 {
		s = s[:67] + "..."
	}
	return s
}
