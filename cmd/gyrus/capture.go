// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyrus-dev/gyrus/internal/platform"
	"github.com/gyrus-dev/gyrus/internal/usecase"
)

func newCaptureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture [text]",
		Short: "Capture a memory into the active circle",
		Long:  "Embed and persist a snippet. Text comes from the argument, stdin (--stdin), or the selection/clipboard fallback chain.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCapture,
	}

	cmd.Flags().Bool("stdin", false, "read capture text from stdin")

	return cmd
}

func runCapture(cmd *cobra.Command, args []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	capture := usecase.NewCapture(a.nodes, a.embedder, platform.NewSystemClipboard(), a.circles, a.cfg.Memory.TTL, a.logger)

	fromStdin, _ := cmd.Flags().GetBool("stdin")
	switch {
	case len(args) == 1:
		node, err := capture.Execute(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Captured %s into %s\n", node.ID, node.CircleID)
	case fromStdin:
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		node, err := capture.Execute(cmd.Context(), strings.TrimSpace(string(raw)))
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Captured %s into %s\n", node.ID, node.CircleID)
	default:
		node, err := capture.FromClipboard(cmd.Context())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Captured %s into %s\n", node.ID, node.CircleID)
	}
	return nil
}
