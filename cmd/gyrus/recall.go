// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/gyrus-dev/gyrus/internal/platform"
	"github.com/gyrus-dev/gyrus/internal/usecase"
)

func newRecallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recall",
		Short: "Pick a memory and paste it",
		Long:  "Open the picker over recent nodes in the active circle, ranked against the current selection or clipboard. Enter pastes the choice; --view only copies it.",
		RunE:  runRecall,
	}

	cmd.Flags().Bool("view", false, "copy the choice to the clipboard instead of pasting")

	return cmd
}

func runRecall(cmd *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	mode := platform.ModeRecall
	if view, _ := cmd.Flags().GetBool("view"); view {
		mode = platform.ModeView
	}

	recall := usecase.NewRecall(
		a.nodes,
		a.embedder,
		platform.NewSystemClipboard(),
		platform.NewXKeyboard(),
		platform.NewTerminalPicker(),
		a.circles,
		a.cfg.Memory.RecallWindow,
		a.logger,
	)
	return recall.Execute(cmd.Context(), mode)
}
