// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package platform

import (
	"context"
	"os/exec"
	"time"

	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

// pasteDelay gives the compositor time to settle clipboard ownership
// before the paste chord fires.
const pasteDelay = 100 * time.Millisecond

// Compile-time interface check.
var _ Keyboard = (*XKeyboard)(nil)

// XKeyboard synthesizes keystrokes through xdotool, falling back to
// wtype on Wayland sessions.
type XKeyboard struct{}

// NewXKeyboard returns the default keyboard binding.
func NewXKeyboard() *XKeyboard {
	return &XKeyboard{}
}

// Paste sends Ctrl+V to the focused window.
func (k *XKeyboard) Paste(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(pasteDelay):
	}

	err := exec.CommandContext(ctx, "xdotool", "key", "--clearmodifiers", "ctrl+v").Run()
	if err != nil {
		err = exec.CommandContext(ctx, "wtype", "-M", "ctrl", "v", "-m", "ctrl").Run()
	}
	if err != nil {
		return gyruserr.Wrap(err, gyruserr.CodePlatformKeyboardFailure, "synthesizing paste keystroke")
	}
	return nil
}
