// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package platform

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"

	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

// Compile-time interface check.
var _ Clipboard = (*SystemClipboard)(nil)

// SystemClipboard binds the Clipboard capability to the OS clipboard,
// with selection capture via the X11 primary selection (xclip) or the
// Wayland equivalent (wl-paste).
type SystemClipboard struct{}

// NewSystemClipboard returns the default clipboard binding.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// GetText reads the clipboard.
func (c *SystemClipboard) GetText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", gyruserr.Wrap(err, gyruserr.CodePlatformClipboardFailure, "reading clipboard")
	}
	return strings.TrimSpace(text), nil
}

// SetText writes the clipboard.
func (c *SystemClipboard) SetText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return gyruserr.Wrap(err, gyruserr.CodePlatformClipboardFailure, "writing clipboard")
	}
	return nil
}

// CaptureSelection reads the active selection and mirrors it into the
// clipboard. Tries xclip first, then wl-paste.
func (c *SystemClipboard) CaptureSelection() (string, error) {
	text, err := runSelectionTool("xclip", "-selection", "primary", "-o")
	if err != nil {
		text, err = runSelectionTool("wl-paste", "--primary", "--no-newline")
	}
	if err != nil {
		return "", gyruserr.Wrap(err, gyruserr.CodePlatformClipboardFailure, "reading selection")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	if err := c.SetText(text); err != nil {
		return "", err
	}
	return text, nil
}

func runSelectionTool(name string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}
