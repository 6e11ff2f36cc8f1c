// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

// Package platform defines the capability contracts for the OS-facing
// collaborators of the memory core: clipboard, synthetic keyboard input,
// the interactive picker, and the tray/notification surface. Concrete
// bindings are chosen once at startup; the core never branches on
// platform.
package platform

import (
	"context"

	"github.com/gyrus-dev/gyrus/internal/memory"
)

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	GetText() (string, error)
	SetText(text string) error

	// CaptureSelection copies the active selection into the clipboard
	// and returns it.
	CaptureSelection() (string, error)
}

// Keyboard synthesizes input events.
type Keyboard interface {
	// Paste sends a paste chord to the focused window.
	Paste(ctx context.Context) error
}

// PickMode selects the picker's behaviour on confirmation.
type PickMode string

const (
	// ModeRecall pastes the chosen content into the focused window.
	ModeRecall PickMode = "recall"
	// ModeView only copies the chosen content to the clipboard.
	ModeView PickMode = "view"
)

// Reranker reorders the candidate set against a live query. The picker
// calls it on every keystroke; it must be side-effect free.
type Reranker func(query string) []*memory.Node

// PickRequest carries the ranked candidate set into the picker.
type PickRequest struct {
	Candidates []*memory.Node
	Rerank     Reranker
	Mode       PickMode
	CircleID   string
}

// Picker presents candidates and returns the user's chosen content
// string. ok is false when the user cancelled; cancellation is not an
// error.
type Picker interface {
	Pick(ctx context.Context, req PickRequest) (choice string, ok bool, err error)
}

// Notifier is the tray/notification surface. Purely observational; the
// core consumes no return values and ignores its failures.
type Notifier interface {
	CircleSwitched(circleID string)
	Purged(scope string, count int64)
}

// CaptureSource labels where a reference text came from, making the
// selection → clipboard → empty fallback chain visible data-flow.
type CaptureSource string

const (
	SourceSelection CaptureSource = "selection"
	SourceClipboard CaptureSource = "clipboard"
	SourceEmpty     CaptureSource = "empty"
)

// Reference is a reference text with the source that produced it.
type Reference struct {
	Text   string
	Source CaptureSource
}

// AcquireReference walks the fallback chain: active selection first, then
// clipboard contents, then the empty reference. Collaborator failures
// degrade to the next link instead of aborting.
func AcquireReference(cb Clipboard) Reference {
	if text, err := cb.CaptureSelection(); err == nil && text != "" {
		return Reference{Text: text, Source: SourceSelection}
	}
	if text, err := cb.GetText(); err == nil && text != "" {
		return Reference{Text: text, Source: SourceClipboard}
	}
	return Reference{Source: SourceEmpty}
}
