// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package usecase

import (
	"context"
	"log/slog"

	"github.com/gyrus-dev/gyrus/internal/circle"
	"github.com/gyrus-dev/gyrus/internal/memory"
	"github.com/gyrus-dev/gyrus/internal/platform"
	"github.com/gyrus-dev/gyrus/internal/provider"
	"github.com/gyrus-dev/gyrus/internal/store"
	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

// Recall fetches recent Nodes in the active circle, hands them to the
// picker ranked against a reference text, and pastes or copies the
// user's choice. Cancellation before a selection resolves performs no
// side effect.
type Recall struct {
	nodes     store.NodeStore
	embedder  provider.Embedder
	clipboard platform.Clipboard
	keyboard  platform.Keyboard
	picker    platform.Picker
	circles   *circle.Service
	window    int
	logger    *slog.Logger
}

// NewRecall wires the recall use case. window is the size of the
// most-recent candidate set fetched per recall.
func NewRecall(nodes store.NodeStore, embedder provider.Embedder, clipboard platform.Clipboard, keyboard platform.Keyboard, picker platform.Picker, circles *circle.Service, window int, logger *slog.Logger) *Recall {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recall{
		nodes:     nodes,
		embedder:  embedder,
		clipboard: clipboard,
		keyboard:  keyboard,
		picker:    picker,
		circles:   circles,
		window:    window,
		logger:    logger,
	}
}

// Execute runs one recall in the given mode.
func (r *Recall) Execute(ctx context.Context, mode platform.PickMode) error {
	circleID := r.circles.Get()

	candidates, err := r.nodes.FindLast(ctx, r.window, circleID)
	if err != nil {
		return gyruserr.Wrap(err, gyruserr.CodeMemoryRecallFailure, "fetching recall candidates",
			gyruserr.FieldCircleID(circleID))
	}
	if len(candidates) == 0 {
		r.logger.Info("recall: no memories in circle", "circle_id", circleID)
		return nil
	}

	// Reference text seeds the initial ordering; embedding failures
	// degrade to fuzzy-only ranking rather than aborting the recall.
	ref := platform.AcquireReference(r.clipboard)
	var refVec []float32
	if ref.Text != "" {
		refVec, err = r.embedder.Encode(ctx, ref.Text)
		if err != nil {
			r.logger.Warn("recall: reference embedding failed, ranking without semantic signal",
				"source", string(ref.Source), "error", err)
			refVec = nil
		}
	}

	modelID := r.embedder.ModelID()
	ranked := memory.Rank(ref.Text, candidates, refVec, modelID)

	rerank := func(query string) []*memory.Node {
		var queryVec []float32
		if query != "" {
			if vec, encErr := r.embedder.Encode(ctx, query); encErr == nil {
				queryVec = vec
			}
		}
		return memory.Rank(query, candidates, queryVec, modelID)
	}

	choice, ok, err := r.picker.Pick(ctx, platform.PickRequest{
		Candidates: ranked,
		Rerank:     rerank,
		Mode:       mode,
		CircleID:   circleID,
	})
	if err != nil {
		return gyruserr.Wrap(err, gyruserr.CodeMemoryRecallFailure, "presenting picker")
	}
	if !ok {
		r.logger.Debug("recall cancelled", "circle_id", circleID)
		return nil
	}

	content := resolveChoice(candidates, choice)

	if err := r.clipboard.SetText(content); err != nil {
		return gyruserr.Wrap(err, gyruserr.CodeMemoryRecallFailure, "copying recalled content")
	}
	if mode == platform.ModeRecall {
		if err := r.keyboard.Paste(ctx); err != nil {
			return gyruserr.Wrap(err, gyruserr.CodeMemoryRecallFailure, "pasting recalled content")
		}
	}

	r.logger.Info("node recalled", "circle_id", circleID, "mode", string(mode), "content_len", len(content))
	return nil
}

// resolveChoice maps the picker's display string back to its originating
// Node by exact content equality. No match falls back to the raw string.
func resolveChoice(candidates []*memory.Node, choice string) string {
	for _, n := range candidates {
		if n.Content == choice {
			return n.Content
		}
	}
	return choice
}
