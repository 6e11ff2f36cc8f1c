// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

// Package usecase composes the store, the ranking engine, and the
// platform collaborators into the three user-visible operations:
// capture, recall/view, and purge. Each operation is independent and
// re-entrant; dependencies are injected at construction.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/gyrus-dev/gyrus/internal/circle"
	"github.com/gyrus-dev/gyrus/internal/memory"
	"github.com/gyrus-dev/gyrus/internal/platform"
	"github.com/gyrus-dev/gyrus/internal/provider"
	"github.com/gyrus-dev/gyrus/internal/store"
	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

// Capture persists a text snippet as a Node in the active circle.
type Capture struct {
	nodes     store.NodeStore
	embedder  provider.Embedder
	clipboard platform.Clipboard
	circles   *circle.Service
	ttl       time.Duration
	logger    *slog.Logger
}

// NewCapture wires the capture use case. ttl > 0 stamps ExpiresAt on
// every captured Node.
func NewCapture(nodes store.NodeStore, embedder provider.Embedder, clipboard platform.Clipboard, circles *circle.Service, ttl time.Duration, logger *slog.Logger) *Capture {
	if logger == nil {
		logger = slog.Default()
	}
	return &Capture{
		nodes:     nodes,
		embedder:  embedder,
		clipboard: clipboard,
		circles:   circles,
		ttl:       ttl,
		logger:    logger,
	}
}

// FromClipboard captures whatever the selection/clipboard fallback chain
// yields. An empty chain aborts with no side effect.
func (c *Capture) FromClipboard(ctx context.Context) (*memory.Node, error) {
	ref := platform.AcquireReference(c.clipboard)
	if ref.Source == platform.SourceEmpty {
		return nil, gyruserr.New(gyruserr.CodeMemoryCaptureInvalidInput, "nothing to capture: selection and clipboard are empty")
	}
	return c.Execute(ctx, ref.Text)
}

// Execute embeds text and persists one Node stamped with the active
// circle. Any failure aborts the whole operation; a partial Node is
// never written.
func (c *Capture) Execute(ctx context.Context, text string) (*memory.Node, error) {
	if text == "" {
		return nil, gyruserr.New(gyruserr.CodeMemoryCaptureInvalidInput, "capture text must not be empty")
	}

	vector, err := c.embedder.Encode(ctx, text)
	if err != nil {
		return nil, gyruserr.Wrap(err, gyruserr.CodeMemoryCaptureInvalidInput, "embedding capture text",
			gyruserr.FieldModelID(c.embedder.ModelID()))
	}

	node := memory.NewNode(text, vector, c.embedder.ModelID(), c.circles.Get())
	if c.ttl > 0 {
		node.ExpiresAt = node.CreatedAt.Add(c.ttl)
	}

	if err := c.nodes.Save(ctx, node); err != nil {
		return nil, gyruserr.Wrap(err, gyruserr.CodeStoreDatabaseFailure, "persisting captured node",
			gyruserr.FieldNodeID(node.ID), gyruserr.FieldCircleID(node.CircleID))
	}

	c.logger.Info("node captured",
		"node_id", node.ID,
		"circle_id", node.CircleID,
		"content_len", len(node.Content),
		"vector_model_id", node.VectorModelID,
	)
	return node, nil
}
