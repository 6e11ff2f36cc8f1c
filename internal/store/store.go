// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package store

import (
	"context"
	"time"

	"github.com/gyrus-dev/gyrus/internal/memory"
)

// NodeStore is the durable repository of captured Nodes. Implementations
// own the on-disk representation; Nodes returned from queries are
// independent copies. A failure of the backing medium is surfaced to the
// caller as an error, never swallowed or retried internally.
type NodeStore interface {
	// Save inserts a new Node. It fails with ErrDuplicateID if a Node
	// with the same id already exists; an existing record is never
	// overwritten.
	Save(ctx context.Context, node *memory.Node) error

	// FindLast returns up to limit Nodes, newest first. A non-empty
	// circleID restricts the result to that circle. limit <= 0 yields
	// an empty result, not an error.
	FindLast(ctx context.Context, limit int, circleID string) ([]*memory.Node, error)

	// FindSimilar scans stored Nodes and returns up to limit of them
	// ordered by descending cosine similarity to queryVec. Only Nodes
	// whose VectorModelID equals queryModelID participate; the rest are
	// excluded from the scan without error.
	FindSimilar(ctx context.Context, queryVec []float32, queryModelID string, limit int) ([]*memory.Node, error)

	// DeleteExpired removes every Node older than ttl (now - CreatedAt),
	// regardless of circle, and returns the count deleted. Each Node is
	// evaluated against its own CreatedAt, so a Node saved mid-sweep
	// survives unless it is already past the TTL.
	DeleteExpired(ctx context.Context, ttl time.Duration) (int64, error)

	// PurgeCircle deletes all Nodes in the given circle and returns the
	// count deleted.
	PurgeCircle(ctx context.Context, circleID string) (int64, error)

	// PurgeAll deletes every Node in every circle and returns the count.
	PurgeAll(ctx context.Context) (int64, error)

	// CountByCircle returns the number of live Nodes in a circle.
	// Display-only; cheap and side-effect-free.
	CountByCircle(ctx context.Context, circleID string) (int64, error)

	// ListCircles returns the distinct circle ids currently holding
	// Nodes, with their live counts, ordered by id.
	ListCircles(ctx context.Context) ([]CircleCount, error)

	Close() error
}

// CircleCount pairs a circle id with its live Node count, for display.
type CircleCount struct {
	CircleID string
	Count    int64
}
