// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/gyrus-dev/gyrus/internal/platform"
	"github.com/gyrus-dev/gyrus/internal/store"
	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

// Purge is the bulk-deletion use case: TTL sweep, per-circle purge, and
// global purge. Each is a single idempotent store call; failures are
// reported, never retried, and the returned count is authoritative only
// on success.
type Purge struct {
	nodes    store.NodeStore
	notifier platform.Notifier
	logger   *slog.Logger
}

// NewPurge wires the purge use case.
func NewPurge(nodes store.NodeStore, notifier platform.Notifier, logger *slog.Logger) *Purge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Purge{nodes: nodes, notifier: notifier, logger: logger}
}

// Expired deletes every Node older than ttl and returns the count.
func (p *Purge) Expired(ctx context.Context, ttl time.Duration) (int64, error) {
	deleted, err := p.nodes.DeleteExpired(ctx, ttl)
	if err != nil {
		return 0, gyruserr.Wrap(err, gyruserr.CodeMemoryPurgeFailure, "sweeping expired nodes")
	}
	if deleted > 0 {
		p.logger.Info("expired nodes swept", "deleted", deleted, "ttl", ttl)
		p.notify("expired", deleted)
	}
	return deleted, nil
}

// Circle deletes every Node in circleID and returns the count.
func (p *Purge) Circle(ctx context.Context, circleID string) (int64, error) {
	deleted, err := p.nodes.PurgeCircle(ctx, circleID)
	if err != nil {
		return 0, gyruserr.Wrap(err, gyruserr.CodeMemoryPurgeFailure, "purging circle",
			gyruserr.FieldCircleID(circleID))
	}
	p.logger.Info("circle purged", "circle_id", circleID, "deleted", deleted)
	p.notify("circle:"+circleID, deleted)
	return deleted, nil
}

// All deletes every Node in every circle and returns the count.
func (p *Purge) All(ctx context.Context) (int64, error) {
	deleted, err := p.nodes.PurgeAll(ctx)
	if err != nil {
		return 0, gyruserr.Wrap(err, gyruserr.CodeMemoryPurgeFailure, "purging all circles")
	}
	p.logger.Info("all memory purged", "deleted", deleted)
	p.notify("all", deleted)
	return deleted, nil
}

func (p *Purge) notify(scope string, count int64) {
	if p.notifier != nil {
		p.notifier.Purged(scope, count)
	}
}
