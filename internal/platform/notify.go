// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package platform

import "log/slog"

// Compile-time interface check.
var _ Notifier = (*LogNotifier)(nil)

// LogNotifier is the headless tray surface: circle switches and purge
// events land in the structured log instead of a tray menu.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a Notifier that reports through logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) CircleSwitched(circleID string) {
	n.logger.Info("active circle switched", "circle_id", circleID)
}

func (n *LogNotifier) Purged(scope string, count int64) {
	n.logger.Info("memory purged", "scope", scope, "deleted", count)
}
