// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

// Package circle holds the process-wide "active circle" state that scopes
// captures and recalls. The state never persists across restarts; every
// process starts back on the default circle.
package circle

import (
	"log/slog"
	"sync"

	"github.com/gyrus-dev/gyrus/internal/memory"
)

// Listener observes circle switches. Purely observational; the service
// consumes no return value.
type Listener func(circleID string)

// Service tracks the active circle id. Reads may come from any goroutine;
// writes are rare and last-write-wins.
type Service struct {
	mu       sync.RWMutex
	active   string
	known    map[string]*memory.Circle
	watchers []Listener
	logger   *slog.Logger
}

// NewService starts on initial, or memory.DefaultCircle when empty.
func NewService(initial string, logger *slog.Logger) *Service {
	if initial == "" {
		initial = memory.DefaultCircle
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		active: initial,
		known:  map[string]*memory.Circle{},
		logger: logger,
	}
	s.known[initial] = memory.NewCircle(initial)
	return s
}

// Get returns the active circle id.
func (s *Service) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Set switches the active circle. Setting the current value is a no-op;
// a real switch registers the circle and notifies listeners.
func (s *Service) Set(circleID string) {
	if circleID == "" {
		circleID = memory.DefaultCircle
	}

	s.mu.Lock()
	if circleID == s.active {
		s.mu.Unlock()
		return
	}
	prev := s.active
	s.active = circleID
	if _, ok := s.known[circleID]; !ok {
		s.known[circleID] = memory.NewCircle(circleID)
	}
	watchers := make([]Listener, len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	s.logger.Info("circle switched", "from", prev, "to", circleID)
	for _, w := range watchers {
		w(circleID)
	}
}

// Watch registers a listener invoked after every real circle switch.
func (s *Service) Watch(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, l)
}

// Known returns the circles this process has seen, for UI listing. The
// store, not this registry, is authoritative for which circles hold Nodes.
func (s *Service) Known() []*memory.Circle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*memory.Circle, 0, len(s.known))
	for _, c := range s.known {
		out = append(out, c)
	}
	return out
}
