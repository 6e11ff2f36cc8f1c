// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

// Package embedtest provides a deterministic in-process Embedder for
// tests: same text, same unit vector, no model downloads.
package embedtest

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/gyrus-dev/gyrus/internal/provider"
)

// Compile-time interface check.
var _ provider.Embedder = (*Embedder)(nil)

// Embedder generates hash-seeded pseudo-random unit vectors.
type Embedder struct {
	id   string
	dims int
	// Fixed maps exact texts to canned vectors, for tests that need
	// geometric control over similarities.
	Fixed map[string][]float32
}

// New creates a test embedder reporting modelID, producing dims-length
// vectors.
func New(modelID string, dims int) *Embedder {
	return &Embedder{id: modelID, dims: dims, Fixed: map[string][]float32{}}
}

// Encode returns the canned vector for text when one is registered,
// otherwise a deterministic unit vector seeded from the text's hash.
func (e *Embedder) Encode(_ context.Context, text string) ([]float32, error) {
	if vec, ok := e.Fixed[text]; ok {
		return vec, nil
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	seed := h.Sum64()

	vec := make([]float32, e.dims)
	var norm float64
	for i := range vec {
		seed = seed*6364136223846793005 + 1442695040888963407
		v := float32(int64(seed)) / float32(math.MaxInt64)
		vec[i] = v
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec, nil
}

// ModelID reports the configured model identifier.
func (e *Embedder) ModelID() string { return e.id }

// Close is a no-op.
func (e *Embedder) Close() error { return nil }
