// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

// Package provider defines the embedding capability the memory core
// consumes. The model itself is a black box producing a fixed-length
// float vector for a string; ModelID ties every vector to the model that
// produced it so incompatible vector spaces are never compared.
package provider

import "context"

// Embedder encodes text into an embedding vector.
//
// Encode is the only variable-latency call in the system, so it takes a
// context and implementations must honour cancellation.
type Embedder interface {
	Encode(ctx context.Context, text string) ([]float32, error)

	// ModelID is a stable identifier of the producing model, stamped
	// onto every Node alongside its vector.
	ModelID() string

	Close() error
}
