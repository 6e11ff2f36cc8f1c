// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

// Package fastembed binds the provider.Embedder capability to a local
// fastembed ONNX model. The model weights download on first use into the
// configured cache directory.
package fastembed

import (
	"context"

	fastembed "github.com/anush008/fastembed-go"

	"github.com/gyrus-dev/gyrus/internal/provider"
	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = fastembed.BGESmallENV15

// Compile-time interface check.
var _ provider.Embedder = (*Embedder)(nil)

// Options configure the local embedding model.
type Options struct {
	Model     fastembed.EmbeddingModel // zero value picks DefaultModel
	CacheDir  string
	MaxLength int // token limit, 0 = library default
}

// Embedder runs a local fastembed model.
type Embedder struct {
	model   *fastembed.FlagEmbedding
	modelID string
}

// New initialises the model. Expensive on first run (weights download);
// callers construct one Embedder at startup and share it.
func New(opts Options) (*Embedder, error) {
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	fe, err := fastembed.NewFlagEmbedding(&fastembed.InitOptions{
		Model:     model,
		CacheDir:  opts.CacheDir,
		MaxLength: opts.MaxLength,
	})
	if err != nil {
		return nil, gyruserr.Wrapf(err, gyruserr.CodeProviderInitFailure, "initialising embedding model %s", model)
	}

	return &Embedder{model: fe, modelID: string(model)}, nil
}

// Encode embeds a single query string.
func (e *Embedder) Encode(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The underlying ONNX session is synchronous; run it in a goroutine
	// so callers can abandon a slow encode via ctx.
	type result struct {
		vec []float32
		err error
	}
	done := make(chan result, 1)
	go func() {
		vec, err := e.model.QueryEmbed(text)
		done <- result{vec: vec, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, gyruserr.Wrap(r.err, gyruserr.CodeProviderEncodeFailure, "encoding text", gyruserr.FieldModelID(e.modelID))
		}
		return r.vec, nil
	}
}

// ModelID identifies the model producing vectors.
func (e *Embedder) ModelID() string { return e.modelID }

// Close releases the ONNX session.
func (e *Embedder) Close() error {
	if e.model != nil {
		e.model.Destroy()
	}
	return nil
}
