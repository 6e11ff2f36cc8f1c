// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package main

import (
	"log/slog"

	fastembedlib "github.com/anush008/fastembed-go"
	"github.com/spf13/viper"

	"github.com/gyrus-dev/gyrus/internal/circle"
	"github.com/gyrus-dev/gyrus/internal/config"
	"github.com/gyrus-dev/gyrus/internal/platform"
	"github.com/gyrus-dev/gyrus/internal/provider"
	"github.com/gyrus-dev/gyrus/internal/provider/fastembed"
	"github.com/gyrus-dev/gyrus/internal/store"
	_ "github.com/gyrus-dev/gyrus/internal/store/sqlite" // register sqlite backend
)

// app holds the wired subsystems a command needs. Commands build only
// what they use: the embedder is expensive (model load), so read-only
// commands skip it.
type app struct {
	cfg      *config.Config
	nodes    store.NodeStore
	embedder provider.Embedder
	circles  *circle.Service
	notifier platform.Notifier
	logger   *slog.Logger
}

// newApp wires config, store, and circle state from the global viper.
// withEmbedder additionally loads the embedding model.
func newApp(withEmbedder bool) (*app, error) {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, err
	}

	logger := slog.Default()

	nodes, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		nodes:    nodes,
		circles:  circle.NewService(viper.GetString("circle.active"), logger),
		notifier: platform.NewLogNotifier(logger),
		logger:   logger,
	}
	a.circles.Watch(a.notifier.CircleSwitched)

	if withEmbedder {
		emb, err := fastembed.New(fastembed.Options{
			Model:    fastembedlib.EmbeddingModel(cfg.Embedding.Model),
			CacheDir: cfg.Embedding.CacheDir,
		})
		if err != nil {
			_ = nodes.Close()
			return nil, err
		}
		a.embedder = emb
	}

	return a, nil
}

func (a *app) Close() {
	if a.embedder != nil {
		_ = a.embedder.Close()
	}
	if a.nodes != nil {
		_ = a.nodes.Close()
	}
}
