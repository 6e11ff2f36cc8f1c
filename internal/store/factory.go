// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package store

import (
	"sync"

	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

// NodeStoreFactory creates a NodeStore given the path of its backing file.
type NodeStoreFactory func(path string) (NodeStore, error)

var (
	factories   = map[string]NodeStoreFactory{}
	factoriesMu sync.RWMutex
)

// RegisterBackend registers a factory for a named storage backend.
// Backend packages call this from init(). Goroutine-safe.
func RegisterBackend(name string, factory NodeStoreFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[name] = factory
}

// Open creates a NodeStore using the named backend. An empty backend name
// resolves to "sqlite".
func Open(backend, path string) (NodeStore, error) {
	if backend == "" {
		backend = "sqlite"
	}

	factoriesMu.RLock()
	factory, ok := factories[backend]
	factoriesMu.RUnlock()
	if !ok {
		return nil, gyruserr.Errorf(gyruserr.CodeStoreBackendUnsupported, "unsupported storage backend: %q", backend)
	}

	return factory(path)
}
