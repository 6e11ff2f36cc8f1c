// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package sqlite

import (
	"github.com/gyrus-dev/gyrus/internal/store"
)

func init() {
	store.RegisterBackend("sqlite", func(path string) (store.NodeStore, error) {
		return NewNodeStore(path)
	})
}
