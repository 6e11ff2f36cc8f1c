// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gyrus-dev/gyrus/internal/store/sqlite"
)

// testStore opens a NodeStore on a fresh temp database.
func testStore(t *testing.T, name string) *sqlite.NodeStore {
	t.Helper()
	s, err := sqlite.NewNodeStore(filepath.Join(t.TempDir(), name+".db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}
