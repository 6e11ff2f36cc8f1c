// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyrus-dev/gyrus/internal/memory"
)

func TestNewNode_Defaults(t *testing.T) {
	n := memory.NewNode("hello", []float32{1, 2}, "m1", "")

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, memory.DefaultCircle, n.CircleID)
	assert.Equal(t, "m1", n.VectorModelID)
	assert.False(t, n.CreatedAt.IsZero())
	assert.True(t, n.ExpiresAt.IsZero())
	assert.NotNil(t, n.Metadata)
}

func TestNewNode_UniqueIDs(t *testing.T) {
	a := memory.NewNode("x", nil, "m1", "work")
	b := memory.NewNode("x", nil, "m1", "work")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNode_CloneIsIndependent(t *testing.T) {
	n := memory.NewNode("hello", []float32{1, 2}, "m1", "work")
	n.Metadata["k"] = "v"

	c := n.Clone()
	c.Vector[0] = 99
	c.Metadata["k"] = "changed"
	c.Content = "other"

	assert.Equal(t, float32(1), n.Vector[0])
	assert.Equal(t, "v", n.Metadata["k"])
	assert.Equal(t, "hello", n.Content)
}

func TestNode_Expired(t *testing.T) {
	now := time.Now()

	n := memory.NewNode("x", nil, "m1", "")
	require.True(t, n.ExpiresAt.IsZero())
	assert.False(t, n.Expired(now), "node without TTL never expires")

	n.ExpiresAt = now.Add(-time.Second)
	assert.True(t, n.Expired(now))

	n.ExpiresAt = now.Add(time.Second)
	assert.False(t, n.Expired(now))
}

func TestNewCircle(t *testing.T) {
	c := memory.NewCircle("work")
	assert.Equal(t, "work", c.ID)
	assert.Equal(t, "work", c.Name)
	assert.True(t, c.Local)
	assert.NotNil(t, c.Metadata)
}
