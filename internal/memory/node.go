// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package memory

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCircle is the distinguished local namespace. A Node with an empty
// CircleID belongs to it.
const DefaultCircle = "local"

// Node is a single captured memory: a text snippet plus the embedding that
// was computed for it. Nodes are immutable after creation; the store only
// ever creates and deletes whole Nodes.
type Node struct {
	ID      string
	Content string

	// Vector is the embedding of Content. It is only meaningful when
	// interpreted against VectorModelID; vectors from different models
	// must never be compared for similarity.
	Vector        []float32
	VectorModelID string

	// Metadata is an open extension map (reserved keys include future
	// per-node encryption info).
	Metadata map[string]string

	CreatedAt time.Time
	// ExpiresAt is the intended content-level lifetime. Zero means no
	// per-node TTL. The background sweep evaluates age from CreatedAt.
	ExpiresAt time.Time
	CircleID  string
}

// NewNode builds a Node with a fresh id and CreatedAt stamped now.
// An empty circleID resolves to DefaultCircle.
func NewNode(content string, vector []float32, modelID, circleID string) *Node {
	if circleID == "" {
		circleID = DefaultCircle
	}
	return &Node{
		ID:            uuid.NewString(),
		Content:       content,
		Vector:        vector,
		VectorModelID: modelID,
		Metadata:      map[string]string{},
		CreatedAt:     time.Now(),
		CircleID:      circleID,
	}
}

// Clone returns an independent copy; mutating it never affects the original.
func (n *Node) Clone() *Node {
	out := *n
	if n.Vector != nil {
		out.Vector = make([]float32, len(n.Vector))
		copy(out.Vector, n.Vector)
	}
	if n.Metadata != nil {
		out.Metadata = make(map[string]string, len(n.Metadata))
		for k, v := range n.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}

// Expired reports whether the node's own ExpiresAt has passed at now.
// Nodes without a per-node TTL never expire this way.
func (n *Node) Expired(now time.Time) bool {
	if n.ExpiresAt.IsZero() {
		return false
	}
	return now.After(n.ExpiresAt)
}

// Circle is a named namespace scoping Node visibility. Circles exist by
// being referenced from a Node's CircleID; no separate registry is needed
// for correctness.
type Circle struct {
	ID   string
	Name string
	// Local marks a circle as local-only (as opposed to shareable).
	// Sharing transport is out of scope; only the flag is modelled.
	Local bool
	// Metadata is reserved for future per-circle keys, e.g. encryption
	// key references.
	Metadata map[string]string
}

// NewCircle builds a local circle whose display name defaults to its id.
func NewCircle(id string) *Circle {
	return &Circle{ID: id, Name: id, Local: true, Metadata: map[string]string{}}
}
