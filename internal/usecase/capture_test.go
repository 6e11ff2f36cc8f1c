// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyrus-dev/gyrus/internal/circle"
	"github.com/gyrus-dev/gyrus/internal/provider/embedtest"
	"github.com/gyrus-dev/gyrus/internal/usecase"
	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

func TestCapture_Execute(t *testing.T) {
	ctx := context.Background()
	nodes := testStore(t)
	embedder := embedtest.New("test-model", 8)
	circles := circle.NewService("work", nil)

	capture := usecase.NewCapture(nodes, embedder, &fakeClipboard{}, circles, time.Hour, nil)

	node, err := capture.Execute(ctx, "buy milk")
	require.NoError(t, err)

	assert.Equal(t, "buy milk", node.Content)
	assert.Equal(t, "work", node.CircleID)
	assert.Equal(t, "test-model", node.VectorModelID)
	assert.Len(t, node.Vector, 8)
	assert.True(t, node.ExpiresAt.Equal(node.CreatedAt.Add(time.Hour)))

	got, err := nodes.FindLast(ctx, 1, "work")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, node.ID, got[0].ID)
}

func TestCapture_Execute_ZeroTTLSkipsExpiry(t *testing.T) {
	capture := usecase.NewCapture(testStore(t), embedtest.New("m", 4), &fakeClipboard{}, circle.NewService("", nil), 0, nil)

	node, err := capture.Execute(context.Background(), "no ttl")
	require.NoError(t, err)
	assert.True(t, node.ExpiresAt.IsZero())
}

func TestCapture_Execute_EmptyText(t *testing.T) {
	nodes := testStore(t)
	capture := usecase.NewCapture(nodes, embedtest.New("m", 4), &fakeClipboard{}, circle.NewService("", nil), 0, nil)

	_, err := capture.Execute(context.Background(), "")
	require.Error(t, err)
	assert.True(t, gyruserr.IsInvalidInput(err))

	got, err := nodes.FindLast(context.Background(), 10, "")
	require.NoError(t, err)
	assert.Empty(t, got, "a rejected capture must write nothing")
}

func TestCapture_Execute_SaveFailureWritesNothing(t *testing.T) {
	nodes := &errStore{NodeStore: testStore(t), saveErr: errors.New("disk full")}
	capture := usecase.NewCapture(nodes, embedtest.New("m", 4), &fakeClipboard{}, circle.NewService("", nil), 0, nil)

	_, err := capture.Execute(context.Background(), "doomed")
	require.Error(t, err)
	assert.Equal(t, gyruserr.CodeStoreDatabaseFailure, gyruserr.CodeOf(err))

	got, err := nodes.NodeStore.FindLast(context.Background(), 10, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCapture_FromClipboard_PrefersSelection(t *testing.T) {
	nodes := testStore(t)
	cb := &fakeClipboard{selection: "selected text", text: "clipboard text"}
	capture := usecase.NewCapture(nodes, embedtest.New("m", 4), cb, circle.NewService("", nil), 0, nil)

	node, err := capture.FromClipboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "selected text", node.Content)
}

func TestCapture_FromClipboard_FallsBackToClipboard(t *testing.T) {
	cb := &fakeClipboard{selectionErr: errors.New("no display"), text: "clipboard text"}
	capture := usecase.NewCapture(testStore(t), embedtest.New("m", 4), cb, circle.NewService("", nil), 0, nil)

	node, err := capture.FromClipboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "clipboard text", node.Content)
}

func TestCapture_FromClipboard_EmptyChain(t *testing.T) {
	nodes := testStore(t)
	capture := usecase.NewCapture(nodes, embedtest.New("m", 4), &fakeClipboard{}, circle.NewService("", nil), 0, nil)

	_, err := capture.FromClipboard(context.Background())
	require.Error(t, err)
	assert.True(t, gyruserr.IsInvalidInput(err))

	got, err := nodes.FindLast(context.Background(), 10, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCapture_Execute_ActiveCircleAtCaptureTime(t *testing.T) {
	ctx := context.Background()
	nodes := testStore(t)
	circles := circle.NewService("", nil)
	capture := usecase.NewCapture(nodes, embedtest.New("m", 4), &fakeClipboard{}, circles, 0, nil)

	first, err := capture.Execute(ctx, "before switch")
	require.NoError(t, err)

	circles.Set("work")
	second, err := capture.Execute(ctx, "after switch")
	require.NoError(t, err)

	assert.Equal(t, "local", first.CircleID)
	assert.Equal(t, "work", second.CircleID)
}
