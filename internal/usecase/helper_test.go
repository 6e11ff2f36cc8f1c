// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gyrus-dev/gyrus/internal/memory"
	"github.com/gyrus-dev/gyrus/internal/platform"
	"github.com/gyrus-dev/gyrus/internal/store"
	"github.com/gyrus-dev/gyrus/internal/store/sqlite"
)

// testStore opens a NodeStore on a fresh temp database.
func testStore(t *testing.T) store.NodeStore {
	t.Helper()
	s, err := sqlite.NewNodeStore(filepath.Join(t.TempDir(), "usecase.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// fakeClipboard is an in-memory Clipboard with injectable selection text
// and failures.
type fakeClipboard struct {
	selection    string
	selectionErr error
	text         string
	getErr       error
	setErr       error
	setCalls     []string
}

func (f *fakeClipboard) GetText() (string, error) { return f.text, f.getErr }

func (f *fakeClipboard) SetText(text string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.text = text
	f.setCalls = append(f.setCalls, text)
	return nil
}

func (f *fakeClipboard) CaptureSelection() (string, error) {
	return f.selection, f.selectionErr
}

// fakeKeyboard records paste invocations.
type fakeKeyboard struct {
	pastes   int
	pasteErr error
}

func (f *fakeKeyboard) Paste(context.Context) error {
	if f.pasteErr != nil {
		return f.pasteErr
	}
	f.pastes++
	return nil
}

// fakePicker replays a scripted interaction: optionally reranks with a
// typed query, then confirms choice or cancels.
type fakePicker struct {
	typed   string
	choice  string
	cancel  bool
	pickErr error

	gotReq platform.PickRequest
	ranked []*memory.Node
}

func (f *fakePicker) Pick(_ context.Context, req platform.PickRequest) (string, bool, error) {
	f.gotReq = req
	if f.pickErr != nil {
		return "", false, f.pickErr
	}
	if f.typed != "" && req.Rerank != nil {
		f.ranked = req.Rerank(f.typed)
	}
	if f.cancel {
		return "", false, nil
	}
	return f.choice, true, nil
}

// fakeNotifier records notifications.
type fakeNotifier struct {
	switched []string
	purges   []purgeEvent
}

type purgeEvent struct {
	scope string
	count int64
}

func (f *fakeNotifier) CircleSwitched(circleID string) {
	f.switched = append(f.switched, circleID)
}

func (f *fakeNotifier) Purged(scope string, count int64) {
	f.purges = append(f.purges, purgeEvent{scope: scope, count: count})
}

// errStore wraps a NodeStore, failing selected operations.
type errStore struct {
	store.NodeStore
	saveErr error
	findErr error
}

func (e *errStore) Save(ctx context.Context, n *memory.Node) error {
	if e.saveErr != nil {
		return e.saveErr
	}
	return e.NodeStore.Save(ctx, n)
}

func (e *errStore) FindLast(ctx context.Context, limit int, circleID string) ([]*memory.Node, error) {
	if e.findErr != nil {
		return nil, e.findErr
	}
	return e.NodeStore.FindLast(ctx, limit, circleID)
}
