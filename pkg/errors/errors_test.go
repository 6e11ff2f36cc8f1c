// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gyruserr "github.com/gyrus-dev/gyrus/pkg/errors"
)

func TestNew_CarriesCodeAndFields(t *testing.T) {
	err := gyruserr.New(gyruserr.CodeStoreDatabaseFailure, "query failed",
		gyruserr.FieldNodeID("n1"),
		gyruserr.FieldCircleID("work"),
	)

	require.Error(t, err)
	assert.Equal(t, gyruserr.CodeStoreDatabaseFailure, gyruserr.CodeOf(err))

	fields := gyruserr.FieldsOf(err)
	assert.Equal(t, "n1", fields["node_id"])
	assert.Equal(t, "work", fields["circle_id"])
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.NoError(t, gyruserr.Wrap(nil, gyruserr.CodeStoreDatabaseFailure, "ignored"))
	assert.NoError(t, gyruserr.Wrapf(nil, gyruserr.CodeStoreDatabaseFailure, "ignored %d", 1))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := gyruserr.Wrap(cause, gyruserr.CodeMemoryPurgeFailure, "sweeping")

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, gyruserr.CodeMemoryPurgeFailure, gyruserr.CodeOf(err))
	assert.Contains(t, err.Error(), "sweeping")
}

func TestCodeOf_PlainError(t *testing.T) {
	assert.Equal(t, gyruserr.Code(""), gyruserr.CodeOf(stderrors.New("plain")))
	assert.Equal(t, gyruserr.Code(""), gyruserr.CodeOf(nil))
}

func TestHasCode(t *testing.T) {
	err := gyruserr.New(gyruserr.CodeDaemonAlreadyRunning, "pid alive")

	assert.True(t, gyruserr.HasCode(err, gyruserr.CodeDaemonAlreadyRunning))
	assert.False(t, gyruserr.HasCode(err, gyruserr.CodeDaemonNotRunning))
	assert.False(t, gyruserr.HasCode(nil, gyruserr.CodeDaemonAlreadyRunning))
}

func TestClassifiers(t *testing.T) {
	conflict := gyruserr.New(gyruserr.CodeStoreNodeSaveConflict, "duplicate id")
	notFound := gyruserr.New(gyruserr.CodeDaemonNotRunning, "no pid file")
	invalid := gyruserr.New(gyruserr.CodeMemoryCaptureInvalidInput, "empty text")
	storage := gyruserr.New(gyruserr.CodeStoreDatabaseFailure, "locked")

	assert.True(t, gyruserr.IsConflict(conflict))
	assert.False(t, gyruserr.IsConflict(storage))

	assert.True(t, gyruserr.IsNotFound(notFound))
	assert.False(t, gyruserr.IsNotFound(conflict))

	assert.True(t, gyruserr.IsInvalidInput(invalid))
	assert.True(t, gyruserr.IsInvalidInput(gyruserr.New(gyruserr.CodeConfigValidateInvalidValue, "bad ttl")))
	assert.False(t, gyruserr.IsInvalidInput(storage))

	assert.True(t, gyruserr.IsStorageFailure(storage))
	assert.False(t, gyruserr.IsStorageFailure(gyruserr.New(gyruserr.CodeMemoryRecallFailure, "recall")))
}

func TestJoin(t *testing.T) {
	a := stderrors.New("first")
	b := stderrors.New("second")

	err := gyruserr.Join(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, a)
	assert.ErrorIs(t, err, b)
	assert.Equal(t, gyruserr.CodeStoreDatabaseFailure, gyruserr.CodeOf(err))
}
